package fanout

import (
	"errors"
	"fmt"
)

// ErrAssetFetch is matched by every error returned for a failed join.
var ErrAssetFetch = errors.New("image fetch failed")

// AssetFetchError names the slot whose download failed the join.
type AssetFetchError struct {
	Slot int
	URL  string
	Err  error
}

// Error names the slot and URL of the failed download.
func (e *AssetFetchError) Error() string {
	return fmt.Sprintf("%s: slot %d (%s): %v", ErrAssetFetch, e.Slot, e.URL, e.Err)
}

// Is reports ErrAssetFetch as a match.
func (e *AssetFetchError) Is(target error) bool {
	return target == ErrAssetFetch
}

// Unwrap returns the download error.
func (e *AssetFetchError) Unwrap() error {
	return e.Err
}
