package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// maxNameLength limits the file name derived from a prompt, in runes. It
// leaves room for a slot suffix after a prompt capped at 100 runes.
const maxNameLength = 128

// FileStore writes each asset to <dir>/<sanitised name><ext>, the extension
// following the detected content type. Saving the same name twice replaces
// the earlier file.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore returns a store rooted at dir. A nil fs means the operating
// system file system.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs, dir: dir}
}

// Dir returns the directory files are written to.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes data and returns the path of the new file.
func (s *FileStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, SanitizeName(name)+mimetype.Detect(data).Extension())
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// SanitizeName turns a prompt into a file name: path separators and other
// unsafe characters become underscores, leading dots and surrounding spaces
// are dropped and the result is capped in length. An empty result becomes
// "image".
func SanitizeName(name string) string {
	var b strings.Builder
	count := 0
	for _, r := range strings.TrimSpace(name) {
		if count == maxNameLength {
			break
		}
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == ' ', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
		count++
	}

	safe := strings.TrimSpace(strings.TrimLeft(b.String(), "."))
	if safe == "" {
		return "image"
	}
	return safe
}
