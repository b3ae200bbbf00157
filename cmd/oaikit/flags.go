package main

import (
	"encoding"
	"fmt"

	"github.com/leofalp/oaikit/core/catalog"
)

// catalogKey is satisfied by pointers to catalog key types.
type catalogKey[K any] interface {
	*K
	catalog.Key
	fmt.Stringer
	encoding.TextUnmarshaler
}

// keyFlag is a pflag.Value for a catalog key, accepting symbolic names and
// wire strings.
type keyFlag[K any, PK catalogKey[K]] struct {
	key *K
}

func newKeyFlag[K any, PK catalogKey[K]](key *K) keyFlag[K, PK] {
	return keyFlag[K, PK]{key: key}
}

func (f keyFlag[K, PK]) String() string {
	if f.key == nil {
		return ""
	}
	return PK(f.key).String()
}

func (f keyFlag[K, PK]) Set(value string) error {
	return PK(f.key).UnmarshalText([]byte(value))
}

func (f keyFlag[K, PK]) Type() string {
	var zero K
	return fmt.Sprintf("%T", zero)
}
