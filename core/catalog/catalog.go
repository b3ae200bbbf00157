package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// OrdinalBase is the ordinal of the first key of every kind.
const OrdinalBase = math.MaxInt32 - 1000

// ErrUnknownModelKey is matched by every error returned for a symbolic key that
// has no registered wire string.
var ErrUnknownModelKey = errors.New("oaikit: unknown model key")

// UnknownKeyError reports the kind and ordinal that failed to resolve.
type UnknownKeyError struct {
	Kind    Kind
	Ordinal int
	Name    string // symbolic name or wire text, when the lookup was by text
}

// Error names the kind and the key that has no mapping.
func (e *UnknownKeyError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s %q", ErrUnknownModelKey, e.Kind, e.Name)
	}
	return fmt.Sprintf("%s: %s %d", ErrUnknownModelKey, e.Kind, e.Ordinal)
}

// Unwrap lets errors.Is match ErrUnknownModelKey.
func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownModelKey
}

// Kind identifies one family of symbolic keys.
type Kind int

const (
	KindText Kind = iota
	KindChat
	KindTextEdit
	KindAudio
	KindImage
	KindImageEdit
	KindImageVariation
	KindOther
	KindImageSize
	KindRole
)

var kindNames = map[Kind]string{
	KindText:           "text",
	KindChat:           "chat",
	KindTextEdit:       "text_edit",
	KindAudio:          "audio",
	KindImage:          "image",
	KindImageEdit:      "image_edit",
	KindImageVariation: "image_variation",
	KindOther:          "other",
	KindImageSize:      "image_size",
	KindRole:           "role",
}

// String returns the lower-case kind name, e.g. "image_size".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for kind := range kindNames {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ParseKind parses the String form of a kind.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown catalog kind %q", name)
}

// Key is implemented by every symbolic key type of this package.
type Key interface {
	Kind() Kind
	Ordinal() int
}

// Resolve returns the wire string registered for ordinal within kind.
func Resolve(kind Kind, ordinal int) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", &UnknownKeyError{Kind: kind, Ordinal: ordinal}
	}
	e, ok := t.byOrdinal[ordinal]
	if !ok || e.wire == "" {
		return "", &UnknownKeyError{Kind: kind, Ordinal: ordinal}
	}
	return e.wire, nil
}

// WireString resolves a typed key.
func WireString(key Key) (string, error) {
	return Resolve(key.Kind(), key.Ordinal())
}

// Mapping returns a copy of the ordinal to wire string table of kind. Keys
// without a wire string are not included.
func Mapping(kind Kind) map[int]string {
	t, ok := tables[kind]
	if !ok {
		return map[int]string{}
	}
	mapping := make(map[int]string, len(t.entries))
	for _, e := range t.entries {
		if e.wire != "" {
			mapping[e.ordinal] = e.wire
		}
	}
	return mapping
}

// Lookup returns the ordinal whose wire string is wire. When several keys
// share a wire string the lowest ordinal wins.
func Lookup(kind Kind, wire string) (int, bool) {
	t, ok := tables[kind]
	if !ok {
		return 0, false
	}
	ordinal, ok := t.byWire[wire]
	return ordinal, ok
}

// ParseName returns the ordinal of the symbolic name (e.g. "GPT_4") within
// kind. Names of keys with no wire string parse too; they just don't resolve.
func ParseName(kind Kind, name string) (int, error) {
	t, ok := tables[kind]
	if ok {
		if ordinal, found := t.byName[name]; found {
			return ordinal, nil
		}
	}
	return 0, &UnknownKeyError{Kind: kind, Name: name}
}

// Name returns the symbolic name of ordinal within kind, or "" when the
// ordinal is not declared.
func Name(kind Kind, ordinal int) string {
	t, ok := tables[kind]
	if !ok {
		return ""
	}
	return t.byOrdinal[ordinal].name
}

// Names lists the symbolic names of kind that resolve to a wire string, in
// ordinal order.
func Names(kind Kind) []string {
	t, ok := tables[kind]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if e.wire != "" {
			names = append(names, e.name)
		}
	}
	return names
}

// parseText accepts either a wire string or a symbolic name.
func parseText(kind Kind, text []byte) (int, error) {
	s := string(text)
	if ordinal, ok := Lookup(kind, s); ok {
		return ordinal, nil
	}
	return ParseName(kind, s)
}

func marshalKey(key Key) ([]byte, error) {
	wire, err := WireString(key)
	if err != nil {
		return nil, err
	}
	return []byte(wire), nil
}
