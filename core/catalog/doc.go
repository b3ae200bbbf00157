// Package catalog maps the symbolic keys callers use to pick a model, an image
// size or a message role onto the exact string literal the OpenAI API expects.
//
// Each kind of key has its own Go type ([TextModel], [ChatModel], [ImageSize],
// [Role], ...) so the compiler rejects a chat model passed where a text model is
// expected. Ordinals start at [OrdinalBase], the same offset the wire-patching
// layer sees when a body was serialized with bare enum ordinals.
//
// The tables are built once at package initialisation and never mutated, so
// [Resolve], [Lookup] and [ParseName] are safe for concurrent use without
// locking. Keys without a registered mapping (for example [DallE] or the
// [OtherModel] family) exist as symbols only: resolving them fails with
// [ErrUnknownModelKey].
package catalog
