// Package observability defines the tracing, metrics and logging interfaces
// oaikit reports through, plus the attribute and metric names it uses.
//
// A [Provider] travels in a [context.Context] ([ContextWithObserver],
// [ObserverFromContext]) together with the active [Span] and the per-call
// request id, so the HTTP layer can report without being handed the provider
// explicitly. Implementations live in the slogobs and promobs subpackages;
// [Nop] discards everything.
package observability
