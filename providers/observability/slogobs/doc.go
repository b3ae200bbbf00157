// Package slogobs implements observability.Provider on log/slog. Spans,
// span events and metric updates become debug records; the Logger methods map
// onto slog levels.
//
// [New] reads OAIKIT_LOG_LEVEL / LOG_LEVEL and OAIKIT_LOG_FORMAT / LOG_FORMAT
// unless [WithLevel], [WithFormat] or [WithLogger] say otherwise.
package slogobs
