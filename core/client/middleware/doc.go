// Package middleware provides openai.Middleware implementations that can be
// installed on a client with [client.WithMiddleware].
//
//   - [NewLoggingMiddleware]: emits one structured slog entry before and one
//     after every POST, with three verbosity levels (Minimal, Standard,
//     Verbose).
//
// # Usage
//
//	c := client.New(
//	    client.WithMiddleware(
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    ),
//	)
//
// Middlewares execute outermost-first: the first entry in WithMiddleware runs
// first on the way in and last on the way out.
package middleware
