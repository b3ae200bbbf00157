package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/oaikit/internal/utils"
	"github.com/leofalp/oaikit/providers/ai/openai"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs only the endpoint, the result and the duration.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard adds the request and response body sizes. This is the
	// recommended default.
	LogLevelStandard

	// LogLevelVerbose adds the request and response bodies, each truncated to
	// 500 characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. Prompts and generated
	// text end up in the logs.
	LogLevelVerbose
)

// truncateLen is the maximum body length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware returns a middleware that logs every POST at info
// level when it succeeds and at warn level when it does not. A nil logger
// means slog.Default.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) openai.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next openai.SendFunc) openai.SendFunc {
		return func(ctx context.Context, url string, body []byte) (openai.Result, []byte) {
			logger.InfoContext(ctx, "api send", buildRequestAttrs(url, body, level)...)

			start := time.Now()
			status, payload := next(ctx, url, body)
			elapsed := time.Since(start)

			attrs := buildResponseAttrs(url, status, payload, elapsed, level)
			if status != openai.Success {
				logger.WarnContext(ctx, "api send failed", attrs...)
			} else {
				logger.InfoContext(ctx, "api send completed", attrs...)
			}
			return status, payload
		}
	}
}

// buildRequestAttrs returns slog attributes for an outgoing body, expanding
// detail according to the requested verbosity level.
func buildRequestAttrs(url string, body []byte, level LogLevel) []any {
	attrs := []any{slog.String("url", url)}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("request_bytes", len(body)))
	}
	if level >= LogLevelVerbose {
		attrs = append(attrs, slog.String("request_body", utils.TruncateString(string(body), truncateLen)))
	}
	return attrs
}

func buildResponseAttrs(url string, status openai.Result, payload []byte, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("url", url),
		slog.String("result", status.String()),
		slog.Duration("duration", elapsed),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("response_bytes", len(payload)))
	}
	if level >= LogLevelVerbose && len(payload) > 0 {
		attrs = append(attrs, slog.String("response_body", utils.TruncateString(string(payload), truncateLen)))
	}
	return attrs
}
