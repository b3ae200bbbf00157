package openai

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/leofalp/oaikit/config"
	"github.com/leofalp/oaikit/core/parse"
	"github.com/leofalp/oaikit/internal/utils"
	"github.com/leofalp/oaikit/providers/observability"
)

// Executor sends request bodies with the credentials of one Configuration.
// It never retries and adds no timeout of its own; both belong to the
// http.Client.
type Executor struct {
	cfg        config.Configuration
	client     *http.Client
	logger     *slog.Logger
	middleware []Middleware
}

// SendFunc sends one encoded body and reports the transport outcome.
type SendFunc func(ctx context.Context, url string, body []byte) (Result, []byte)

// Middleware wraps a SendFunc. The first middleware passed to Use is the
// outermost one.
type Middleware func(next SendFunc) SendFunc

// NewExecutor creates an executor using http.DefaultClient and slog.Default.
func NewExecutor(cfg config.Configuration) *Executor {
	return &Executor{cfg: cfg}
}

// WithHTTPClient sets the client used for every request.
func (e *Executor) WithHTTPClient(client *http.Client) *Executor {
	e.client = client
	return e
}

// WithLogger sets the logger that receives failure diagnostics.
func (e *Executor) WithLogger(logger *slog.Logger) *Executor {
	e.logger = logger
	return e
}

// Use appends middleware around every Send.
func (e *Executor) Use(middleware ...Middleware) *Executor {
	e.middleware = append(e.middleware, middleware...)
	return e
}

// Configuration returns the credentials sent with every request.
func (e *Executor) Configuration() config.Configuration {
	return e.cfg
}

func (e *Executor) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return slog.Default()
}

func (e *Executor) headers() []utils.HeaderOption {
	return []utils.HeaderOption{
		{Key: "Authorization", Value: "Bearer " + e.cfg.APIKey},
		{Key: "OpenAI-Organization", Value: e.cfg.Organization},
	}
}

// Send posts body to url exactly once, through the middleware, and returns
// the transport outcome with the response body. Any outcome other than
// Success is logged.
func (e *Executor) Send(ctx context.Context, url string, body []byte) (Result, []byte) {
	next := SendFunc(e.send)
	for i := len(e.middleware) - 1; i >= 0; i-- {
		next = e.middleware[i](next)
	}
	return next(ctx, url, body)
}

func (e *Executor) send(ctx context.Context, url string, body []byte) (Result, []byte) {
	family := familyLabel(url)
	observer := observability.ObserverFromContext(ctx)

	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanAPIRequest,
			observability.String(observability.AttrAPIFamily, family),
			observability.String(observability.AttrAPIEndpoint, url),
		)
		defer span.End()
	}

	timer := utils.NewTimer()
	reply, err := utils.DoPost(ctx, e.client, url, body, e.headers()...)
	elapsed := timer.Stop()

	status := classify(err)
	var payload []byte
	if reply != nil {
		payload = reply.Body
	}

	if observer != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrAPIFamily, family),
			observability.String(observability.AttrAPIResult, status.String()),
		}
		observer.Counter(observability.MetricAPIRequestCount).Add(ctx, 1, attrs...)
		observer.Histogram(observability.MetricAPIRequestDuration).Record(ctx, elapsed.Seconds(), attrs...)

		span.SetAttributes(observability.String(observability.AttrAPIResult, status.String()))
		if reply != nil {
			span.SetAttributes(observability.Int(observability.AttrHTTPStatusCode, reply.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, status.String())
		} else {
			span.AddEvent(observability.EventAPIRequestSent)
			span.SetStatus(observability.StatusOK, "")
		}
	}

	if status != Success {
		e.logFailure(ctx, url, body, status, payload, err)
	}
	return status, payload
}

// classify maps a DoPost error to a transport result.
func classify(err error) Result {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, utils.ErrStatus):
		return ProtocolError
	case errors.Is(err, utils.ErrRead):
		return DataProcessingError
	default:
		// ErrConnection, and ErrRequest for a URL that does not parse: in
		// both cases no response was received.
		return ConnectionError
	}
}

// logFailure writes the single diagnostic record of a failed request.
func (e *Executor) logFailure(ctx context.Context, url string, body []byte, status Result, payload []byte, err error) {
	attrs := []slog.Attr{
		slog.String(observability.AttrHTTPMethod, http.MethodPost),
		slog.String(observability.AttrHTTPURL, url),
		slog.String(observability.AttrHTTPRequestBody, utils.TruncateString(string(body), utils.MaxLoggedBodyLength)),
		slog.String(observability.AttrAPIResult, status.String()),
		slog.String(observability.AttrHTTPResponseBody, string(payload)),
	}
	if err != nil {
		attrs = append(attrs, slog.String(observability.AttrError, err.Error()))
	}
	if id := observability.RequestIDFromContext(ctx); id != "" {
		attrs = append(attrs, slog.String(observability.AttrRequestID, id))
	}
	e.log().LogAttrs(ctx, slog.LevelError, "API request failed", attrs...)
}

// Post sends body with e and decodes a successful answer into a new T.
// Whatever goes wrong, the returned value is a fresh T whose only set field
// is its Status; T is never partially populated.
func Post[T any, PT interface {
	*T
	Response
}](ctx context.Context, e *Executor, url string, body []byte) *T {
	status, payload := e.Send(ctx, url, body)
	if status != Success {
		return failed[T, PT](status)
	}

	out := new(T)
	if err := parse.Unmarshal(payload, out); err != nil {
		e.logFailure(ctx, url, body, DataProcessingError, payload, err)
		return failed[T, PT](DataProcessingError)
	}

	res := PT(out)
	res.normalize()
	res.setStatus(Success)
	if span := observability.SpanFromContext(ctx); span != nil {
		attrs := []observability.Attribute{observability.String(observability.AttrAPIFamily, familyLabel(url))}
		if a, ok := any(out).(accounted); ok {
			id, tokens := a.accounting()
			attrs = append(attrs,
				observability.String(observability.AttrAPIResponseID, id),
				observability.Int(observability.AttrAPITokensTotal, tokens),
			)
		}
		span.AddEvent(observability.EventAPIResponseParsed, attrs...)
	}
	return out
}

func failed[T any, PT interface {
	*T
	Response
}](status Result) *T {
	out := new(T)
	PT(out).setStatus(status)
	return out
}
