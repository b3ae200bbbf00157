package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/leofalp/oaikit/providers/observability"
)

// Failure classes reported by DoPost and DoGet. Callers tell them apart with
// errors.Is. ErrRequest means no request was built, so nothing was sent.
var (
	ErrRequest    = errors.New("invalid request")
	ErrConnection = errors.New("connection error")
	ErrStatus     = errors.New("unexpected status")
	ErrRead       = errors.New("error reading response body")
)

// HeaderOption is one extra request header.
type HeaderOption struct {
	Key   string
	Value string
}

// Reply is what came back from the server. It is returned alongside ErrStatus
// and ErrRead so the caller can still log the status code.
type Reply struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// DoPost sends body to url in a single POST attempt. A URL that cannot be
// parsed wraps ErrRequest, a transport failure (unsupported scheme included)
// wraps ErrConnection, a non-2xx answer wraps ErrStatus (the Reply then carries the
// error body) and a body that cannot be read wraps ErrRead.
func DoPost(ctx context.Context, client *http.Client, url string, body []byte, headers ...HeaderOption) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent("http.request.prepared",
			observability.String(observability.AttrHTTPMethod, http.MethodPost),
			observability.String(observability.AttrHTTPURL, url),
			observability.Int(observability.AttrHTTPRequestBodySize, len(body)),
		)
	}
	return do(ctx, client, req)
}

// DoGet downloads url with a single GET attempt, classifying failures like
// DoPost.
func DoGet(ctx context.Context, client *http.Client, url string, headers ...HeaderOption) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}
	return do(ctx, client, req)
}

func do(ctx context.Context, client *http.Client, req *http.Request) (*Reply, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timer := NewTimer()
	res, err := httpClient.Do(req)
	timer.Stop()
	if err != nil {
		if span != nil {
			span.AddEvent("http.request.error",
				observability.Error(err),
				observability.Duration(observability.AttrHTTPDuration, timer.Duration()),
			)
		}
		return nil, fmt.Errorf("%w: %s %s: %v", ErrConnection, req.Method, req.URL, err)
	}
	defer CloseWithLog(res.Body)

	reply := &Reply{StatusCode: res.StatusCode, Header: res.Header}
	reply.Body, err = io.ReadAll(res.Body)
	if err != nil {
		return reply, fmt.Errorf("%w: %v", ErrRead, err)
	}

	if span != nil {
		span.AddEvent("http.response.received",
			observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
			observability.Int(observability.AttrHTTPResponseBodySize, len(reply.Body)),
			observability.Duration(observability.AttrHTTPDuration, timer.Duration()),
		)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return reply, fmt.Errorf("%w %d from %s %s", ErrStatus, res.StatusCode, req.Method, req.URL)
	}
	return reply, nil
}

// CloseWithLog closes c and logs a failure instead of returning it.
func CloseWithLog(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}
