package client

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/leofalp/oaikit/config"
	"github.com/leofalp/oaikit/core/fanout"
	"github.com/leofalp/oaikit/providers/ai/openai"
	"github.com/leofalp/oaikit/providers/observability"
)

// ClientOptions collects what the functional options of New configure.
type ClientOptions struct {
	Configuration *config.Configuration
	HTTPClient    *http.Client
	Logger        *slog.Logger
	Observer      observability.Provider
	ImageStore    fanout.Store
	PersistImages bool
	Fetcher       fanout.Fetcher
	Middleware    []openai.Middleware
}

func defaultOptions() *ClientOptions {
	return &ClientOptions{PersistImages: true}
}

// DefaultImageDir is where images are saved when no store is configured.
func DefaultImageDir() string {
	return filepath.Join(os.TempDir(), "oaikit-images")
}

// WithConfiguration sets the credentials explicitly instead of using
// config.Default.
func WithConfiguration(cfg config.Configuration) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Configuration = &cfg
	}
}

// WithHTTPClient sets the client used for API calls and, unless WithFetcher
// is given, for image downloads.
func WithHTTPClient(httpClient *http.Client) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.HTTPClient = httpClient
	}
}

// WithLogger sets the logger for failure diagnostics.
func WithLogger(logger *slog.Logger) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Logger = logger
	}
}

// WithObserver enables spans and metrics for every call.
func WithObserver(observer observability.Provider) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Observer = observer
	}
}

// WithImageStore sets where downloaded images are saved.
func WithImageStore(store fanout.Store) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.ImageStore = store
		o.PersistImages = true
	}
}

// WithoutImagePersistence keeps downloaded images in memory only.
func WithoutImagePersistence() func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.ImageStore = nil
		o.PersistImages = false
	}
}

// WithFetcher replaces the image downloader.
func WithFetcher(fetcher fanout.Fetcher) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Fetcher = fetcher
	}
}

// WithMiddleware wraps every API call, outermost first.
func WithMiddleware(middleware ...openai.Middleware) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Middleware = append(o.Middleware, middleware...)
	}
}
