package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leofalp/oaikit/config"
	"github.com/leofalp/oaikit/core/catalog"
	"github.com/leofalp/oaikit/core/fanout"
	"github.com/leofalp/oaikit/core/future"
	"github.com/leofalp/oaikit/core/wirepatch"
	"github.com/leofalp/oaikit/internal/utils"
	"github.com/leofalp/oaikit/providers/ai/openai"
	"github.com/leofalp/oaikit/providers/observability"
	"github.com/leofalp/oaikit/providers/storage"
)

// Client sends text, chat and image requests. It is safe for concurrent use.
type Client struct {
	executor *openai.Executor
	images   *fanout.Coordinator
	observer observability.Provider
	logger   *slog.Logger
}

// New creates a client. Without WithConfiguration it uses config.Default;
// without an image store images are saved under DefaultImageDir.
func New(opts ...func(*ClientOptions)) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	var cfg config.Configuration
	if options.Configuration != nil {
		cfg = *options.Configuration
	} else {
		cfg = config.Default()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fetcher := options.Fetcher
	if fetcher == nil {
		fetcher = fanout.HTTPFetcher{Client: options.HTTPClient}
	}
	store := options.ImageStore
	if store == nil && options.PersistImages {
		store = storage.NewFileStore(nil, DefaultImageDir())
	}

	return &Client{
		executor: openai.NewExecutor(cfg).
			WithHTTPClient(options.HTTPClient).
			WithLogger(logger).
			Use(options.Middleware...),
		images:   fanout.New(fetcher, store, logger),
		observer: options.Observer,
		logger:   logger,
	}
}

// TextCompletion completes prompt with model and the default parameters.
func (c *Client) TextCompletion(ctx context.Context, prompt string, model catalog.TextModel, callbacks ...future.Callback[*openai.TextResponse]) *future.Future[*openai.TextResponse] {
	return c.SendText(ctx, openai.NewTextRequest(prompt, model), callbacks...)
}

// SendText sends a prepared completion request.
func (c *Client) SendText(ctx context.Context, req *openai.TextRequest, callbacks ...future.Callback[*openai.TextResponse]) *future.Future[*openai.TextResponse] {
	attrs := []observability.Attribute{
		observability.String(observability.AttrAPIModel, req.Model.String()),
		observability.String(observability.AttrClientPrompt, utils.TruncateString(req.Prompt, utils.DefaultMaxStringLength)),
	}
	return execute[openai.TextResponse](ctx, c, req, attrs, nil, callbacks)
}

// ChatCompletion answers messages with model and the default parameters.
func (c *Client) ChatCompletion(ctx context.Context, messages []openai.Message, model catalog.ChatModel, callbacks ...future.Callback[*openai.ChatResponse]) *future.Future[*openai.ChatResponse] {
	return c.SendChat(ctx, openai.NewChatRequest(model, messages...), callbacks...)
}

// SendChat sends a prepared chat request.
func (c *Client) SendChat(ctx context.Context, req *openai.ChatRequest, callbacks ...future.Callback[*openai.ChatResponse]) *future.Future[*openai.ChatResponse] {
	attrs := []observability.Attribute{
		observability.String(observability.AttrAPIModel, req.Model.String()),
		observability.Int(observability.AttrClientMessagesCount, len(req.Messages)),
	}
	return execute[openai.ChatResponse](ctx, c, req, attrs, nil, callbacks)
}

// CreateImage generates one image of size for prompt.
func (c *Client) CreateImage(ctx context.Context, prompt string, size catalog.ImageSize, callbacks ...future.Callback[*openai.ImageResponse]) *future.Future[*openai.ImageResponse] {
	return c.SendImage(ctx, openai.NewImageRequest(prompt, size), callbacks...)
}

// SendImage sends a prepared image request. The future resolves after every
// generated image has been downloaded; when a download fails it resolves
// with the undownloaded response and an error matching fanout.ErrAssetFetch.
func (c *Client) SendImage(ctx context.Context, req *openai.ImageRequest, callbacks ...future.Callback[*openai.ImageResponse]) *future.Future[*openai.ImageResponse] {
	attrs := []observability.Attribute{
		observability.String(observability.AttrClientPrompt, utils.TruncateString(req.Prompt, utils.DefaultMaxStringLength)),
	}
	fill := func(ctx context.Context, res *openai.ImageResponse) error {
		return c.images.Fill(ctx, res, req.Prompt)
	}
	return execute[openai.ImageResponse](ctx, c, req, attrs, fill, callbacks)
}

// SendRaw sends a body serialized elsewhere to the endpoint of family, after
// rewriting enum ordinals it may contain into wire strings.
func (c *Client) SendRaw(ctx context.Context, family openai.Family, body []byte, callbacks ...future.Callback[*openai.RawResponse]) *future.Future[*openai.RawResponse] {
	url := family.URL()
	if url == "" {
		return future.Resolved[*openai.RawResponse](nil, fmt.Errorf("unknown request family %d", int(family)), callbacks...)
	}
	patched := wirepatch.PatchAll(body, openai.PatchRules(family)...)
	return dispatch[openai.RawResponse](ctx, c, family, url, patched, nil, nil, callbacks)
}

// execute validates and encodes req before handing it to dispatch. Encoding
// failures resolve the future at once without any I/O.
func execute[T any, PT interface {
	*T
	openai.Response
}](ctx context.Context, c *Client, req openai.Request, attrs []observability.Attribute, finish func(context.Context, *T) error, callbacks []future.Callback[*T]) *future.Future[*T] {
	body, err := req.Encode()
	if err != nil {
		c.logger.WarnContext(ctx, "request rejected",
			slog.String(observability.AttrAPIFamily, req.Family().String()),
			slog.String(observability.AttrError, err.Error()),
		)
		return future.Resolved[*T](nil, err, callbacks...)
	}
	return dispatch[T, PT](ctx, c, req.Family(), req.URL(), body, attrs, finish, callbacks)
}

// dispatch runs the call on its own goroutine. finish runs only after a
// successful POST.
func dispatch[T any, PT interface {
	*T
	openai.Response
}](ctx context.Context, c *Client, family openai.Family, url string, body []byte, attrs []observability.Attribute, finish func(context.Context, *T) error, callbacks []future.Callback[*T]) *future.Future[*T] {
	ctx = observability.ContextWithRequestID(ctx, uuid.NewString())
	if c.observer != nil {
		ctx = observability.ContextWithObserver(ctx, c.observer)
	}

	return future.Go(func() (*T, error) {
		ctx := ctx
		var span observability.Span
		if c.observer != nil {
			spanAttrs := append([]observability.Attribute{
				observability.String(observability.AttrAPIFamily, family.String()),
			}, attrs...)
			ctx, span = c.observer.StartSpan(ctx, observability.SpanClientRequest, spanAttrs...)
			defer span.End()
		}

		res := openai.Post[T, PT](ctx, c.executor, url, body)
		if finish == nil || !PT(res).OK() {
			return res, nil
		}
		if err := finish(ctx, res); err != nil {
			if span != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, "request failed")
			}
			return res, err
		}
		return res, nil
	}, callbacks...)
}
