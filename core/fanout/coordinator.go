package fanout

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/leofalp/oaikit/providers/ai/openai"
	"github.com/leofalp/oaikit/providers/observability"
)

// Store persists a downloaded asset and returns where it was written.
type Store interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// Coordinator fills image slots with their downloaded content.
type Coordinator struct {
	fetcher Fetcher
	store   Store
	logger  *slog.Logger
}

// New returns a coordinator. A nil fetcher means HTTPFetcher with the default
// client, a nil store disables persistence and a nil logger means
// slog.Default.
func New(fetcher Fetcher, store Store, logger *slog.Logger) *Coordinator {
	if fetcher == nil {
		fetcher = HTTPFetcher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{fetcher: fetcher, store: store, logger: logger}
}

type asset struct {
	data     []byte
	mimeType string
}

// Fill downloads every slot of res that has a URL, all at once, and returns
// when the last download is done. Slots without a URL are skipped. On success
// each fetched slot gets its data and detected MIME type and, with a store,
// its saved path; slot 0 is saved as prompt and slot i as "prompt i". A save
// failure is logged and leaves Path empty. On a download failure res is not
// modified.
func (c *Coordinator) Fill(ctx context.Context, res *openai.ImageResponse, prompt string) error {
	observer := observability.ObserverFromContext(ctx)
	if observer != nil {
		var span observability.Span
		ctx, span = observer.StartSpan(ctx, observability.SpanImageFanout,
			observability.Int(observability.AttrAPIChoices, len(res.Data)),
		)
		defer span.End()
	}

	results := make([]*asset, len(res.Data))
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range res.Data {
		if slot.URL == "" {
			continue
		}
		g.Go(func() error {
			data, err := c.fetcher.Fetch(gctx, slot.URL)
			c.recordFetch(gctx, observer, i, slot.URL, data, err)
			if err != nil {
				return &AssetFetchError{Slot: i, URL: slot.URL, Err: err}
			}
			results[i] = &asset{data: data, mimeType: mimetype.Detect(data).String()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if span := observability.SpanFromContext(ctx); span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "image fetch failed")
		}
		return err
	}

	for i, result := range results {
		if result == nil {
			continue
		}
		res.Data[i].Data = result.data
		res.Data[i].MimeType = result.mimeType
	}
	if c.store != nil {
		c.persist(ctx, res, results, prompt)
	}
	return nil
}

func (c *Coordinator) persist(ctx context.Context, res *openai.ImageResponse, fetched []*asset, prompt string) {
	span := observability.SpanFromContext(ctx)
	for i, result := range fetched {
		if result == nil {
			continue
		}
		slot := &res.Data[i]
		name := SlotName(prompt, i)
		path, err := c.store.Save(ctx, name, slot.Data)
		if err != nil {
			c.logger.WarnContext(ctx, "failed to save image",
				slog.Int(observability.AttrImageSlot, i),
				slog.String("name", name),
				slog.String(observability.AttrError, err.Error()),
			)
			if span != nil {
				span.AddEvent(observability.EventImagePersistError, observability.Int(observability.AttrImageSlot, i), observability.Error(err))
			}
			continue
		}
		slot.Path = path
		if span != nil {
			span.AddEvent(observability.EventImagePersisted,
				observability.Int(observability.AttrImageSlot, i),
				observability.String(observability.AttrImagePath, path),
				observability.String(observability.AttrImageMIMEType, slot.MimeType),
			)
		}
	}
}

func (c *Coordinator) recordFetch(ctx context.Context, observer observability.Provider, slot int, url string, data []byte, err error) {
	if observer == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	observer.Counter(observability.MetricImageFetchCount).Add(ctx, 1, observability.String(observability.AttrAPIResult, result))
	if err != nil {
		return
	}
	observer.Histogram(observability.MetricImageBytes).Record(ctx, float64(len(data)))
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventImageFetched,
			observability.Int(observability.AttrImageSlot, slot),
			observability.String(observability.AttrImageURL, url),
			observability.Int(observability.AttrImageBytes, len(data)),
		)
	}
}

// MaxSlotBaseLength caps the prompt part of a slot name, in runes. The slot
// suffix is appended after the cap so every slot keeps a distinct name.
const MaxSlotBaseLength = 100

// SlotName returns the name slot i is saved under: the trimmed prompt capped
// at MaxSlotBaseLength runes, followed by " i" for every slot but the first.
func SlotName(prompt string, i int) string {
	base := []rune(strings.TrimSpace(prompt))
	if len(base) > MaxSlotBaseLength {
		base = base[:MaxSlotBaseLength]
	}
	name := strings.TrimSpace(string(base))
	if i == 0 {
		return name
	}
	return name + " " + strconv.Itoa(i)
}
