package fanout

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/leofalp/oaikit/internal/utils"
	"github.com/leofalp/oaikit/providers/ai/openai"
	"github.com/leofalp/oaikit/providers/observability"
	"github.com/leofalp/oaikit/providers/observability/slogobs"
	"github.com/leofalp/oaikit/providers/storage"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func imageResponse(urls ...string) *openai.ImageResponse {
	res := &openai.ImageResponse{Status: openai.Success}
	for _, url := range urls {
		res.Data = append(res.Data, openai.ImageSlot{URL: url})
	}
	return res
}

// memStore records saves and can be told to fail.
type memStore struct {
	mu    sync.Mutex
	saved map[string][]byte
	fail  bool
}

func (s *memStore) Save(_ context.Context, name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return "", errors.New("disk full")
	}
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	s.saved[name] = data
	return "/images/" + name + ".png", nil
}

// TestFill_OrderIndependentOfCompletion verifies each slot gets its own
// download even when the downloads finish in the order 2, 0, 1.
func TestFill_OrderIndependentOfCompletion(t *testing.T) {
	done := map[string]chan struct{}{"u0": make(chan struct{}), "u1": make(chan struct{}), "u2": make(chan struct{})}
	waitFor := map[string]string{"u0": "u2", "u1": "u0"}

	fetcher := FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		if prev, ok := waitFor[url]; ok {
			<-done[prev]
		}
		defer close(done[url])
		return append(append([]byte(nil), pngHeader...), url...), nil
	})

	res := imageResponse("u0", "u1", "u2")
	if err := New(fetcher, nil, nil).Fill(context.Background(), res, "a cat"); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for i, slot := range res.Data {
		want := fmt.Sprintf("u%d", i)
		if !bytes.HasSuffix(slot.Data, []byte(want)) {
			t.Errorf("slot %d holds %q, want the %s download", i, slot.Data, want)
		}
		if slot.MimeType != "image/png" {
			t.Errorf("slot %d MimeType = %q", i, slot.MimeType)
		}
		if slot.Path != "" {
			t.Errorf("slot %d Path = %q without a store", i, slot.Path)
		}
	}
}

// TestFill_SkipsEmptyURL verifies a slot without URL is never fetched and
// stays empty.
func TestFill_SkipsEmptyURL(t *testing.T) {
	var mu sync.Mutex
	var fetched []string
	fetcher := FetcherFunc(func(_ context.Context, url string) ([]byte, error) {
		mu.Lock()
		fetched = append(fetched, url)
		mu.Unlock()
		return pngHeader, nil
	})

	res := imageResponse("u0", "")
	if err := New(fetcher, nil, nil).Fill(context.Background(), res, "p"); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if len(fetched) != 1 || fetched[0] != "u0" {
		t.Errorf("fetched = %v, want [u0]", fetched)
	}
	if res.Data[0].Data == nil {
		t.Error("slot 0 should be filled")
	}
	if res.Data[1].Data != nil || res.Data[1].MimeType != "" {
		t.Errorf("slot 1 = %+v, want empty", res.Data[1])
	}
}

// TestFill_FailureLeavesResponseUntouched verifies one failed download fails
// the whole join with the slot that broke it and fills nothing.
func TestFill_FailureLeavesResponseUntouched(t *testing.T) {
	fetcher := FetcherFunc(func(_ context.Context, url string) ([]byte, error) {
		if url == "u1" {
			return nil, errors.New("404")
		}
		return pngHeader, nil
	})
	store := &memStore{}

	res := imageResponse("u0", "u1")
	err := New(fetcher, store, nil).Fill(context.Background(), res, "p")

	if !errors.Is(err, ErrAssetFetch) {
		t.Fatalf("Fill() error = %v, want ErrAssetFetch", err)
	}
	var fetchErr *AssetFetchError
	if !errors.As(err, &fetchErr) || fetchErr.Slot != 1 || fetchErr.URL != "u1" {
		t.Errorf("AssetFetchError = %+v", fetchErr)
	}
	for i, slot := range res.Data {
		if slot.Data != nil || slot.MimeType != "" || slot.Path != "" {
			t.Errorf("slot %d was modified: %+v", i, slot)
		}
	}
	if len(store.saved) != 0 {
		t.Errorf("nothing should be saved, got %d entries", len(store.saved))
	}
}

// TestFill_PersistNames verifies slot 0 uses the prompt and later slots get
// the index appended.
func TestFill_PersistNames(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context, string) ([]byte, error) { return pngHeader, nil })
	store := &memStore{}

	res := imageResponse("u0", "u1", "u2")
	if err := New(fetcher, store, nil).Fill(context.Background(), res, "a cat"); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	for _, name := range []string{"a cat", "a cat 1", "a cat 2"} {
		if _, ok := store.saved[name]; !ok {
			t.Errorf("%q was not saved; saved %v", name, store.saved)
		}
	}
	if res.Data[2].Path != "/images/a cat 2.png" {
		t.Errorf("slot 2 Path = %q", res.Data[2].Path)
	}
}

// TestFill_PersistFailureKeepsData verifies a failed save is logged and the
// slot keeps its downloaded data.
func TestFill_PersistFailureKeepsData(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context, string) ([]byte, error) { return pngHeader, nil })
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	res := imageResponse("u0")
	if err := New(fetcher, &memStore{fail: true}, logger).Fill(context.Background(), res, "p"); err != nil {
		t.Fatalf("Fill() error = %v, persistence failures are not fatal", err)
	}
	if res.Data[0].Data == nil || res.Data[0].Path != "" {
		t.Errorf("slot = %+v, want data and no path", res.Data[0])
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "disk full") {
		t.Errorf("expected a warning, got %s", logs.String())
	}
}

// TestFill_Empty verifies a response with no slots completes at once.
func TestFill_Empty(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context, string) ([]byte, error) {
		t.Error("no fetch expected")
		return nil, nil
	})
	if err := New(fetcher, nil, nil).Fill(context.Background(), &openai.ImageResponse{}, "p"); err != nil {
		t.Errorf("Fill() error = %v", err)
	}
}

// TestFill_Metrics verifies fetch counters reach the context observer.
func TestFill_Metrics(t *testing.T) {
	fetcher := FetcherFunc(func(context.Context, string) ([]byte, error) { return pngHeader, nil })
	var out bytes.Buffer
	observer := slogobs.New(slogobs.WithOutput(&out), slogobs.WithLevel(slog.LevelDebug))
	ctx := observability.ContextWithObserver(context.Background(), observer)

	if err := New(fetcher, &memStore{}, nil).Fill(ctx, imageResponse("u0", "u1"), "p"); err != nil {
		t.Fatal(err)
	}
	if got := observer.CounterValue(observability.MetricImageFetchCount); got != 2 {
		t.Errorf("fetch count = %d, want 2", got)
	}
	for _, event := range []string{observability.EventImageFetched, observability.EventImagePersisted} {
		if !strings.Contains(out.String(), event) {
			t.Errorf("%s missing from %s", event, out.String())
		}
	}
}

// TestHTTPFetcher verifies a download and that non-2xx answers fail.
func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			http.Error(w, "gone", http.StatusGone)
			return
		}
		w.Write(pngHeader)
	}))
	defer server.Close()

	fetcher := HTTPFetcher{Client: server.Client()}
	data, err := fetcher.Fetch(context.Background(), server.URL+"/img")
	if err != nil || !bytes.Equal(data, pngHeader) {
		t.Errorf("Fetch() = %q, %v", data, err)
	}
	if _, err := fetcher.Fetch(context.Background(), server.URL+"/gone"); !errors.Is(err, utils.ErrStatus) {
		t.Errorf("Fetch(gone) error = %v, want ErrStatus", err)
	}
}

func TestSlotName(t *testing.T) {
	if SlotName("p", 0) != "p" || SlotName("p", 3) != "p 3" {
		t.Errorf("SlotName() = %q, %q", SlotName("p", 0), SlotName("p", 3))
	}

	long := strings.Repeat("a", 150)
	if got := SlotName(long, 0); got != strings.Repeat("a", MaxSlotBaseLength) {
		t.Errorf("SlotName(long, 0) has %d runes", len(got))
	}
	if got := SlotName(long, 2); got != strings.Repeat("a", MaxSlotBaseLength)+" 2" {
		t.Errorf("SlotName(long, 2) = %q", got)
	}
}

// TestFill_LongPromptKeepsSlotsApart verifies every slot of a prompt longer
// than the name cap is written to its own file.
func TestFill_LongPromptKeepsSlotsApart(t *testing.T) {
	fetcher := FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return append(append([]byte(nil), pngHeader...), url...), nil
	})
	fs := afero.NewMemMapFs()
	res := imageResponse("u0", "u1", "u2")

	if err := New(fetcher, storage.NewFileStore(fs, "/img"), slog.New(slog.DiscardHandler)).Fill(context.Background(), res, strings.Repeat("a", 120)); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	seen := map[string]int{}
	for i, slot := range res.Data {
		if slot.Path == "" {
			t.Fatalf("slot %d was not saved", i)
		}
		if prev, ok := seen[slot.Path]; ok {
			t.Fatalf("slots %d and %d saved to %s", prev, i, slot.Path)
		}
		seen[slot.Path] = i

		data, err := afero.ReadFile(fs, slot.Path)
		if err != nil || !bytes.Equal(data, slot.Data) {
			t.Errorf("slot %d file content = %q, %v", i, data, err)
		}
	}
}
