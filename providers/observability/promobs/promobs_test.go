package promobs

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/leofalp/oaikit/providers/observability"
)

// TestMetrics_Counter verifies label values are taken from attributes.
func TestMetrics_Counter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	ctx := context.Background()

	requests := m.Counter(observability.MetricAPIRequestCount)
	requests.Add(ctx, 1, observability.String(observability.AttrAPIFamily, "text"), observability.String(observability.AttrAPIResult, "success"))
	requests.Add(ctx, 2, observability.String(observability.AttrAPIFamily, "text"), observability.String(observability.AttrAPIResult, "success"))
	requests.Add(ctx, 1, observability.String(observability.AttrAPIFamily, "image"), observability.String(observability.AttrAPIResult, "protocol_error"))
	requests.Add(ctx, -5)

	vec := m.counters[observability.MetricAPIRequestCount].vec
	if got := testutil.ToFloat64(vec.WithLabelValues("text", "success")); got != 3 {
		t.Errorf("text/success = %v, want 3", got)
	}
	if got := testutil.ToFloat64(vec.WithLabelValues("image", "protocol_error")); got != 1 {
		t.Errorf("image/protocol_error = %v, want 1", got)
	}

	if m.Counter(observability.MetricAPIRequestCount) != requests {
		t.Error("Counter() should return the same instrument for the same name")
	}
	if n, err := testutil.GatherAndCount(reg, "oaikit_api_request_count"); err != nil || n != 2 {
		t.Errorf("GatherAndCount() = %d, %v; want 2 series", n, err)
	}
}

// TestMetrics_Histogram verifies observations land on the registry.
func TestMetrics_Histogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Histogram(observability.MetricAPIRequestDuration).Record(context.Background(), 0.2,
		observability.String(observability.AttrAPIFamily, "chat"),
		observability.String(observability.AttrAPIResult, "success"),
	)
	m.Histogram(observability.MetricImageBytes).Record(context.Background(), 4096)

	expected := `
# HELP oaikit_image_bytes Size of downloaded images in bytes.
# TYPE oaikit_image_bytes histogram
oaikit_image_bytes_bucket{le="1024"} 0
oaikit_image_bytes_bucket{le="4096"} 1
oaikit_image_bytes_bucket{le="16384"} 1
oaikit_image_bytes_bucket{le="65536"} 1
oaikit_image_bytes_bucket{le="262144"} 1
oaikit_image_bytes_bucket{le="1.048576e+06"} 1
oaikit_image_bytes_bucket{le="4.194304e+06"} 1
oaikit_image_bytes_bucket{le="1.6777216e+07"} 1
oaikit_image_bytes_bucket{le="+Inf"} 1
oaikit_image_bytes_sum 4096
oaikit_image_bytes_count 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "oaikit_image_bytes"); err != nil {
		t.Error(err)
	}
	if n, err := testutil.GatherAndCount(reg, "oaikit_api_request_duration"); err != nil || n != 1 {
		t.Errorf("GatherAndCount(duration) = %d, %v", n, err)
	}
}

// TestMetrics_SharedRegistry verifies two instances on one registry reuse the
// registered collector instead of failing.
func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, second := New(reg), New(reg)

	first.Counter("custom.events").Add(context.Background(), 1)
	second.Counter("custom.events").Add(context.Background(), 1, observability.String("ignored", "x"))

	if got := testutil.ToFloat64(first.counters["custom.events"].vec.WithLabelValues()); got != 2 {
		t.Errorf("custom_events = %v, want 2", got)
	}
}

// TestWrap verifies tracing and logging come from the base provider.
func TestWrap(t *testing.T) {
	p := Wrap(prometheus.NewRegistry(), nil)
	ctx, span := p.StartSpan(context.Background(), "x")
	span.End()
	p.Info(ctx, "hello")
	p.Counter(observability.MetricImageFetchCount).Add(ctx, 1, observability.String(observability.AttrAPIResult, "success"))
}

func TestMetricName(t *testing.T) {
	tests := map[string]string{
		"oaikit.api.request.count": "oaikit_api_request_count",
		"api-family":               "api_family",
		"9lives":                   "_lives",
	}
	for in, want := range tests {
		if got := MetricName(in); got != want {
			t.Errorf("MetricName(%q) = %q, want %q", in, got, want)
		}
	}
}
