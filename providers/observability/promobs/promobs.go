// Package promobs implements observability.Metrics on Prometheus counters and
// histograms registered on a caller-supplied registry.
//
// Attribute keys become label names ("api.family" is exported as label
// "api_family"). Metrics known to oaikit have a fixed label set; any other
// name is created on first use without labels.
package promobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/leofalp/oaikit/providers/observability"
)

// Definition describes how one metric name is exported.
type Definition struct {
	Help    string
	Labels  []string // attribute keys, in label order
	Buckets []float64
}

// Definitions for the metrics the client reports.
var Definitions = map[string]Definition{
	observability.MetricAPIRequestCount: {
		Help:   "API requests by family and transport result.",
		Labels: []string{observability.AttrAPIFamily, observability.AttrAPIResult},
	},
	observability.MetricAPIRequestDuration: {
		Help:    "API request round trip in seconds.",
		Labels:  []string{observability.AttrAPIFamily, observability.AttrAPIResult},
		Buckets: prometheus.DefBuckets,
	},
	observability.MetricImageFetchCount: {
		Help:   "Image downloads by outcome.",
		Labels: []string{observability.AttrAPIResult},
	},
	observability.MetricImageBytes: {
		Help:    "Size of downloaded images in bytes.",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	},
}

// Metrics hands out Prometheus backed instruments.
type Metrics struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]*counter
	histograms map[string]*histogram
}

var _ observability.Metrics = (*Metrics)(nil)

// New registers instruments on registerer as they are first requested. A nil
// registerer means prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Metrics{
		registerer: registerer,
		counters:   make(map[string]*counter),
		histograms: make(map[string]*histogram),
	}
}

// Counter returns the counter exported as the sanitised name.
func (m *Metrics) Counter(name string) observability.Counter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.counters[name]; ok {
		return c
	}
	def := Definitions[name]
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricName(name),
		Help: helpFor(name, def),
	}, labelNames(def.Labels))
	if existing, err := register(m.registerer, vec); err == nil {
		if registered, ok := existing.(*prometheus.CounterVec); ok {
			vec = registered
		}
	}

	c := &counter{vec: vec, keys: def.Labels}
	m.counters[name] = c
	return c
}

// Histogram returns the histogram exported as the sanitised name.
func (m *Metrics) Histogram(name string) observability.Histogram {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h, ok := m.histograms[name]; ok {
		return h
	}
	def := Definitions[name]
	buckets := def.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    MetricName(name),
		Help:    helpFor(name, def),
		Buckets: buckets,
	}, labelNames(def.Labels))
	if existing, err := register(m.registerer, vec); err == nil {
		if registered, ok := existing.(*prometheus.HistogramVec); ok {
			vec = registered
		}
	}

	h := &histogram{vec: vec, keys: def.Labels}
	m.histograms[name] = h
	return h
}

// register returns the collector that ends up registered: c itself, or the
// one registered before under the same descriptor. On any other failure c
// stays unregistered but usable.
func register(registerer prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	err := registerer.Register(c)
	if err == nil {
		return c, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return already.ExistingCollector, nil
	}
	return nil, err
}

type counter struct {
	vec  *prometheus.CounterVec
	keys []string
}

func (c *counter) Add(_ context.Context, value int64, attrs ...observability.Attribute) {
	if value < 0 {
		return
	}
	c.vec.WithLabelValues(labelValues(c.keys, attrs)...).Add(float64(value))
}

type histogram struct {
	vec  *prometheus.HistogramVec
	keys []string
}

func (h *histogram) Record(_ context.Context, value float64, attrs ...observability.Attribute) {
	h.vec.WithLabelValues(labelValues(h.keys, attrs)...).Observe(value)
}

// MetricName turns a dotted metric name into a Prometheus one.
func MetricName(name string) string {
	return sanitize(name)
}

func sanitize(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func labelNames(keys []string) []string {
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = sanitize(key)
	}
	return names
}

// labelValues picks the value of each key from attrs; missing keys export as
// the empty string.
func labelValues(keys []string, attrs []observability.Attribute) []string {
	values := make([]string, len(keys))
	for i, key := range keys {
		for _, attr := range attrs {
			if attr.Key == key {
				values[i] = fmt.Sprint(attr.Value)
				break
			}
		}
	}
	return values
}

func helpFor(name string, def Definition) string {
	if def.Help != "" {
		return def.Help
	}
	return "oaikit metric " + name
}

// Wrap combines the tracing and logging of base with Prometheus metrics.
func Wrap(registerer prometheus.Registerer, base observability.Provider) observability.Provider {
	if base == nil {
		base = observability.Nop()
	}
	return &provider{Tracer: base, Logger: base, Metrics: New(registerer)}
}

type provider struct {
	observability.Tracer
	observability.Logger
	observability.Metrics
}
