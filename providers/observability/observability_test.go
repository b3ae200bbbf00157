package observability

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestAttribute_Constructors(t *testing.T) {
	tests := []struct {
		name  string
		attr  Attribute
		key   string
		value any
	}{
		{"string", String("key", "value"), "key", "value"},
		{"int", Int("count", 42), "count", 42},
		{"int64", Int64("big", 9223372036854775807), "big", int64(9223372036854775807)},
		{"float64", Float64("rate", 0.95), "rate", 0.95},
		{"bool", Bool("flag", true), "flag", true},
		{"duration", Duration("latency", 5*time.Second), "latency", 5 * time.Second},
		{"error", Error(errors.New("test error")), "error", "test error"},
		{"nil error", Error(nil), "error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.key)
			}
			if tt.attr.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.value)
			}
		})
	}
}

func TestStatusCode_String(t *testing.T) {
	if StatusUnset != 0 || StatusOK.String() != "ok" || StatusError.String() != "error" || StatusUnset.String() != "unset" {
		t.Error("unexpected StatusCode values")
	}
}

func TestSlogAttrs(t *testing.T) {
	attrs := SlogAttrs(String("a", "x"), Int("b", 2))
	if len(attrs) != 2 {
		t.Fatalf("SlogAttrs() returned %d attrs", len(attrs))
	}
	if attrs[0].Key != "a" || attrs[0].Value.Kind() != slog.KindString {
		t.Errorf("attrs[0] = %v", attrs[0])
	}
	if attrs[1].Value.Int64() != 2 {
		t.Errorf("attrs[1] = %v", attrs[1])
	}
}

// TestNop verifies the discarding provider is safe to use everywhere.
func TestNop(t *testing.T) {
	p := Nop()
	ctx, span := p.StartSpan(context.Background(), "x", String("k", "v"))
	span.AddEvent("e")
	span.SetStatus(StatusOK, "")
	span.RecordError(errors.New("ignored"))
	span.End()
	p.Counter("c").Add(ctx, 1)
	p.Histogram("h").Record(ctx, 0.5)
	p.Info(ctx, "message")
}

func BenchmarkAttribute_String(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = String("key", "value")
	}
}
