package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupExporter(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})
	return exporter, tp
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter, tp := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"summary":"ok"}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/summarize", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "POST /summarize" {
		t.Errorf("span name = %q, want %q", span.Name, "POST /summarize")
	}

	var gotMethod, gotPath string
	var gotStatus int64
	for _, attr := range span.Attributes {
		switch attr.Key {
		case "http.method":
			gotMethod = attr.Value.AsString()
		case "http.path":
			gotPath = attr.Value.AsString()
		case "http.status_code":
			gotStatus = attr.Value.AsInt64()
		}
	}
	if gotMethod != "POST" {
		t.Errorf("http.method = %q, want POST", gotMethod)
	}
	if gotPath != "/summarize" {
		t.Errorf("http.path = %q, want /summarize", gotPath)
	}
	if gotStatus != http.StatusOK {
		t.Errorf("http.status_code = %d, want 200", gotStatus)
	}
}

func TestMiddleware_SetsTraceIDHeader(t *testing.T) {
	setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Header().Get("X-Trace-Id") == "" {
		t.Error("X-Trace-Id response header should be set")
	}
}

func TestMiddleware_MarksServerErrors(t *testing.T) {
	exporter, tp := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/quiz", nil))

	_ = tp.ForceFlush(context.Background())

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	foundError := false
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" && attr.Value.AsBool() {
			foundError = true
		}
	}
	if !foundError {
		t.Error("5xx response should mark the span with error=true")
	}
}
