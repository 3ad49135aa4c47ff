package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookSinkDelivers(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink, err := NewWebhookSink(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookSink: %v", err)
	}

	payload := map[string]any{"type": "CCL", "clientName": "John Smith"}
	if err := sink.Deliver(context.Background(), payload); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if got["type"] != "CCL" || got["clientName"] != "John Smith" {
		t.Fatalf("server received %v", got)
	}
}

func TestWebhookSinkRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink, err := NewWebhookSink(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookSink: %v", err)
	}
	if err := sink.Deliver(context.Background(), map[string]any{"type": "CCL"}); err == nil {
		t.Fatal("Deliver should fail on a 5xx response")
	}
}

func TestWebhookSinkRequiresURL(t *testing.T) {
	if _, err := NewWebhookSink(""); err == nil {
		t.Fatal("NewWebhookSink should reject an empty url")
	}
}

func TestWebhookSinkCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink, err := NewWebhookSink(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhookSink: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sink.Deliver(ctx, map[string]any{"type": "CCL"}); err == nil {
		t.Fatal("Deliver should fail with a cancelled context")
	}
}
