// Package delivery sends generated document payloads to downstream
// automation. The core constructs the payload; sinks only move it.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sink accepts a document payload for downstream processing. Retries and
// delivery confirmation beyond the returned error are the caller's concern.
type Sink interface {
	Deliver(ctx context.Context, payload map[string]any) error
}

// WebhookSink POSTs payloads as JSON to a fixed URL.
type WebhookSink struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// WebhookOption configures a WebhookSink.
type WebhookOption func(*WebhookSink)

// WithHTTPClient overrides the HTTP client used for deliveries.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(s *WebhookSink) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger attaches a logger for delivery outcomes.
func WithLogger(logger *zap.Logger) WebhookOption {
	return func(s *WebhookSink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewWebhookSink builds a sink delivering to the given URL.
func NewWebhookSink(url string, opts ...WebhookOption) (*WebhookSink, error) {
	if url == "" {
		return nil, fmt.Errorf("delivery: webhook url is required")
	}
	s := &WebhookSink{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Deliver implements Sink.
func (s *WebhookSink) Deliver(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("delivery: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("delivery: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("webhook delivery failed", zap.Error(err))
		return fmt.Errorf("delivery: post webhook: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("webhook delivery rejected", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("delivery: webhook returned status %d", resp.StatusCode)
	}

	s.logger.Info("webhook delivered", zap.Int("status", resp.StatusCode))
	return nil
}

var _ Sink = (*WebhookSink)(nil)
