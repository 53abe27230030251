// Package billdesk is the HTTP client for the external bill catalog
// collaborator. All loose wire shapes are normalized here so the rest of the
// system consumes one stable domain shape.
package billdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/billpie/billpie/internal/api/metrics"
	"github.com/billpie/billpie/internal/core/domain"
)

const (
	defaultTimeout        = 15 * time.Second
	dialTimeout           = 5 * time.Second
	tlsHandshakeTimeout   = 5 * time.Second
	responseHeaderTimeout = 10 * time.Second

	// maxErrorBody caps how much of an error response is read for the
	// "message" field.
	maxErrorBody = 64 << 10
)

// Config captures the settings for reaching the collaborator.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared HTTP core used by the catalog, ledger, and profile
// adapters.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds a collaborator client with connection timeouts applied.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
}

// Ping probes collaborator reachability for the readiness check.
func (c *Client) Ping(ctx context.Context) error {
	var raw json.RawMessage
	return c.do(ctx, "ping", http.MethodGet, "/recentBills", nil, &raw)
}

// do executes one JSON request against the collaborator. body and out may be
// nil. Non-2xx responses and transport failures are returned as
// *domain.CollaboratorError; the error body's "message" field is preserved
// verbatim when present.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &domain.CollaboratorError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.CollaboratorError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.CollaboratorRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CollaboratorRequestsTotal.WithLabelValues(op, "transport_error").Inc()
		c.logger.Error().Err(err).Str("operation", op).Msg("collaborator request failed")
		return &domain.CollaboratorError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.CollaboratorRequestsTotal.WithLabelValues(op, "http_error").Inc()
		msg := decodeErrorMessage(resp.Body)
		c.logger.Warn().
			Str("operation", op).
			Int("status", resp.StatusCode).
			Str("message", msg).
			Msg("collaborator returned error status")
		return &domain.CollaboratorError{Op: op, Status: resp.StatusCode, Message: msg}
	}

	metrics.CollaboratorRequestsTotal.WithLabelValues(op, "ok").Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.CollaboratorError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeErrorMessage extracts the collaborator's JSON error "message" field,
// returning "" when the body is not JSON or carries no message.
func decodeErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
