// Package api is the typed HTTP client for the DuckyCart REST API. It covers
// four resource groups (auth, checklists, checklist items, cart sessions),
// injecting the bearer token from the session cache and translating non-2xx
// responses into typed failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/duckycart/companion/internal/common"
	"github.com/duckycart/companion/internal/logging"
	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for authenticated requests. The
// session cache satisfies it. An empty token is sent as-is: the client does
// not pre-validate auth, the server's 401 is the source of truth.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is a stateless REST client. It holds no session state of its own;
// every authenticated request reads the current token from the TokenSource.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// New constructs a Client for the given API origin. The timeout applies to
// each request through the underlying http.Client; there is no retry.
func New(baseURL string, tokens TokenSource, log logging.Logger, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// do builds, sends, and decodes one request. contentType is set when body is
// non-nil; out may be nil for operations whose response body is discarded.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, authed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%s: read token: %w", op, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestsTotal.WithLabelValues(op).Inc()

	resp, err := c.http.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(op, "network").Inc()
		c.log.Warn(ctx, "request failed", "op", op, "err", err)
		return fmt.Errorf("%w: %s: %v", common.ErrNetwork, op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug(ctx, "response", "op", op, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorsTotal.WithLabelValues(op, "remote").Inc()
		return newRemoteError(op, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// doJSON marshals payload as a JSON body and delegates to do.
func (c *Client) doJSON(ctx context.Context, op, method, path string, payload any, authed bool, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", op, err)
	}
	return c.do(ctx, op, method, path, bytes.NewReader(body), "application/json", authed, out)
}
