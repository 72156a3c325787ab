// Package api is the REST client for the hiring platform backend.
//
// Every request carries a bearer token from the auth store and an
// X-Request-ID. A 401 triggers one token refresh before the request is
// replayed. Idempotent GETs retry on transient failures; mutations never
// retry. Non-2xx responses map onto the sentinels in internal/domain.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"nathanbeddoewebdev/hirectl/internal/domain"
	"nathanbeddoewebdev/hirectl/internal/retry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.hirectl.app/v1"
	DefaultTimeout = 30 * time.Second

	headerRequestID = "X-Request-ID"
	refreshPath     = "/auth/refresh"
)

// TokenSource supplies and persists the session tokens.
type TokenSource interface {
	AccessToken() (string, error)
	RefreshToken() (string, error)
	SaveTokens(access, refresh string) error
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Tokens     TokenSource
	Logger     *zap.Logger
	Retry      *retry.Config
	HTTPClient *http.Client
}

// Client talks to the backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
	retry   retry.Config

	refreshMu sync.Mutex
}

// New creates a Client.
func New(opts Options) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rc := retry.DefaultConfig()
	if opts.Retry != nil {
		rc = *opts.Retry
	}
	return &Client{
		baseURL: base,
		http:    hc,
		tokens:  opts.Tokens,
		logger:  log.Named("api"),
		retry:   rc,
	}
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string { return c.baseURL }

// payload is a pre-encoded request body. It is kept as bytes so the
// request can be replayed after a refresh or a retry.
type payload struct {
	contentType string
	data        []byte
}

func jsonPayload(v any) (*payload, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("api: failed to encode request: %w", err)
	}
	return &payload{contentType: "application/json", data: data}, nil
}

// multipartPayload builds a form with one file part plus optional fields.
func multipartPayload(field, filename string, r io.Reader, fields map[string]string) (*payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("api: write form field %q: %w", k, err)
		}
	}
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("api: create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("api: read %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("api: close form: %w", err)
	}
	return &payload{contentType: w.FormDataContentType(), data: buf.Bytes()}, nil
}

// getJSON issues a GET with retries.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// sendJSON issues a mutation with a JSON body.
func (c *Client) sendJSON(ctx context.Context, method, path string, body any, out any) error {
	p, err := jsonPayload(body)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, nil, p, out)
}

// do runs one logical call: the request, at most one refresh-and-replay
// on 401, and retries when the method is GET.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body *payload, out any) error {
	requestID := uuid.NewString()

	call := func() error {
		token := c.accessToken()
		err := c.send(ctx, method, path, query, body, token, requestID, out)
		if !c.shouldRefresh(err, path) {
			return err
		}
		if rerr := c.refresh(ctx, token); rerr != nil {
			c.logger.Debug("token refresh failed",
				zap.String("request_id", requestID),
				zap.Error(rerr),
			)
			return err
		}
		return c.send(ctx, method, path, query, body, c.accessToken(), requestID, out)
	}

	if method != http.MethodGet {
		return call()
	}
	return retry.Do(ctx, c.retry, retry.IsRetryable, call)
}

func (c *Client) shouldRefresh(err error, path string) bool {
	if err == nil || c.tokens == nil || strings.HasPrefix(path, "/auth/") {
		return false
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

func (c *Client) accessToken() string {
	if c.tokens == nil {
		return ""
	}
	tok, err := c.tokens.AccessToken()
	if err != nil {
		return ""
	}
	return tok
}

// send performs a single HTTP exchange.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body *payload, token, requestID string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body.data)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return fmt.Errorf("api: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		return newError(resp.StatusCode, eb.text(), requestID)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("api: failed to decode response: %w", err)
	}
	return decodeInto(raw, out)
}

// refresh exchanges the refresh token for a new pair. Concurrent callers
// that saw the same stale token share one refresh.
func (c *Client) refresh(ctx context.Context, stale string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if current := c.accessToken(); current != "" && current != stale {
		return nil
	}

	_, err := c.Refresh(ctx)
	return err
}

// Refresh exchanges the stored refresh token for a new session pair and
// stores it.
func (c *Client) Refresh(ctx context.Context) (*domain.Session, error) {
	if c.tokens == nil {
		return nil, fmt.Errorf("refresh: %w", domain.ErrUnauthorized)
	}
	rt, err := c.tokens.RefreshToken()
	if err != nil || rt == "" {
		return nil, fmt.Errorf("refresh: no refresh token: %w", domain.ErrUnauthorized)
	}

	var s domain.Session
	if err := c.sendJSON(ctx, http.MethodPost, refreshPath, map[string]string{"refreshToken": rt}, &s); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if s.Token == "" {
		return nil, fmt.Errorf("refresh: empty token: %w", domain.ErrUnauthorized)
	}
	if s.RefreshToken == "" {
		s.RefreshToken = rt
	}
	if err := c.tokens.SaveTokens(s.Token, s.RefreshToken); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	return &s, nil
}

func escape(id string) string { return url.PathEscape(strings.TrimSpace(id)) }
