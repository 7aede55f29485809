package liss

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrNoData signals a successful call that returned nothing usable. The
// decode pipeline treats it as "no data", distinct from a transport error.
var ErrNoData = errors.New("liss: no data returned")

// Auth is the authentication object sent as the first parameter of every
// authenticated LISS call. Field names are fixed by the protocol.
type Auth struct {
	School      string `json:"School"`
	UserName    string `json:"UserName"`
	Password    string `json:"Password"`
	LissVersion int    `json:"LissVersion"`
	UserAgent   string `json:"UserAgent"`
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcError struct {
	Code        int    `json:"code"`
	FaultString string `json:"faultString"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// Client talks JSON-RPC 2.0 to a LISS endpoint.
type Client struct {
	endpoint   string
	auth       Auth
	structure  string
	maxRetries int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client from configuration, resolving credentials from
// the environment where configured.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("liss endpoint is not configured")
	}
	if cfg.School == "" {
		return nil, fmt.Errorf("liss school is not configured")
	}

	username, password, err := cfg.Credentials()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve liss credentials: %w", err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		endpoint: cfg.Endpoint,
		auth: Auth{
			School:      cfg.School,
			UserName:    username,
			Password:    password,
			LissVersion: cfg.Version,
			UserAgent:   cfg.UserAgent,
		},
		structure:  cfg.Structure,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		logger: logger,
	}, nil
}

// Hello calls the unauthenticated liveness method and returns the
// endpoint's greeting.
func (c *Client) Hello(ctx context.Context) (string, error) {
	raw, err := c.call(ctx, "liss.hello", []any{})
	if err != nil {
		return "", err
	}
	var greeting string
	if err := json.Unmarshal(raw, &greeting); err != nil {
		return string(raw), nil
	}
	return greeting, nil
}

// TimetableStructures returns the structures the endpoint can serve.
func (c *Client) TimetableStructures(ctx context.Context) ([]string, error) {
	raw, err := c.call(ctx, "liss.getTimetableStructures", []any{c.auth})
	if err != nil {
		return nil, err
	}
	var structures []string
	if err := json.Unmarshal(raw, &structures); err != nil {
		return nil, fmt.Errorf("unexpected structures payload: %w", err)
	}
	return structures, nil
}

// BellTimes fetches the raw bell-times export for the configured structure
// and returns it as a complete text blob for the decoder.
func (c *Client) BellTimes(ctx context.Context) (string, error) {
	raw, err := c.call(ctx, "liss.getBellTimes", []any{c.auth, c.structure})
	if err != nil {
		return "", err
	}

	// The endpoint wraps the export as a JSON string; fall back to the raw
	// bytes for servers that return it unquoted.
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		text = string(raw)
	}
	if text == "" {
		return "", ErrNoData
	}
	return text, nil
}

// call performs one JSON-RPC method call with bounded exponential backoff.
// Rate limiting, 5xx responses and network errors are retried; any other
// 4xx and protocol faults are terminal.
func (c *Client) call(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// 2, 4, 8... seconds between attempts.
			wait := time.Duration(1<<attempt) * time.Second
			c.logger.Debug("Retrying LISS call",
				zap.String("method", method),
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		raw, retryable, err := c.doOnce(ctx, method, body)
		if err == nil {
			return raw, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%s failed after %d attempts: %w", method, c.maxRetries+1, lastErr)
}

// doOnce performs a single HTTP round trip. The second return value says
// whether the failure is worth retrying.
func (c *Client) doOnce(ctx context.Context, method string, body []byte) (json.RawMessage, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%s transport error: %w", method, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%s: HTTP %d", method, resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("%s: HTTP %d", method, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if decoded.Error != nil {
		return nil, false, fmt.Errorf("%s fault: %s", method, decoded.Error.FaultString)
	}
	if len(decoded.Result) == 0 {
		return nil, false, ErrNoData
	}

	return decoded.Result, false, nil
}
