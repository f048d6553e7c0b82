// Package braindump is a typed client for the brain-dump HTTP service.
// It maps failures onto the probe error taxonomy: network errors and non-2xx
// responses become TRANSPORT_ERROR, unparseable bodies become FORMAT_ERROR.
package braindump

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	proberrors "braindump-probe/internal/common/errors"
	commonhttp "braindump-probe/internal/common/http"
	"braindump-probe/internal/common/logger"
)

const maxBodySnippet = 2048

type Client struct {
	baseURL string
	http    *commonhttp.Client
	logger  logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    commonhttp.NewClient(timeout),
		logger:  log.WithFields(map[string]interface{}{"component": "braindump-client"}),
	}
}

// VerifyUser calls GET /verify-user for the given identifier.
func (c *Client) VerifyUser(ctx context.Context, userID string) (*VerifyUserResult, error) {
	endpoint := "/verify-user"
	query := url.Values{"user_id": {userID}}

	status, body, err := c.do(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	raw, err := decodeObject(endpoint, status, body)
	if err != nil {
		return nil, err
	}

	var result VerifyUserResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, proberrors.NewFormatError(endpoint, status, snippet(body))
	}
	result.Raw = raw

	c.logger.Debug("verify-user response decoded", map[string]interface{}{
		"userId":     userID,
		"registered": result.Registered,
	})
	return &result, nil
}

// SubmitInput calls POST /brain-dump with a fresh request entity.
func (c *Client) SubmitInput(ctx context.Context, userID, text string) (*Response, error) {
	endpoint := "/brain-dump"

	payload, err := json.Marshal(DumpRequest{UserID: userID, Text: text})
	if err != nil {
		return nil, proberrors.NewTransportError(endpoint, fmt.Errorf("encode request: %w", err))
	}

	status, body, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}

	raw, err := decodeObject(endpoint, status, body)
	if err != nil {
		return nil, err
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, proberrors.NewFormatError(endpoint, status, snippet(body))
	}
	response.Raw = raw

	c.logger.Debug("brain-dump response decoded", map[string]interface{}{
		"intent": response.Intent,
		"status": response.Status,
	})
	return &response, nil
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*HealthResult, error) {
	endpoint := "/health"

	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	raw, err := decodeObject(endpoint, status, body)
	if err != nil {
		return nil, err
	}

	var result HealthResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, proberrors.NewFormatError(endpoint, status, snippet(body))
	}
	result.Raw = raw
	return &result, nil
}

// do issues one request and returns the HTTP status plus raw body. Every
// request carries a fresh X-Request-ID for correlation with server logs.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, proberrors.NewTransportError(path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("issuing request", map[string]interface{}{
		"method":    method,
		"path":      path,
		"requestId": requestID,
	})

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, proberrors.NewTransportError(path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, proberrors.NewTransportError(path, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, body, proberrors.NewHTTPStatusError(path, resp.StatusCode, snippet(body))
	}

	return resp.StatusCode, body, nil
}

// decodeObject parses the body as a JSON object, preserving the raw key set.
func decodeObject(endpoint string, status int, body []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, proberrors.NewFormatError(endpoint, status, snippet(body))
	}
	return raw, nil
}

func snippet(body []byte) string {
	s := string(body)
	if len(s) > maxBodySnippet {
		s = s[:maxBodySnippet] + "..."
	}
	return s
}
