package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// BackendClient talks to the bookshop REST backend. Each call makes a
// single attempt: callers decide whether to re-invoke on failure.
type BackendClient struct {
	logger     *zap.Logger
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient provides a ready to use bookshop backend client.
func NewBackendClient(logger *zap.Logger, config *BackendConfig) *BackendClient {
	return &BackendClient{
		logger:  logger,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.RequestTimeout,
		},
	}
}

// doJSON performs one HTTP call against the backend and decodes the
// JSON response into out when provided. A transport failure maps to
// *NetworkError. A non-2xx status maps to *ServerError carrying the
// backend `message` field, falling back to the HTTP status text when
// the body is absent or unparseable.
func (c *BackendClient) doJSON(ctx context.Context, method, path, token string, payload, out interface{}) error {
	resp, err := c.do(ctx, method, path, token, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.serverError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ServerError{Status: resp.StatusCode, Message: "unexpected response from server"}
	}
	return nil
}

// doText behaves like doJSON but returns the raw response body. Used
// by the admin populate endpoint which answers with plain text.
func (c *BackendClient) doText(ctx context.Context, method, path, token string, payload interface{}) (string, error) {
	resp, err := c.do(ctx, method, path, token, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", c.serverError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServerError{Status: resp.StatusCode, Message: "unexpected response from server"}
	}
	return string(data), nil
}

func (c *BackendClient) do(ctx context.Context, method, path, token string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("backend call failed",
			zap.String("backend.method", method),
			zap.String("backend.path", path),
			zap.Error(err),
		)
		return nil, &NetworkError{Err: err}
	}
	return resp, nil
}

func (c *BackendClient) serverError(resp *http.Response) error {
	var envelope messageResponse
	//nolint:errcheck // a broken body keeps the generic fallback message.
	json.NewDecoder(resp.Body).Decode(&envelope)
	msg := strings.TrimSpace(envelope.Message)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &ServerError{Status: resp.StatusCode, Message: msg}
}
