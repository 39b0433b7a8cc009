// Package client is the Go consumer of the dashboard API: a typed HTTP
// client plus the fetch-layer plumbing a long-lived UI process needs
// (response caching with revalidation, list paging state, call scheduling
// and persisted preferences).
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	xhttp "FundLens/pkg/http"
)

// API calls the dashboard HTTP API. GET requests are retried once on
// transport failures and 5xx answers; mutations never are.
type API struct {
	base string
	http *xhttp.Client
}

// NewAPI creates an API client for a base URL like "http://localhost:8000".
func NewAPI(base string, opts ...xhttp.ClientOption) *API {
	if len(opts) == 0 {
		opts = []xhttp.ClientOption{xhttp.WithTimeout(15 * time.Second)}
	}
	return &API{
		base: strings.TrimRight(base, "/"),
		http: xhttp.NewClient(opts...),
	}
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a non-2xx application status inside the response envelope.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Status, e.Body)
}

// Get fetches path with query parameters and decodes the payload into dest.
func (a *API) Get(ctx context.Context, path string, query map[string][]string, dest interface{}) error {
	opts := &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         a.base + path,
		QueryParams: query,
	}
	err := a.do(ctx, opts, dest)
	if err == nil || !retryable(err) {
		return err
	}
	return a.do(ctx, opts, dest)
}

// Post sends body as JSON to path and decodes the payload into dest.
func (a *API) Post(ctx context.Context, path string, body, dest interface{}) error {
	return a.do(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    a.base + path,
		Body:   body,
	}, dest)
}

// Delete issues a DELETE to path.
func (a *API) Delete(ctx context.Context, path string, query map[string][]string) error {
	return a.do(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodDelete,
		URL:         a.base + path,
		QueryParams: query,
	}, nil)
}

func (a *API) do(ctx context.Context, opts *xhttp.RequestOptions, dest interface{}) error {
	var raw []byte
	if err := a.http.SendAndParse(ctx, opts, &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil // 204
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.Status >= 400 {
		return &APIError{Status: env.Status, Body: string(env.Data)}
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// retryable reports whether a GET failure is worth one more attempt:
// transport errors and 5xx application statuses.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return true
}
