package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// httpBackend talks to a running brewdex server over its HTTP API.
type httpBackend struct {
	baseURL string
	token   string
	client  *http.Client
}

func newHTTPBackend(baseURL, token string) *httpBackend {
	return &httpBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (b *httpBackend) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	return b.client.Do(req)
}

// apiError turns a non-2xx response into an error, using the server's
// {"error": "..."} payload when it has one.
func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("server: %s", payload.Error)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}

func (b *httpBackend) Import(ctx context.Context, doc []byte) (importOutcome, error) {
	resp, err := b.do(ctx, http.MethodPost, "/v1/import", bytes.NewReader(doc))
	if err != nil {
		return importOutcome{}, err
	}
	defer resp.Body.Close()

	// The server answers with the same payload whether it stored the
	// document or rejected it.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnprocessableEntity {
		return importOutcome{}, apiError(resp)
	}
	var out importOutcome
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return importOutcome{}, fmt.Errorf("decode import response: %w", err)
	}
	return out, nil
}

func (b *httpBackend) Export(ctx context.Context) ([]byte, error) {
	resp, err := b.do(ctx, http.MethodGet, "/v1/export", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (b *httpBackend) List(ctx context.Context, collection string) ([]entityRow, error) {
	resp, err := b.do(ctx, http.MethodGet, "/v1/"+collection, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var payload struct {
		Items []entityRow `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return payload.Items, nil
}

func (b *httpBackend) Show(ctx context.Context, collection string, id int64) (map[string]any, error) {
	resp, err := b.do(ctx, http.MethodGet, "/v1/"+collection+"/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var fragment map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&fragment); err != nil {
		return nil, fmt.Errorf("decode entity response: %w", err)
	}
	return fragment, nil
}

func (b *httpBackend) Delete(ctx context.Context, collection string, id int64) error {
	resp, err := b.do(ctx, http.MethodDelete, "/v1/"+collection+"/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

func (b *httpBackend) Health(ctx context.Context) (string, error) {
	resp, err := b.do(ctx, http.MethodGet, "/v1/health", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode health response: %w", err)
	}
	return payload.Status, nil
}

func (b *httpBackend) Close() error {
	b.client.CloseIdleConnections()
	return nil
}
