package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every outbound call; a request that exceeds it is
// treated as a plain failure by the caller.
const DefaultTimeout = 10 * time.Second

// ExternalAPIService is a struct representing a configurable external service.
// The auth token is an explicit parameter on every call; no client state is
// shared between calls.
type ExternalAPIService struct {
	Timeout time.Duration
}

// NewExternalAPIService creates a new instance of ExternalAPIService
func NewExternalAPIService() *ExternalAPIService {
	return &ExternalAPIService{Timeout: DefaultTimeout}
}

// makeRequest is a helper function to make HTTP requests, supporting optional query parameters
func (s *ExternalAPIService) makeRequest(ctx context.Context, method, endpoint, token string, params url.Values, body interface{}) (*http.Response, error) {
	if params != nil {
		endpoint = endpoint + "?" + params.Encode()
	}

	var err error
	var jsonBody []byte
	if body != nil {
		jsonBody, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: s.Timeout}
	return client.Do(req)
}

// Get makes a GET request to the external service, accepting optional query parameters
func (s *ExternalAPIService) Get(ctx context.Context, endpoint, token string, params url.Values) (*http.Response, error) {
	return s.makeRequest(ctx, "GET", endpoint, token, params, nil)
}

// Post makes a POST request to the external service, accepting optional query parameters
func (s *ExternalAPIService) Post(ctx context.Context, endpoint, token string, params url.Values, body interface{}) (*http.Response, error) {
	return s.makeRequest(ctx, "POST", endpoint, token, params, body)
}
