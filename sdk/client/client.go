package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the translation client
type Config struct {
	// BaseURL is the base URL of the translation service
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the translation service client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new translation client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// TranslateRequest represents a translation request
type TranslateRequest struct {
	Source string `json:"source"`
}

// Diagnostic is a non-fatal lexical warning reported by the translator
type Diagnostic struct {
	Message string `json:"Message"`
	Line    int    `json:"Line"`
	Column  int    `json:"Column"`
}

// TranslateResponse represents a translation response
type TranslateResponse struct {
	Ok       bool         `json:"ok"`
	ID       string       `json:"id"`
	Python   string       `json:"python"`
	Warnings []Diagnostic `json:"warnings,omitempty"`
}

// Translate submits C++ source text and returns the Python translation
func (c *Client) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	// Validate required fields
	if req.Source == "" {
		return nil, errors.New("source is required")
	}

	endpoint := fmt.Sprintf("%s/api/translate", c.config.BaseURL)
	var resp TranslateResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// post performs a POST request to the specified endpoint with the given request and unmarshals the response into the specified response object
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	// Set up context with timeout
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	// Marshal request to JSON
	reqBody, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// Send request
	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	// Check for non-success status code
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Try to decode error response
		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil {
			// If we can't decode the error, create a generic one
			return &APIError{
				StatusCode: httpResp.StatusCode,
				Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
			}
		}

		apiErr.StatusCode = httpResp.StatusCode
		return &apiErr
	}

	// Decode response
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
