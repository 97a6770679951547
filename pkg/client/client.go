package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/terra-clan/paradigm-advisor/internal/models"
)

// Client is a Go SDK for the paradigm-advisor API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new paradigm-advisor client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is returned when the server answers with an error envelope
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s - %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err is a not_found API error
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == "not_found"
}

// Recommendation is the scorer's answer for a set of criteria.
// Recommendation is nil when no criteria were given.
type Recommendation struct {
	Criteria       []string               `json:"criteria"`
	Recommendation *models.Recommendation `json:"recommendation"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListScenarios returns every scenario in catalogue order
func (c *Client) ListScenarios(ctx context.Context) ([]models.Scenario, error) {
	var data struct {
		Scenarios []models.Scenario `json:"scenarios"`
	}
	if err := c.get(ctx, "/api/v1/scenarios", &data); err != nil {
		return nil, err
	}
	return data.Scenarios, nil
}

// GetScenario retrieves a scenario by ID
func (c *Client) GetScenario(ctx context.Context, id string) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := c.get(ctx, "/api/v1/scenarios/"+url.PathEscape(id), &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// ListCriteria returns every criterion in catalogue order
func (c *Client) ListCriteria(ctx context.Context) ([]models.Criterion, error) {
	var data struct {
		Criteria []models.Criterion `json:"criteria"`
	}
	if err := c.get(ctx, "/api/v1/criteria", &data); err != nil {
		return nil, err
	}
	return data.Criteria, nil
}

// Recommend scores the given criterion ids
func (c *Client) Recommend(ctx context.Context, criteria ...string) (*Recommendation, error) {
	path := "/api/v1/recommendation"
	if len(criteria) > 0 {
		path += "?" + url.Values{"criteria": {strings.Join(criteria, ",")}}.Encode()
	}

	var rec Recommendation
	if err := c.get(ctx, path, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Health checks if the service is healthy
func (c *Client) Health(ctx context.Context) error {
	var data map[string]string
	return c.get(ctx, "/health", &data)
}

// get performs a GET request and unwraps the response envelope into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var result envelope
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !result.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "unknown", Message: http.StatusText(resp.StatusCode)}
		if result.Error != nil {
			apiErr.Code = result.Error.Code
			apiErr.Message = result.Error.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return nil
}
