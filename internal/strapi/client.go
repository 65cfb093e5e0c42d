// Package strapi is a typed client for the headless CMS REST API.
package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound signals that a single-record lookup matched nothing.
var ErrNotFound = errors.New("record not found")

// APIError is a non-2xx response from the CMS, with the body kept for diagnosis.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strapi api error: %d - %s", e.Status, e.Body)
}

// Client is a Strapi REST API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Strapi client. The token may be empty for read-only
// access to public content types.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the configured CMS base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Filter constrains a query to records whose field equals Value, using the
// CMS's $eq operator. Field is the path to the attribute, so {"category",
// "slug"} serializes as filters[category][slug][$eq].
type Filter struct {
	Field []string
	Value string
}

// Query enumerates the recognized query options for a list request. Anything
// the CMS query grammar supports beyond these three concerns is deliberately
// not expressible here.
type Query struct {
	Populate []string
	Filters  []Filter
	Sort     []string
}

// values serializes the query into the CMS's query-string grammar, e.g.
// populate=image&filters[isActive][$eq]=true&sort=order:asc.
func (q Query) values() url.Values {
	v := url.Values{}
	if len(q.Populate) > 0 {
		v.Set("populate", strings.Join(q.Populate, ","))
	}
	for _, f := range q.Filters {
		key := "filters"
		for _, part := range f.Field {
			key += "[" + part + "]"
		}
		v.Set(key+"[$eq]", f.Value)
	}
	for _, s := range q.Sort {
		v.Add("sort", s)
	}
	return v
}

// envelope is the {data, meta} wrapper the CMS returns for every query.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Pagination *Pagination `json:"pagination,omitempty"`
	} `json:"meta,omitempty"`
}

// do performs a single request against /api/{endpoint} and decodes the
// envelope's data field into result. Exactly one round trip; no retries.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, payload, result interface{}) (*Pagination, error) {
	u := c.baseURL + "/api" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(map[string]interface{}{"data": payload})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	if result != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return nil, fmt.Errorf("unmarshal data: %w", err)
		}
	}

	if env.Meta != nil {
		return env.Meta.Pagination, nil
	}
	return nil, nil
}

// getList fetches a collection endpoint into result, which must be a pointer
// to a slice of the content type.
func (c *Client) getList(ctx context.Context, endpoint string, q Query, result interface{}) (*Pagination, error) {
	return c.do(ctx, http.MethodGet, endpoint, q.values(), nil, result)
}

// getSingle fetches a single-type endpoint (e.g. /site-setting) into result.
func (c *Client) getSingle(ctx context.Context, endpoint string, q Query, result interface{}) error {
	_, err := c.do(ctx, http.MethodGet, endpoint, q.values(), nil, result)
	return err
}

// Create posts a new record to a collection endpoint. Used by the seeder only.
func (c *Client) Create(ctx context.Context, endpoint string, data interface{}) error {
	_, err := c.do(ctx, http.MethodPost, endpoint, nil, data, nil)
	return err
}

// Update puts a record to a single-type endpoint. Used by the seeder only.
func (c *Client) Update(ctx context.Context, endpoint string, data interface{}) error {
	_, err := c.do(ctx, http.MethodPut, endpoint, nil, data, nil)
	return err
}
