package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const apiVersion = "2022-06-28"

// Page is a record in a Notion database.
type Page struct {
	ID uuid.UUID `json:"id"`
}

// Filter is an equality predicate on a single number property.
type Filter struct {
	Property string
	Equals   int
}

// Client talks to the Notion REST API. Every operation is a single remote
// call; nothing is retried.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	Filter queryFilter `json:"filter"`
}

type queryFilter struct {
	Property string       `json:"property"`
	Number   numberEquals `json:"number"`
}

type numberEquals struct {
	Equals int `json:"equals"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// Search queries a database for pages matching the filter. The result order
// is the API's; an empty slice means no match.
func (c *Client) Search(ctx context.Context, databaseID string, filter Filter) ([]Page, error) {
	body := queryRequest{
		Filter: queryFilter{
			Property: filter.Property,
			Number:   numberEquals{Equals: filter.Equals},
		},
	}

	var resp queryResponse
	path := fmt.Sprintf("/v1/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("querying database %s: %w", databaseID, err)
	}

	return resp.Results, nil
}

type createRequest struct {
	Parent     pageParent `json:"parent"`
	Properties Properties `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePage creates a page in the given database.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error) {
	body := createRequest{
		Parent:     pageParent{DatabaseID: databaseID},
		Properties: props,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/v1/pages", body, &page); err != nil {
		return nil, fmt.Errorf("creating page in %s: %w", databaseID, err)
	}

	return &page, nil
}

type updateRequest struct {
	Properties Properties `json:"properties"`
}

// UpdatePage overwrites the given properties on an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID uuid.UUID, props Properties) (*Page, error) {
	var page Page
	path := fmt.Sprintf("/v1/pages/%s", pageID)
	if err := c.do(ctx, http.MethodPatch, path, updateRequest{Properties: props}, &page); err != nil {
		return nil, fmt.Errorf("updating page %s: %w", pageID, err)
	}

	return &page, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
