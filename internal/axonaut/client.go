package axonaut

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultLimit is the invoice page size used when no limit is given. The API
// is queried for a single page only; there is no pagination past this cap.
const DefaultLimit = 100

// Client talks to the Axonaut REST API.
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

// ListInvoices fetches a single page of invoices. A limit <= 0 falls back to
// DefaultLimit.
func (c *Client) ListInvoices(ctx context.Context, limit int) ([]Invoice, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}

	var invoices []Invoice
	if err := c.get(ctx, "/invoices", query, &invoices); err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return invoices, nil
}

// ListPayments fetches payments, optionally restricted to a single invoice
// when invoiceID is non-nil.
func (c *Client) ListPayments(ctx context.Context, invoiceID *int) ([]Payment, error) {
	query := url.Values{}
	if invoiceID != nil {
		query.Set("invoice_id", strconv.Itoa(*invoiceID))
	}

	var payments []Payment
	if err := c.get(ctx, "/payments", query, &payments); err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return payments, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
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
