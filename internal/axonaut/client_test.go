package axonaut_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabaworks/axsync/internal/axonaut"
)

func TestClient_ListInvoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/invoices", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer ax-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 42, "number": "F-42", "amount_ttc": 120.0, "amount_ht": 100.0,
			 "date": "2026-08-01", "due_date": "2026-09-01", "status": "Paid",
			 "client_reference": "ACME"}
		]`))
	}))
	defer srv.Close()

	c := axonaut.NewClient(srv.URL, "ax-key", 5*time.Second)

	invoices, err := c.ListInvoices(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	inv := invoices[0]
	assert.Equal(t, 42, inv.ID)
	assert.Equal(t, "F-42", inv.Number)
	assert.True(t, decimal.NewFromFloat(120.0).Equal(inv.AmountTTC))
	assert.True(t, decimal.NewFromFloat(100.0).Equal(inv.AmountHT))
	assert.Equal(t, "2026-08-01", inv.Date)
	assert.Equal(t, "Paid", inv.Status)
}

func TestClient_ListInvoices_DefaultLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := axonaut.NewClient(srv.URL, "ax-key", 5*time.Second)

	invoices, err := c.ListInvoices(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestClient_ListInvoices_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := axonaut.NewClient(srv.URL, "ax-key", 5*time.Second)

	invoices, err := c.ListInvoices(context.Background(), 10)
	assert.Error(t, err)
	assert.Nil(t, invoices)
}

func TestClient_ListPayments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		assert.False(t, r.URL.Query().Has("invoice_id"))

		_, _ = w.Write([]byte(`[
			{"id": 7, "reference": "P-7", "invoice_id": 42, "amount": 50.0,
			 "date": "2026-08-15", "nature": "Transfer"}
		]`))
	}))
	defer srv.Close()

	c := axonaut.NewClient(srv.URL, "ax-key", 5*time.Second)

	payments, err := c.ListPayments(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	p := payments[0]
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "P-7", p.Reference)
	assert.Equal(t, 42, p.InvoiceID)
	assert.True(t, decimal.NewFromFloat(50.0).Equal(p.Amount))
	assert.Equal(t, "Transfer", p.Nature)
}

func TestClient_ListPayments_InvoiceFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("invoice_id"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := axonaut.NewClient(srv.URL, "ax-key", 5*time.Second)

	invoiceID := 42
	_, err := c.ListPayments(context.Background(), &invoiceID)
	require.NoError(t, err)
}
