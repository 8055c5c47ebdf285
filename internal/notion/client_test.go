package notion_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabaworks/axsync/internal/notion"
)

func newClient(t *testing.T, handler http.HandlerFunc) *notion.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return notion.NewClient(srv.URL, "notion-key", 5*time.Second)
}

func TestClient_Search(t *testing.T) {
	pageID := uuid.New()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/databases/db-invoices/query", r.URL.Path)
		assert.Equal(t, "Bearer notion-key", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"filter": {"property": "ID Facture Axonaut", "number": {"equals": 42}}
		}`, string(body))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{"id": pageID.String()}},
		})
	})

	pages, err := c.Search(context.Background(), "db-invoices", notion.Filter{
		Property: "ID Facture Axonaut",
		Equals:   42,
	})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, pageID, pages[0].ID)
}

func TestClient_Search_NoMatch(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	})

	pages, err := c.Search(context.Background(), "db-invoices", notion.Filter{
		Property: "ID Facture Axonaut",
		Equals:   999,
	})
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestClient_CreatePage(t *testing.T) {
	pageID := uuid.New()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"parent": {"database_id": "db-invoices"},
			"properties": {"Numéro": {"title": [{"text": {"content": "F-42"}}]}}
		}`, string(body))

		_ = json.NewEncoder(w).Encode(map[string]any{"id": pageID.String()})
	})

	page, err := c.CreatePage(context.Background(), "db-invoices", notion.Properties{
		"Numéro": notion.Title("F-42"),
	})
	require.NoError(t, err)
	assert.Equal(t, pageID, page.ID)
}

func TestClient_UpdatePage(t *testing.T) {
	pageID := uuid.New()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/pages/"+pageID.String(), r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"properties": {"Montant": {"number": 50}}
		}`, string(body))

		_ = json.NewEncoder(w).Encode(map[string]any{"id": pageID.String()})
	})

	page, err := c.UpdatePage(context.Background(), pageID, notion.Properties{
		"Montant": notion.Number(50),
	})
	require.NoError(t, err)
	assert.Equal(t, pageID, page.ID)
}

func TestClient_ServerError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.CreatePage(context.Background(), "db-invoices", notion.Properties{})
	assert.Error(t, err)
}
