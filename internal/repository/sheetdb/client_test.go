package sheetdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, zap.NewNop()), srv
}

func TestClientList_ParsesRows(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "posts", r.URL.Query().Get("sheet"))
		assert.NotEmpty(t, r.URL.Query().Get("t"), "list requests must carry a cache-busting timestamp")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"p1","likes":"3"},{"id":"p2","likes":7}]`))
	})
	defer srv.Close()

	records, err := client.List(context.Background(), "posts")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "p1", records[0].String("id"))
	assert.Equal(t, int64(3), records[0].Int64("likes"))
	assert.Equal(t, int64(7), records[1].Int64("likes"))
}

func TestClientList_ErrorStatusNormalizesToEmpty(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	records, err := client.List(context.Background(), "posts")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientList_NonArrayBodyNormalizesToEmpty(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"quota exceeded"}`))
	})
	defer srv.Close()

	records, err := client.List(context.Background(), "posts")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClientCreate_WrapsRecordInDataEnvelope(t *testing.T) {
	var received map[string]map[string]interface{}
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	})
	defer srv.Close()

	err := client.Create(context.Background(), "posts", Record{"id": "p1", "content": "xin chào"})
	require.NoError(t, err)
	require.Contains(t, received, "data")
	assert.Equal(t, "p1", received["data"]["id"])
}

func TestClientUpdate_ZeroUpdatedRowsIsAnError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/id/p1", r.URL.Path)
		w.Write([]byte(`{"updated":0}`))
	})
	defer srv.Close()

	err := client.Update(context.Background(), "posts", "p1", Record{"likes": "4"})
	assert.ErrorIs(t, err, ErrNothingUpdated)
}

func TestClientUpdate_ReportsUpdatedRow(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"updated":1}`))
	})
	defer srv.Close()

	err := client.Update(context.Background(), "posts", "p1", Record{"likes": "4"})
	assert.NoError(t, err)
}

func TestClientDelete_TargetsRowByID(t *testing.T) {
	var path string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		path = r.URL.Path
	})
	defer srv.Close()

	require.NoError(t, client.Delete(context.Background(), "posts", "p1"))
	assert.Equal(t, "/id/p1", path)
}

func TestClientSearch_SendsFiltersAsQuery(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "users", r.URL.Query().Get("sheet"))
		assert.Equal(t, "an", r.URL.Query().Get("username"))
		w.Write([]byte(`[{"username":"an"}]`))
	})
	defer srv.Close()

	records, err := client.Search(context.Background(), "users", map[string]string{"username": "an"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "an", records[0].String("username"))
}
