package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPrice string
		wantHint  string
	}{
		{"number price", `{"id":"1","price":49.5}`, "49.5", ""},
		{"string price", `{"id":"1","price":"12.30"}`, "12.3", ""},
		{"non numeric price", `{"id":"1","price":"abc"}`, "0", ""},
		{"NaN price", `{"id":"1","price":"NaN"}`, "0", ""},
		{"missing price", `{"id":"1"}`, "0", ""},
		{"null price", `{"id":"1","price":null}`, "0", ""},
		{"boolean price", `{"id":"1","price":true}`, "0", ""},
		{"canonical hint", `{"displayHint":"desk lamp","dataAiHint":"x"}`, "0", "desk lamp"},
		{"camel hint", `{"dataAiHint":"office chair"}`, "0", "office chair"},
		{"hyphen hint", `{"data-ai-hint":"yoga mat"}`, "0", "yoga mat"},
		{"underscore hint", `{"data_ai_hint":"kettle"}`, "0", "kettle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Product
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(p.Price), "price %s", p.Price)
			assert.Equal(t, tt.wantHint, p.DisplayHint)
		})
	}
}

func TestClient_ListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"2","name":"Kettle","price":"35"},{"id":"1","name":"Chair","price":299.99}]`)
	}))
	defer srv.Close()

	items, err := New(srv.URL+"/", time.Second).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "35", items[0].Price.String())
	assert.Equal(t, "299.99", items[1].Price.String())
}

func TestClient_CreateProduct(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"abc","name":"Desk Lamp","price":49.5,"description":"Bright","displayHint":"Desk Lamp","createdAt":"2026-02-24T12:00:00Z"}`)
	}))
	defer srv.Close()

	p, err := New(srv.URL, time.Second).CreateProduct(context.Background(), NewProduct{
		Name:        "Desk Lamp",
		Price:       decimal.RequireFromString("49.5"),
		Description: "Bright",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", p.ID)
	assert.Equal(t, "Desk Lamp", p.DisplayHint)
	assert.Equal(t, 49.5, got["price"], "price is sent as a JSON number")
	assert.NotContains(t, got, "imageUrl")
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantMessage string
	}{
		{"validation", http.StatusBadRequest, `{"message":"name is required"}`, KindValidation, "name is required"},
		{"not found", http.StatusNotFound, `{"message":"product not found"}`, KindNotFound, "product not found"},
		{"server", http.StatusInternalServerError, `{"message":"failed to delete product"}`, KindServer, "catalog API returned 500: failed to delete product"},
		{"server without body", http.StatusBadGateway, ``, KindServer, "catalog API returned 502: Bad Gateway"},
		{"plain text", http.StatusServiceUnavailable, `down`, KindServer, "catalog API returned 503: down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := New(srv.URL, time.Second).DeleteProduct(context.Background(), "abc")

			require.Error(t, err)
			assert.True(t, IsKind(err, tt.wantKind), "kind of %v", err)
			assert.Equal(t, tt.wantMessage, err.Error())
			var ce *Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.status, ce.Status)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).ListProducts(context.Background())

	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
	assert.Contains(t, err.Error(), url)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.Retryable())
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"not":"a list"}`)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).ListProducts(context.Background())

	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
	assert.False(t, IsKind(err, KindServer))
}

func TestClient_DeleteEscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, time.Second).DeleteProduct(context.Background(), "a/b"))
}
