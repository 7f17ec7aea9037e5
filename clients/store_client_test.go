package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lv/categories.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"categories":[
			{"id":"wifi","name":"WiFi","icon":"wifi","productsPath":"wifi-products.json"},
			{"id":"switches","name":"Komutatori","icon":"network"}
		]}`))
	}))
	defer server.Close()

	client := NewStoreClient(server.URL, 5*time.Second)
	categories, err := client.FetchCategories(context.Background(), "lv")

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "wifi", categories[0].ID)
	assert.Equal(t, "wifi-products.json", categories[0].ProductsPath)
	assert.Empty(t, categories[1].ProductsPath)
}

func TestFetchCategoriesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewStoreClient(server.URL, 5*time.Second)
	_, err := client.FetchCategories(context.Background(), "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchCategoriesMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"categories": [`))
	}))
	defer server.Close()

	client := NewStoreClient(server.URL, 5*time.Second)
	_, err := client.FetchCategories(context.Background(), "en")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/wifi-products.json", r.URL.Path)
		w.Write([]byte(`{"products":[
			{"id":"u7-pro","name":"U7 Pro","price":199.99,"description":"WiFi 7 AP",
			 "wifiStandard":"WiFi 7","frequency":"6 GHz","imageUrl":"u7-pro.avif","partnerProgram":true}
		]}`))
	}))
	defer server.Close()

	client := NewStoreClient(server.URL, 5*time.Second)
	products, err := client.FetchProducts(context.Background(), "wifi-products.json", "en")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "u7-pro", products[0].ID)
	assert.Equal(t, 199.99, products[0].Price)
	assert.True(t, products[0].PartnerProgram)
}

func TestFetchProductsEmptyPathMakesNoRequest(t *testing.T) {
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer server.Close()

	client := NewStoreClient(server.URL, 5*time.Second)
	products, err := client.FetchProducts(context.Background(), "", "en")

	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, int64(0), atomic.LoadInt64(&requests))
}
