package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmucenieks/store-poc/i18n"
	"github.com/rmucenieks/store-poc/models"
	"github.com/rmucenieks/store-poc/settings"
	"github.com/rmucenieks/store-poc/store"
)

func newStoreRouter(t *testing.T, repo *stubStoreRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	localizer := i18n.NewManager(context.Background(), settings.NewMemoryStore(), i18n.English)
	handler := NewStoreHandler(store.NewCoordinator(repo, localizer))

	router := gin.New()
	router.GET("/store/categories", handler.GetCategories)
	router.POST("/store/categories/:categoryId/select", handler.SelectCategory)
	router.GET("/store/products", handler.GetProducts)
	router.GET("/store/banner", handler.GetBanner)
	return router
}

func catalogRepo() *stubStoreRepository {
	return &stubStoreRepository{
		categories: []models.Category{
			{ID: "wifi", Name: "WiFi", Icon: "wifi", ProductsPath: "wifi-products.json"},
			{ID: "switches", Name: "Switches", Icon: "network"},
		},
		products: []models.Product{
			{ID: "u7-pro", Name: "U7 Pro", Price: 199.99, Description: "WiFi 7 AP"},
			{ID: "u6-pro", Name: "U6 Pro", Price: 179.99, Description: "WiFi 6 AP"},
		},
	}
}

func TestGetCategoriesEndpoint(t *testing.T) {
	router := newStoreRouter(t, catalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/store/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 2)
	assert.Equal(t, "wifi", resp.SelectedCategoryID)
	assert.Empty(t, resp.ErrorMessage)
}

func TestSelectCategoryEndpoint(t *testing.T) {
	router := newStoreRouter(t, catalogRepo())

	// Load the catalog first, as the store screen would
	req := httptest.NewRequest(http.MethodGet, "/store/categories", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/store/categories/wifi/select", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ProductsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)

	req = httptest.NewRequest(http.MethodPost, "/store/categories/cameras/select", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductsWithSearch(t *testing.T) {
	router := newStoreRouter(t, catalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/store/categories", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/store/products?search=wifi+6", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ProductsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "u6-pro", resp.Products[0].ID)
}

func TestGetBannerEndpoint(t *testing.T) {
	router := newStoreRouter(t, catalogRepo())

	req := httptest.NewRequest(http.MethodGet, "/store/banner", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var banner models.BannerItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banner))
	assert.Equal(t, "u7", banner.ID)
	assert.Equal(t, "Introducing", banner.IntroText)
}
