package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmucenieks/store-poc/models"
	"github.com/rmucenieks/store-poc/store"
)

type StoreHandler struct {
	store *store.Coordinator
}

func NewStoreHandler(storeCoordinator *store.Coordinator) *StoreHandler {
	return &StoreHandler{store: storeCoordinator}
}

// GetCategories handles GET /store/categories. It triggers a catalog load
// (the store screen appearing) and returns the resulting state. A fetch
// failure is part of the state, not an HTTP error.
func (h *StoreHandler) GetCategories(c *gin.Context) {
	h.store.LoadCategories(c.Request.Context())

	c.JSON(http.StatusOK, models.CatalogResponse{
		Categories:         h.store.Categories(),
		SelectedCategoryID: h.store.SelectedCategoryID(),
		IsLoading:          h.store.IsLoadingCategories(),
		ErrorMessage:       h.store.CategoriesError(),
	})
}

// SelectCategory handles POST /store/categories/{categoryId}/select
func (h *StoreHandler) SelectCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")

	var selected *models.Category
	categories := h.store.Categories()
	for i := range categories {
		if categories[i].ID == categoryID {
			selected = &categories[i]
			break
		}
	}
	if selected == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Category not found",
		})
		return
	}

	h.store.SelectCategory(c.Request.Context(), *selected)

	c.JSON(http.StatusOK, models.ProductsResponse{
		Products:     h.store.FilteredProducts(),
		IsLoading:    h.store.IsLoadingProducts(),
		ErrorMessage: h.store.ProductsError(),
	})
}

// GetProducts handles GET /store/products. The optional search query
// updates the filter before the filtered view is returned.
func (h *StoreHandler) GetProducts(c *gin.Context) {
	if search, ok := c.GetQuery("search"); ok {
		h.store.SetSearchText(search)
	}

	c.JSON(http.StatusOK, models.ProductsResponse{
		Products:     h.store.FilteredProducts(),
		IsLoading:    h.store.IsLoadingProducts(),
		ErrorMessage: h.store.ProductsError(),
	})
}

// GetBanner handles GET /store/banner
func (h *StoreHandler) GetBanner(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Banner())
}
