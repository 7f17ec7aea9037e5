package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/rmucenieks/store-poc/cart"
	"github.com/rmucenieks/store-poc/clients"
	"github.com/rmucenieks/store-poc/detail"
	"github.com/rmucenieks/store-poc/models"
	"github.com/rmucenieks/store-poc/store"
)

// DetailHandler serves the product detail screens. A detail coordinator is
// built the first time a product is navigated to and reused afterwards.
type DetailHandler struct {
	store    *store.Coordinator
	cart     *cart.Coordinator
	repo     clients.ProductDetailsRepository
	images   clients.ImageResolver
	language func() string

	mu           sync.Mutex
	coordinators map[string]*detail.Coordinator
}

func NewDetailHandler(storeCoordinator *store.Coordinator, cartCoordinator *cart.Coordinator, repo clients.ProductDetailsRepository, images clients.ImageResolver, language func() string) *DetailHandler {
	return &DetailHandler{
		store:        storeCoordinator,
		cart:         cartCoordinator,
		repo:         repo,
		images:       images,
		language:     language,
		coordinators: make(map[string]*detail.Coordinator),
	}
}

// coordinatorFor returns the product's detail coordinator, creating it on
// first navigation. The product must be part of the loaded catalog.
func (h *DetailHandler) coordinatorFor(productID string) (*detail.Coordinator, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if coordinator, exists := h.coordinators[productID]; exists {
		return coordinator, true
	}

	product, found := h.store.ProductByID(productID)
	if !found {
		return nil, false
	}

	coordinator := detail.NewCoordinator(product, h.repo, h.images, h.language)
	h.coordinators[productID] = coordinator
	return coordinator, true
}

func (h *DetailHandler) detailResponse(coordinator *detail.Coordinator) models.ProductDetailResponse {
	return models.ProductDetailResponse{
		Product:  coordinator.Product(),
		Details:  coordinator.Details(),
		ImageURL: coordinator.ImageURL(),
		Quantity: coordinator.Quantity(),
	}
}

// GetDetails handles GET /products/{productId}/details
func (h *DetailHandler) GetDetails(c *gin.Context) {
	coordinator, found := h.coordinatorFor(c.Param("productId"))
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}

	coordinator.LoadDetails(c.Request.Context())
	c.JSON(http.StatusOK, h.detailResponse(coordinator))
}

// StepQuantity handles POST /products/{productId}/quantity/{direction}
// where direction is "increment" or "decrement".
func (h *DetailHandler) StepQuantity(c *gin.Context) {
	coordinator, found := h.coordinatorFor(c.Param("productId"))
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}

	switch c.Param("direction") {
	case "increment":
		coordinator.IncrementQuantity()
	case "decrement":
		coordinator.DecrementQuantity()
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Direction must be increment or decrement",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quantity": coordinator.Quantity()})
}

// AddToCart handles POST /products/{productId}/add-to-cart. The detail
// coordinator never mutates the cart itself; this handler passes the
// product and the current stepper quantity to the cart coordinator.
func (h *DetailHandler) AddToCart(c *gin.Context) {
	coordinator, found := h.coordinatorFor(c.Param("productId"))
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Product not found",
		})
		return
	}

	item, err := h.cart.AddToCart(coordinator.Product(), coordinator.Quantity())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid quantity",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, item)
}
