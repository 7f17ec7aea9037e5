package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmucenieks/store-poc/cart"
	"github.com/rmucenieks/store-poc/models"
)

type CartHandler struct {
	cart *cart.Coordinator
}

func NewCartHandler(cartCoordinator *cart.Coordinator) *CartHandler {
	return &CartHandler{cart: cartCoordinator}
}

func (h *CartHandler) cartResponse() models.CartResponse {
	return models.CartResponse{
		Items:      h.cart.Items(),
		TotalItems: h.cart.TotalItems(),
		TotalPrice: h.cart.TotalPrice(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if req.Product.ID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Product id is required",
		})
		return
	}

	if _, err := h.cart.AddToCart(req.Product, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid quantity",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, h.cartResponse())
}

// UpdateItem handles PATCH /cart/items/{itemId}. A quantity of zero or
// less removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID := c.Param("itemId")

	if _, ok := h.cart.ItemByID(itemID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Cart item not found",
		})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.cart.UpdateQuantity(itemID, req.Quantity)
	c.JSON(http.StatusOK, h.cartResponse())
}

// RemoveItem handles DELETE /cart/items/{itemId}
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveFromCart(c.Param("itemId"))
	c.JSON(http.StatusOK, h.cartResponse())
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()
	c.Status(http.StatusNoContent)
}

// Purchase handles POST /cart/purchase. The purchase is a local
// simulation: on success the totals are reported back and the cart is
// cleared, mirroring the confirmation-then-clear flow of the app.
func (h *CartHandler) Purchase(c *gin.Context) {
	totalItems, totalPrice, ok := h.cart.PurchaseItems()
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "EMPTY_CART",
			Message: "Cannot purchase an empty cart",
		})
		return
	}

	h.cart.ClearCart()
	log.Printf("CartHandler.Purchase - Purchased %d items for %.2f", totalItems, totalPrice)

	c.JSON(http.StatusOK, models.PurchaseResponse{
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	})
}
