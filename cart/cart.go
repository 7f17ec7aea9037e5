// Package cart owns the shopping cart: an ordered list of line items with
// at most one line per distinct product.
package cart

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/rmucenieks/store-poc/models"
)

// Coordinator is the cart state owner. All mutation goes through its
// methods; reads return copies so presentation surfaces can consume the
// state concurrently.
type Coordinator struct {
	mu    sync.RWMutex
	items []models.CartItem
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		items: []models.CartItem{},
	}
}

// AddToCart adds quantity units of product. If a line for the same product
// id already exists its quantity is incremented; otherwise a new line with
// a freshly generated id is appended. Quantities below one are rejected.
func (c *Coordinator) AddToCart(product models.Product, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, fmt.Errorf("invalid quantity: %d", quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.Product.ID == product.ID {
			c.items[i].Quantity += quantity
			log.Printf("Cart.AddToCart - Updated %s to quantity %d", product.Name, c.items[i].Quantity)
			return c.items[i], nil
		}
	}

	newItem := models.CartItem{
		ID:       uuid.NewString(),
		Product:  product,
		Quantity: quantity,
	}
	c.items = append(c.items, newItem)
	log.Printf("Cart.AddToCart - Added %s x%d", product.Name, quantity)
	return newItem, nil
}

// RemoveFromCart deletes the line with the given generated id. Removing an
// unknown id is a no-op.
func (c *Coordinator) RemoveFromCart(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(itemID)
}

func (c *Coordinator) removeLocked(itemID string) {
	for i, item := range c.items {
		if item.ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			log.Printf("Cart.RemoveFromCart - Removed %s", item.Product.Name)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to newQuantity exactly. A value
// of zero or less removes the line instead.
func (c *Coordinator) UpdateQuantity(itemID string, newQuantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if newQuantity <= 0 {
		c.removeLocked(itemID)
		return
	}

	for i, item := range c.items {
		if item.ID == itemID {
			c.items[i].Quantity = newQuantity
			log.Printf("Cart.UpdateQuantity - %s set to %d", item.Product.Name, newQuantity)
			return
		}
	}
}

// IncrementQuantity raises the line's quantity by one.
func (c *Coordinator) IncrementQuantity(itemID string) {
	item, ok := c.ItemByID(itemID)
	if !ok {
		return
	}
	c.UpdateQuantity(itemID, item.Quantity+1)
}

// DecrementQuantity lowers the line's quantity by one; at one, the line is
// removed.
func (c *Coordinator) DecrementQuantity(itemID string) {
	item, ok := c.ItemByID(itemID)
	if !ok {
		return
	}
	c.UpdateQuantity(itemID, item.Quantity-1)
}

// ClearCart empties the cart unconditionally.
func (c *Coordinator) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []models.CartItem{}
	log.Printf("Cart.ClearCart - Cart cleared")
}

// PurchaseItems simulates a purchase. On an empty cart nothing happens and
// ok is false. Otherwise the totals at the moment of purchase are returned
// and ok is true; the cart itself is left untouched so the caller can show
// a confirmation before clearing it. No external service is contacted.
func (c *Coordinator) PurchaseItems() (totalItems int, totalPrice float64, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.items) == 0 {
		return 0, 0, false
	}

	for _, item := range c.items {
		totalItems += item.Quantity
		totalPrice += item.TotalPrice()
	}

	log.Printf("Cart.PurchaseItems - Purchasing %d items for %.2f", totalItems, totalPrice)
	return totalItems, totalPrice, true
}

// Items returns the lines in insertion order.
func (c *Coordinator) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalItems is the sum of all line quantities.
func (c *Coordinator) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of all line totals.
func (c *Coordinator) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0.0
	for _, item := range c.items {
		total += item.TotalPrice()
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Coordinator) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

// ItemByID finds a line by its generated id.
func (c *Coordinator) ItemByID(itemID string) (models.CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == itemID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// ItemForProduct finds the line holding the given product.
func (c *Coordinator) ItemForProduct(productID string) (models.CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// Contains reports whether the product already has a line in the cart.
func (c *Coordinator) Contains(productID string) bool {
	_, ok := c.ItemForProduct(productID)
	return ok
}
