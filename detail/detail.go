// Package detail owns the product detail screen state: one product, its
// on-demand spec sheet, and a local purchase-quantity stepper.
package detail

import (
	"context"
	"log"
	"sync"

	"github.com/rmucenieks/store-poc/clients"
	"github.com/rmucenieks/store-poc/models"
)

// Coordinator holds a single product. It is constructed lazily when the
// user actually navigates to the product, never per rendered list row.
type Coordinator struct {
	repo     clients.ProductDetailsRepository
	images   clients.ImageResolver
	language func() string

	product models.Product

	mu        sync.RWMutex
	details   *models.ProductDetails
	isLoading bool
	quantity  int
}

func NewCoordinator(product models.Product, repo clients.ProductDetailsRepository, images clients.ImageResolver, language func() string) *Coordinator {
	return &Coordinator{
		repo:     repo,
		images:   images,
		language: language,
		product:  product,
		quantity: 1,
	}
}

// LoadDetails fetches the product's spec sheet. Previously loaded details
// are cleared first so stale sections never show for a new fetch. A fetch
// failure is logged and leaves the details absent; absence is a legitimate
// "no extra details" state, not an error.
func (c *Coordinator) LoadDetails(ctx context.Context) {
	c.mu.Lock()
	c.isLoading = true
	c.details = nil
	c.mu.Unlock()

	details, err := c.repo.FetchProductDetails(ctx, c.product.ID, c.language())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.isLoading = false

	if err != nil {
		log.Printf("Detail.LoadDetails - Failed to load details for %s: %v", c.product.ID, err)
		return
	}
	c.details = details
}

// IncrementQuantity raises the stepper; it has no upper bound.
func (c *Coordinator) IncrementQuantity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantity++
}

// DecrementQuantity lowers the stepper, never below one.
func (c *Coordinator) DecrementQuantity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quantity > 1 {
		c.quantity--
	}
}

func (c *Coordinator) Quantity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quantity
}

func (c *Coordinator) Product() models.Product {
	return c.product
}

func (c *Coordinator) Details() *models.ProductDetails {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.details
}

func (c *Coordinator) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isLoading
}

// ImageURL resolves the product's picture URL via the image resolver.
func (c *Coordinator) ImageURL() string {
	return c.images.ImageURL(c.product.ImageURL)
}
