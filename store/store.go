// Package store owns the catalog state: categories, the selected category's
// products, search filtering, and the promotional banner.
package store

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/rmucenieks/store-poc/clients"
	"github.com/rmucenieks/store-poc/i18n"
	"github.com/rmucenieks/store-poc/models"
)

// Coordinator orchestrates category and product loading. Loads are stamped
// with a generation so that when requests overlap (rapid category
// switching), only the most recently issued one may publish its result.
type Coordinator struct {
	repo      clients.StoreRepository
	localizer i18n.Localizer

	mu                  sync.RWMutex
	categories          []models.Category
	products            []models.Product
	selectedCategoryID  string
	searchText          string
	isLoadingCategories bool
	isLoadingProducts   bool
	categoriesError     string
	productsError       string
	banner              models.BannerItem

	categoriesGen uint64
	productsGen   uint64
}

func NewCoordinator(repo clients.StoreRepository, localizer i18n.Localizer) *Coordinator {
	c := &Coordinator{
		repo:       repo,
		localizer:  localizer,
		categories: []models.Category{},
		products:   []models.Product{},
	}
	c.banner = c.buildBanner()
	return c
}

// LoadCategories fetches the category list for the active language. On
// success the previous selection is kept when its category still exists,
// otherwise the first category is selected; either way the selected
// category's products are loaded. On failure the categories are emptied and
// a localized error message is published.
func (c *Coordinator) LoadCategories(ctx context.Context) {
	c.mu.Lock()
	c.categoriesGen++
	gen := c.categoriesGen
	c.isLoadingCategories = true
	c.categoriesError = ""
	c.products = []models.Product{}
	c.mu.Unlock()

	categories, err := c.repo.FetchCategories(ctx, c.localizer.CurrentLanguageKey())

	c.mu.Lock()
	if gen != c.categoriesGen {
		// A newer load is in flight; this result is stale.
		c.mu.Unlock()
		return
	}
	c.isLoadingCategories = false

	if err != nil {
		c.categories = []models.Category{}
		c.categoriesError = c.localizer.Localized("failed_to_load_categories") + ": " + err.Error()
		c.mu.Unlock()
		log.Printf("Store.LoadCategories - %v", err)
		return
	}

	c.categories = categories

	var selected *models.Category
	if c.selectedCategoryID != "" {
		for i := range categories {
			if categories[i].ID == c.selectedCategoryID {
				selected = &categories[i]
				break
			}
		}
	}
	if selected == nil && len(categories) > 0 {
		selected = &categories[0]
	}

	if selected == nil {
		c.selectedCategoryID = ""
		c.mu.Unlock()
		return
	}

	c.selectedCategoryID = selected.ID
	productsPath := selected.ProductsPath
	c.mu.Unlock()

	log.Printf("Store.LoadCategories - Loaded %d categories, selected %s", len(categories), selected.ID)
	c.loadProducts(ctx, productsPath)
}

// SelectCategory makes category the active one and loads its products.
func (c *Coordinator) SelectCategory(ctx context.Context, category models.Category) {
	c.mu.Lock()
	c.selectedCategoryID = category.ID
	c.mu.Unlock()

	c.loadProducts(ctx, category.ProductsPath)
}

// loadProducts fetches the product list behind productsPath. An empty path
// is the normal "category has no products" state: the list is emptied with
// no error and no request. A stale completion (superseded generation) is
// discarded so the most recently requested category always wins.
func (c *Coordinator) loadProducts(ctx context.Context, productsPath string) {
	c.mu.Lock()
	c.productsGen++
	gen := c.productsGen
	c.isLoadingProducts = true
	c.productsError = ""
	c.mu.Unlock()

	if productsPath == "" {
		c.mu.Lock()
		if gen == c.productsGen {
			c.products = []models.Product{}
			c.isLoadingProducts = false
		}
		c.mu.Unlock()
		return
	}

	products, err := c.repo.FetchProducts(ctx, productsPath, c.localizer.CurrentLanguageKey())

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.productsGen {
		return
	}
	c.isLoadingProducts = false

	if err != nil {
		c.productsError = c.localizer.Localized("failed_to_load_products") + ": " + err.Error()
		log.Printf("Store.loadProducts - %v", err)
		return
	}
	c.products = products
}

// HandleLanguageChange reloads the catalog and rebuilds the banner for the
// newly active language. Wired to the language manager's change
// notification at startup.
func (c *Coordinator) HandleLanguageChange(ctx context.Context) {
	c.mu.Lock()
	c.banner = c.buildBanner()
	c.mu.Unlock()

	c.LoadCategories(ctx)
}

func (c *Coordinator) buildBanner() models.BannerItem {
	return models.BannerItem{
		ID:        "u7",
		Name:      "UniFi U7 Pro",
		Subtitle:  c.localizer.Localized("wifi_7_high_performance"),
		IntroText: c.localizer.Localized("introducing"),
		Initials:  "U7",
	}
}

// SetSearchText updates the free-text filter applied by FilteredProducts.
func (c *Coordinator) SetSearchText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchText = text
}

// FilteredProducts returns the products whose name or description contains
// the search text, case-insensitively. An empty search returns all
// products unchanged in order. The view is recomputed on every call.
func (c *Coordinator) FilteredProducts() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.searchText == "" {
		filtered := make([]models.Product, len(c.products))
		copy(filtered, c.products)
		return filtered
	}

	needle := strings.ToLower(c.searchText)
	filtered := []models.Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ClearError resets both error messages.
func (c *Coordinator) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categoriesError = ""
	c.productsError = ""
}

func (c *Coordinator) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	categories := make([]models.Category, len(c.categories))
	copy(categories, c.categories)
	return categories
}

func (c *Coordinator) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	products := make([]models.Product, len(c.products))
	copy(products, c.products)
	return products
}

// ProductByID finds a loaded product, for navigation to its detail view.
func (c *Coordinator) ProductByID(productID string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Coordinator) SelectedCategoryID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selectedCategoryID
}

func (c *Coordinator) SearchText() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchText
}

func (c *Coordinator) IsLoadingCategories() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isLoadingCategories
}

func (c *Coordinator) IsLoadingProducts() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isLoadingProducts
}

func (c *Coordinator) CategoriesError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categoriesError
}

func (c *Coordinator) ProductsError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.productsError
}

func (c *Coordinator) Banner() models.BannerItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.banner
}
