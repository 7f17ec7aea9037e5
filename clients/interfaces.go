// Package clients contains the fetch-and-decode clients for the remote
// catalog files and the image URL resolver. The clients are a pure I/O
// boundary: no retries, no caching.
package clients

import (
	"context"

	"github.com/rmucenieks/store-poc/models"
)

// StoreRepository fetches the category list and per-category product lists
// for a given language.
type StoreRepository interface {
	FetchCategories(ctx context.Context, lang string) ([]models.Category, error)
	FetchProducts(ctx context.Context, productsPath, lang string) ([]models.Product, error)
}

// ProductDetailsRepository fetches a product's extended spec sheet for a
// given language.
type ProductDetailsRepository interface {
	FetchProductDetails(ctx context.Context, productID, lang string) (*models.ProductDetails, error)
}

// ImageResolver composes the URL of a store picture. It performs no I/O.
type ImageResolver interface {
	ImageURL(imageName string) string
}
