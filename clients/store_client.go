package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rmucenieks/store-poc/models"
)

// StoreClient fetches the category and product files from the static
// catalog. Data files are addressed as {base}/{lang}/{file}.
type StoreClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewStoreClient(baseURL string, timeout time.Duration) *StoreClient {
	return &StoreClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCategories fetches and decodes the category list for lang.
func (c *StoreClient) FetchCategories(ctx context.Context, lang string) ([]models.Category, error) {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, lang, categoriesFile)

	var list models.CategoryList
	if err := fetchJSON(ctx, c.httpClient, url, &list); err != nil {
		return nil, err
	}
	return list.Categories, nil
}

// FetchProducts fetches and decodes one category's product list for lang.
// An empty productsPath means the category has no products; no request is
// made and an empty list is returned.
func (c *StoreClient) FetchProducts(ctx context.Context, productsPath, lang string) ([]models.Product, error) {
	if productsPath == "" {
		return []models.Product{}, nil
	}

	url := fmt.Sprintf("%s/%s/%s", c.baseURL, lang, productsPath)

	var list models.ProductList
	if err := fetchJSON(ctx, c.httpClient, url, &list); err != nil {
		return nil, err
	}
	return list.Products, nil
}
