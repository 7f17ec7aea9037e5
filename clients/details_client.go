package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/rmucenieks/store-poc/models"
)

// ProductDetailsClient fetches the extended spec sheet. The catalog
// currently ships a single shared details file; the product id selects
// nothing yet but is part of the interface so a per-product file layout
// only touches this client.
type ProductDetailsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewProductDetailsClient(baseURL string, timeout time.Duration) *ProductDetailsClient {
	return &ProductDetailsClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchProductDetails fetches and decodes the details file for lang. Every
// top-level section of the result is optional; a details object with no
// sections at all is a legitimate response.
func (c *ProductDetailsClient) FetchProductDetails(ctx context.Context, productID, lang string) (*models.ProductDetails, error) {
	url := c.baseURL + "/" + lang + "/" + productDetailsFile

	var details models.ProductDetails
	if err := fetchJSON(ctx, c.httpClient, url, &details); err != nil {
		return nil, err
	}
	return &details, nil
}
