package clients

// File layout of the static catalog. Data files live under a per-language
// directory; store pictures are shared across languages.
const (
	categoriesFile     = "categories.json"
	productDetailsFile = "wifi-product-details.json"
	storePicsPath      = "store-pics"
)
