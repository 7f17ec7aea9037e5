package models

// Category is a named grouping of products. ProductsPath points at the
// remote JSON file listing the category's products; a missing path means
// the category simply has no products yet.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	ProductsPath string `json:"productsPath,omitempty"`
}

// Product is a purchasable catalog entry.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Description    string  `json:"description"`
	WifiStandard   string  `json:"wifiStandard"`
	Frequency      string  `json:"frequency,omitempty"`
	ImageURL       string  `json:"imageUrl"`
	PartnerProgram bool    `json:"partnerProgram"`
}

// CategoryList is the wrapper shape of the remote categories.json file.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// ProductList is the wrapper shape of the remote per-category products file.
type ProductList struct {
	Products []Product `json:"products"`
}

// BannerItem is the promotional banner shown at the top of the store.
// It is rebuilt whenever the active language changes.
type BannerItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subtitle  string `json:"subtitle"`
	IntroText string `json:"introText"`
	Initials  string `json:"initials"`
}

// DemoProduct is a fixture product used in tests and examples.
func DemoProduct() Product {
	return Product{
		ID:             "e7",
		Name:           "E7",
		Price:          499.00,
		Description:    "Enterprise-grade indoor/outdoor access point with WiFi 7 performance.",
		WifiStandard:   "WiFi 7",
		Frequency:      "5GHz",
		ImageURL:       "e7.avif",
		PartnerProgram: true,
	}
}
