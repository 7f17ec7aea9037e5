package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type CatalogResponse struct {
	Categories         []Category `json:"categories"`
	SelectedCategoryID string     `json:"selected_category_id,omitempty"`
	IsLoading          bool       `json:"is_loading"`
	ErrorMessage       string     `json:"error_message,omitempty"`
}

type ProductsResponse struct {
	Products     []Product `json:"products"`
	IsLoading    bool      `json:"is_loading"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

type ProductDetailResponse struct {
	Product  Product         `json:"product"`
	Details  *ProductDetails `json:"details,omitempty"`
	ImageURL string          `json:"image_url,omitempty"`
	Quantity int             `json:"quantity"`
}

type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

type LanguageInfo struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
	Selected    bool   `json:"selected"`
}
