package models

// CartItem is one line in the shopping cart. The ID is generated when the
// line is created and identifies the line itself; the business rule of "one
// line per product" is enforced by the cart on the product's ID.
type CartItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// TotalPrice is the line total.
func (i CartItem) TotalPrice() float64 {
	return i.Product.Price * float64(i.Quantity)
}

type AddToCartRequest struct {
	Product  Product `json:"product" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

type PurchaseResponse struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}
