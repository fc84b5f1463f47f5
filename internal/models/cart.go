package models

// Cart represents one record in the cart collection
type Cart struct {
	ID       string     `json:"id"`
	Products []CartItem `json:"products"`
}

// CartItem is a single line item in a cart. Product is a weak reference to a
// Product id: deleting the product later leaves the reference dangling.
type CartItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}
