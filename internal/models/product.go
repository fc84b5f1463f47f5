package models

// Product represents one record in the product collection
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Status      bool     `json:"status"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// CreateProductRequest represents the body of a product creation request.
// Status is a pointer so an explicit false can be told apart from an absent
// field; Thumbnails decodes to nil when absent and to an empty non-nil slice
// when the body contains [].
type CreateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Status      *bool    `json:"status"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}

// UpdateProductRequest carries a partial set of product fields. Nil means
// the field was not provided and keeps its stored value; a provided field
// overwrites even when it is zero-valued.
type UpdateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Code        *string  `json:"code"`
	Price       *float64 `json:"price"`
	Status      *bool    `json:"status"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
}
