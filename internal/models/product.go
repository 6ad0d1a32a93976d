package models

// Product is one catalog entry in the product listing.
type Product struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	StockQuantity int64  `json:"stockQuantity"`
	Price         int64  `json:"price"`
}

// ProductDetail is the full product record.
type ProductDetail struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	StockQuantity int64  `json:"stockQuantity"`
	Price         int64  `json:"price"`
	CreatedAt     string `json:"createdAt"`
}

// CreateProduct is the payload for creating a catalog entry.
type CreateProduct struct {
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	StockQuantity int64  `json:"stockQuantity"`
}

// UpdateProduct is the payload for editing name and price.
type UpdateProduct struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
