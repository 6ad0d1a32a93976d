package models

// Order statuses as reported by the server.
const (
	OrderStatusOrdered  = "ORDERED"
	OrderStatusCanceled = "CANCELED"
)

// Order is one row in an order listing (by product or by user).
type Order struct {
	ID           int64  `json:"id"`
	Quantity     int64  `json:"quantity"`
	ProductPrice int64  `json:"productPrice"`
	ProductName  string `json:"productName"`
	Status       string `json:"status"`
	UserID       int64  `json:"userId"`
	ProductID    int64  `json:"productId"`
	CreatedAt    string `json:"createdAt"`
	Nickname     string `json:"nickname,omitempty"`
}

// OrderDetail is the full order record.
type OrderDetail struct {
	ID           int64   `json:"id"`
	Quantity     int64   `json:"quantity"`
	ProductPrice int64   `json:"productPrice"`
	ProductName  string  `json:"productName"`
	Status       string  `json:"status"`
	UserID       int64   `json:"userId"`
	ProductID    int64   `json:"productId"`
	CreatedAt    *string `json:"createdAt"`
	Nickname     *string `json:"nickname"`
}
