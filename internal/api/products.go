package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rouletteup/admin-console/internal/models"
)

// Products returns one page of the product catalog.
func (c *Client) Products(ctx context.Context, page, size int) (models.Page[models.Product], error) {
	var res models.Page[models.Product]
	err := c.do(ctx, "products", http.MethodGet, "/api/v1/admin/products",
		pageQuery(page, size), nil, &res)
	return res, err
}

// CreateProduct adds a catalog entry.
func (c *Client) CreateProduct(ctx context.Context, req models.CreateProduct) error {
	return c.do(ctx, "create_product", http.MethodPost, "/api/v1/admin/products",
		nil, req, nil)
}

// Product returns the full record for one product.
func (c *Client) Product(ctx context.Context, productID int64) (models.ProductDetail, error) {
	var res models.ProductDetail
	err := c.do(ctx, "product", http.MethodGet,
		fmt.Sprintf("/api/v1/admin/products/%d", productID), nil, nil, &res)
	return res, err
}

// UpdateProduct replaces a product's name and price.
func (c *Client) UpdateProduct(ctx context.Context, productID int64, req models.UpdateProduct) error {
	return c.do(ctx, "update_product", http.MethodPut,
		fmt.Sprintf("/api/v1/admin/products/%d", productID), nil, req, nil)
}

type updateStockRequest struct {
	IncreaseStock int64 `json:"increaseStock"`
}

// UpdateProductStock increases a product's stock by the given amount.
func (c *Client) UpdateProductStock(ctx context.Context, productID, increaseStock int64) error {
	return c.do(ctx, "update_product_stock", http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/products/%d/stock", productID),
		nil, updateStockRequest{IncreaseStock: increaseStock}, nil)
}

// DeleteProduct removes a product from the catalog.
func (c *Client) DeleteProduct(ctx context.Context, productID int64) error {
	return c.do(ctx, "delete_product", http.MethodDelete,
		fmt.Sprintf("/api/v1/admin/products/%d", productID), nil, nil, nil)
}
