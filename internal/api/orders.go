package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rouletteup/admin-console/internal/models"
)

// OrdersByProduct returns one page of orders placed for the given product.
func (c *Client) OrdersByProduct(ctx context.Context, productID int64, page, size int) (models.Page[models.Order], error) {
	var res models.Page[models.Order]
	err := c.do(ctx, "orders_by_product", http.MethodGet,
		fmt.Sprintf("/api/v1/admin/products/%d/orders", productID),
		pageQuery(page, size), nil, &res)
	return res, err
}

// OrdersByUser returns one page of orders placed by the given user.
func (c *Client) OrdersByUser(ctx context.Context, userID int64, page, size int) (models.Page[models.Order], error) {
	var res models.Page[models.Order]
	err := c.do(ctx, "orders_by_user", http.MethodGet,
		fmt.Sprintf("/api/v1/admin/users/%d/orders", userID),
		pageQuery(page, size), nil, &res)
	return res, err
}

// Order returns the full record for one order.
func (c *Client) Order(ctx context.Context, orderID int64) (models.OrderDetail, error) {
	var res models.OrderDetail
	err := c.do(ctx, "order", http.MethodGet,
		fmt.Sprintf("/api/v1/admin/orders/%d", orderID), nil, nil, &res)
	return res, err
}

// CancelOrder cancels an order.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) error {
	return c.do(ctx, "cancel_order", http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/orders/%d/cancel", orderID), nil, nil, nil)
}
