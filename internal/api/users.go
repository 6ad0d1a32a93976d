package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rouletteup/admin-console/internal/models"
)

// Users returns one page of the user listing.
func (c *Client) Users(ctx context.Context, page, size int) (models.Page[models.User], error) {
	var res models.Page[models.User]
	err := c.do(ctx, "users", http.MethodGet, "/api/v1/admin/users",
		pageQuery(page, size), nil, &res)
	return res, err
}

// User returns the full record for one user.
func (c *Client) User(ctx context.Context, userID int64) (models.UserDetail, error) {
	var res models.UserDetail
	err := c.do(ctx, "user", http.MethodGet,
		fmt.Sprintf("/api/v1/admin/users/%d", userID), nil, nil, &res)
	return res, err
}
