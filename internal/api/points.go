package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rouletteup/admin-console/internal/models"
)

// PointsByRouletteDate returns one page of point records granted by the
// roulette run on the given date (YYYY-MM-DD).
func (c *Client) PointsByRouletteDate(ctx context.Context, rouletteDate string, page, size int) (models.Page[models.PointRecord], error) {
	var res models.Page[models.PointRecord]
	err := c.do(ctx, "points_by_roulette", http.MethodGet,
		fmt.Sprintf("/api/v1/admin/points/roulettes/%s", rouletteDate),
		pageQuery(page, size), nil, &res)
	return res, err
}

// PointsByUser returns one page of point records granted to the given user.
func (c *Client) PointsByUser(ctx context.Context, userID int64, page, size int) (models.Page[models.PointRecord], error) {
	var res models.Page[models.PointRecord]
	err := c.do(ctx, "points_by_user", http.MethodGet,
		fmt.Sprintf("/api/v1/admin/points/users/%d", userID),
		pageQuery(page, size), nil, &res)
	return res, err
}

// ReclaimPoint revokes a previously granted, still-available point record.
func (c *Client) ReclaimPoint(ctx context.Context, pointID int64) error {
	return c.do(ctx, "reclaim_point", http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/points/%d/reclaim", pointID), nil, nil, nil)
}
