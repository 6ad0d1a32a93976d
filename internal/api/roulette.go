package api

import (
	"context"
	"net/http"

	"github.com/rouletteup/admin-console/internal/models"
)

// TodayRoulette returns the current day's roulette run.
func (c *Client) TodayRoulette(ctx context.Context) (models.TodayRoulette, error) {
	var res models.TodayRoulette
	err := c.do(ctx, "today_roulette", http.MethodGet, "/api/v1/admin/roulettes/today",
		nil, nil, &res)
	return res, err
}

type updateTodayBudgetRequest struct {
	NewTotalBudget int64 `json:"newTotalBudget"`
}

// UpdateTodayBudget raises today's total budget. The server may enforce
// additional policy (monotonic increase) beyond the client's >= 1 floor.
func (c *Client) UpdateTodayBudget(ctx context.Context, newTotalBudget int64) error {
	return c.do(ctx, "update_today_budget", http.MethodPatch, "/api/v1/admin/roulettes/today/budget",
		nil, updateTodayBudgetRequest{NewTotalBudget: newTotalBudget}, nil)
}

// FutureBudgets returns the sparse set of future budget overrides.
func (c *Client) FutureBudgets(ctx context.Context) ([]models.FutureBudget, error) {
	var res []models.FutureBudget
	err := c.do(ctx, "future_budgets", http.MethodGet, "/api/v1/admin/roulettes/future/budget",
		nil, nil, &res)
	return res, err
}

type updateFutureBudgetRequest struct {
	SettingDate    string `json:"settingDate"`
	NewTotalBudget int64  `json:"newTotalBudget"`
}

// UpdateFutureBudget upserts the budget override for the given date
// (YYYY-MM-DD).
func (c *Client) UpdateFutureBudget(ctx context.Context, settingDate string, newTotalBudget int64) error {
	return c.do(ctx, "update_future_budget", http.MethodPatch, "/api/v1/admin/roulettes/future/budget",
		nil, updateFutureBudgetRequest{SettingDate: settingDate, NewTotalBudget: newTotalBudget}, nil)
}

// RouletteHistory returns one page of past roulette runs.
func (c *Client) RouletteHistory(ctx context.Context, page, size int) (models.Page[models.RouletteHistoryItem], error) {
	var res models.Page[models.RouletteHistoryItem]
	err := c.do(ctx, "roulette_history", http.MethodGet, "/api/v1/admin/roulettes",
		pageQuery(page, size), nil, &res)
	return res, err
}
