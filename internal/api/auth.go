package api

import (
	"context"
	"net/http"

	"github.com/rouletteup/admin-console/internal/models"
)

// signInRequest is the sign-in payload.
type signInRequest struct {
	Nickname string `json:"nickname"`
}

// signInResponse carries the admin account id assigned by the server.
type signInResponse struct {
	ID int64 `json:"id"`
}

// SignIn authenticates the admin nickname and returns the resulting session.
// Field-level rejections (e.g. an unknown nickname) arrive as *Error with an
// Errors["nickname"] entry.
func (c *Client) SignIn(ctx context.Context, nickname string) (models.Session, error) {
	var res signInResponse
	err := c.do(ctx, "sign_in", http.MethodPost, "/api/v1/admin/auth/sign-in",
		nil, signInRequest{Nickname: nickname}, &res)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{ID: res.ID, Nickname: nickname}, nil
}
