package client

import (
	"context"
	"net/http"

	"github.com/pricenotifier/web/model"
)

const (
	authenticatePath = "/auth/authenticate"
	registerPath     = "/auth/register"
)

// Authenticate exchanges credentials for an access token.
func (c *Client) Authenticate(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	var res model.AuthResponse
	err := c.do(ctx, http.MethodPost, authenticatePath, req, &res)
	return res, err
}

// Register a new user, returning an access token for them.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	var res model.AuthResponse
	err := c.do(ctx, http.MethodPost, registerPath, req, &res)
	return res, err
}
