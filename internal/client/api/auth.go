package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/duckycart/companion/internal/client/models"
)

// Login exchanges credentials for an access token. The backend expects a
// form-encoded body with username/password fields, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out models.LoginResponse
	err := c.do(ctx, "login", http.MethodPost, "/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", false, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account. It does not log the user in; callers must
// follow up with Login.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "signup", http.MethodPost, "/auth/signup", req, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
