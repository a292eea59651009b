package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/duckycart/companion/internal/client/models"
)

type scanQRRequest struct {
	Token string `json:"token"`
}

// ScanQR exchanges a scanned QR token for a cart session.
func (c *Client) ScanQR(ctx context.Context, qrToken string) (*models.CartSession, error) {
	var out models.CartSession
	err := c.doJSON(ctx, "scan qr", http.MethodPost, "/customer-session/scan-qr",
		scanQRRequest{Token: qrToken}, true, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Checkout ends the cart session on the server. The caller must only clear
// local session state after this returns success.
func (c *Client) Checkout(ctx context.Context, sessionID int) error {
	path := fmt.Sprintf("/customer-session/%d/checkout", sessionID)
	return c.do(ctx, "end session", http.MethodPost, path, nil, "application/json", true, nil)
}
