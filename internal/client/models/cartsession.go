package models

import "time"

// CartSession pairs the signed-in user with a physical shopping cart.
// It is created by exchanging a scanned QR token with the server and ended
// through the checkout endpoint. At most one session is cached per device.
type CartSession struct {
	SessionID int       `json:"session_id"`
	CartID    int       `json:"cart_id"`
	CreatedAt time.Time `json:"created_at"`
}
