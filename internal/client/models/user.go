// Package models defines the client-side data model: user profiles,
// checklists, checklist items, and cart sessions, mirroring the DuckyCart
// API wire shapes.
package models

// User is the profile record sourced from the login response. It is
// stale-tolerant: the client never refreshes it in the background, only
// replaces it on the next login.
type User struct {
	ID          int     `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	PhoneNumber string  `json:"phone_number"`
	Address     *string `json:"address"`
}

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	MobileNumber string  `json:"mobile_number"`
	Age          int     `json:"age"`
	FullName     string  `json:"full_name"`
	Address      *string `json:"address,omitempty"`
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
