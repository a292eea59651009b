package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile prints the cached user record. The profile is whatever the last
// login returned; there is no background refresh. The token expiry is read
// without verifying the signature, purely for display.
func (a *App) Profile(context.Context) error {
	user := a.auth.User()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Println("Username:", user.Username)
	fmt.Println("Email:   ", user.Email)
	if user.FullName != "" {
		fmt.Println("Name:    ", user.FullName)
	}
	if user.PhoneNumber != "" {
		fmt.Println("Phone:   ", user.PhoneNumber)
	}
	if user.Address != nil {
		fmt.Println("Address: ", *user.Address)
	}

	if exp, ok := tokenExpiry(a.auth.Token()); ok {
		fmt.Println("Session expires:", exp.Format(time.RFC1123))
	}
	return nil
}

// tokenExpiry extracts the exp claim from an access token without verifying
// it. The server remains the authority on token validity.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
