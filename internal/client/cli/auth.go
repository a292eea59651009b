package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server.
//
// On success the auth manager holds the token/user pair and has persisted it
// to the session cache; the next guard evaluation moves the user to the main
// tabs. On failure the state stays logged out and the error is reported.
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, userName, string(password)); err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	fmt.Println("Welcome back!")
	if err := a.checklists.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "checklist refresh after login failed", "err", err)
	}
	return nil
}

// Signup walks the user through the registration form and submits it. It
// never logs the user in; the account must be confirmed with a fresh login.
func (a *App) Signup(ctx context.Context) error {
	req := models.SignupRequest{}

	var err error
	if req.Username, err = getSimpleText(a.reader, "Choose a username", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if req.MobileNumber, err = getSimpleText(a.reader, "Enter mobile number", os.Stdout); err != nil {
		return err
	}

	ageText, err := getSimpleText(a.reader, "Enter age", os.Stdout)
	if err != nil {
		return err
	}
	if req.Age, err = strconv.Atoi(ageText); err != nil {
		fmt.Println("Age must be a number")
		return fmt.Errorf("%w: age %q", common.ErrValidation, ageText)
	}

	if req.FullName, err = getSimpleText(a.reader, "Enter full name", os.Stdout); err != nil {
		return err
	}

	address, err := getSimpleText(a.reader, "Enter address (optional)", os.Stdout)
	if err != nil {
		return err
	}
	if address != "" {
		req.Address = &address
	}

	user, err := a.auth.Signup(ctx, req)
	if err != nil {
		fmt.Println("Signup failed:", err)
		return err
	}

	fmt.Printf("Account %q created, please log in.\n", user.Username)
	return nil
}

// Logout clears the in-memory session and wipes the cached one. It always
// succeeds locally, even if the cache cleanup has trouble.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}
