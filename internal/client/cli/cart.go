package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/duckycart/companion/internal/common"
)

// Scan pairs the app with a physical cart by its QR token. The paired
// session survives restarts via the session cache.
func (a *App) Scan(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter cart QR token", os.Stdout)
	if err != nil {
		return err
	}

	record, err := a.carts.ScanQR(ctx, token)
	if err != nil {
		fmt.Println("Scan failed:", err)
		return err
	}
	fmt.Printf("Paired with cart %d (session %d).\n", record.CartID, record.SessionID)
	return nil
}

// Cart reports the active cart session, if any.
func (a *App) Cart(ctx context.Context) error {
	record, err := a.carts.Active(ctx)
	if err != nil {
		fmt.Println("Could not read cart session:", err)
		return err
	}
	if record == nil {
		fmt.Println("No active cart session.")
		return nil
	}
	fmt.Printf("Cart %d, session %d, started %s\n",
		record.CartID, record.SessionID, record.CreatedAt.Format(time.RFC1123))
	return nil
}

// EndSession checks the active session out on the server and forgets it
// locally. With no active session it fails fast without a network call.
func (a *App) EndSession(ctx context.Context) error {
	if err := a.carts.EndSession(ctx); err != nil {
		if errors.Is(err, common.ErrNoActiveSession) {
			fmt.Println("No active cart session.")
		} else {
			fmt.Println("Checkout failed:", err)
		}
		return err
	}
	fmt.Println("Checked out. See you next time!")
	return nil
}
