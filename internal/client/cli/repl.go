package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/duckycart/companion/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	snapshot() nav.State
	screenNow() nav.Screen
	setScreen(nav.Screen)

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error

	Lists(ctx context.Context) error
	Refresh(ctx context.Context) error
	CreateList(ctx context.Context) error
	RenameList(ctx context.Context) error
	DeleteList(ctx context.Context) error
	AddItem(ctx context.Context) error
	ToggleItem(ctx context.Context) error
	EditItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	Share(ctx context.Context) error
	ImportList(ctx context.Context) error

	Scan(ctx context.Context) error
	Cart(ctx context.Context) error
	EndSession(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the companion shell.
//
// Before every prompt it evaluates the navigation guard against the current
// auth snapshot and follows the redirect, so the visible screen can never
// drift from the auth state. It then reads a line from the scanner, parses
// the first token as the command, and dispatches to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if act := nav.Decide(a.snapshot(), a.screenNow()); act.Redirect {
			a.setScreen(act.Target)
			printlnFn("->", string(act.Target))
		}

		printlnFn(fmt.Sprintf("ducky %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ists, refresh, create, rename, dellist, additem, toggle, edititem, delitem, share, import, scan, cart, endsession, profile, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "l", "lists":
			_ = a.Lists(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "create":
			_ = a.CreateList(ctx)

		case "rename":
			_ = a.RenameList(ctx)

		case "dellist":
			_ = a.DeleteList(ctx)

		case "additem":
			_ = a.AddItem(ctx)

		case "toggle":
			_ = a.ToggleItem(ctx)

		case "edititem":
			_ = a.EditItem(ctx)

		case "delitem":
			_ = a.DeleteItem(ctx)

		case "share":
			_ = a.Share(ctx)

		case "import":
			_ = a.ImportList(ctx)

		case "scan":
			_ = a.Scan(ctx)

		case "cart":
			_ = a.Cart(ctx)

		case "endsession":
			_ = a.EndSession(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
