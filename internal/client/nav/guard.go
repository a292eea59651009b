// Package nav holds the navigation guard: a pure decision function that
// keeps the current screen consistent with auth state. Keeping it free of
// UI concerns makes the redirect rule unit-testable without a harness.
package nav

// Screen identifies a top-level destination.
type Screen string

const (
	ScreenSignIn Screen = "sign-in"
	ScreenSignUp Screen = "sign-up"
	ScreenTabs   Screen = "tabs"
)

// State is the slice of auth state the guard observes.
type State struct {
	IsLoggedIn bool
	IsLoading  bool
}

// Action is the guard's verdict. The zero value means "stay put".
type Action struct {
	Redirect bool
	Target   Screen
}

// Decide evaluates the redirect rule. While loading it never acts. Once
// resolved: a logged-out user anywhere but an entry screen goes to sign-in;
// a logged-in user on an entry screen goes to the main tabs. Re-evaluating
// with unchanged inputs yields no further action.
func Decide(state State, current Screen) Action {
	if state.IsLoading {
		return Action{}
	}

	onEntryScreen := current == ScreenSignIn || current == ScreenSignUp

	if !state.IsLoggedIn && !onEntryScreen {
		return Action{Redirect: true, Target: ScreenSignIn}
	}
	if state.IsLoggedIn && onEntryScreen {
		return Action{Redirect: true, Target: ScreenTabs}
	}
	return Action{}
}
