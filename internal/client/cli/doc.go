// Package cli implements the interactive DuckyCart companion shell: a small
// REPL over the auth manager, the checklist and cart-session services, and
// the navigation guard that keeps the visible screen consistent with auth
// state.
package cli
