package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/duckycart/companion/internal/client/nav"
)

type fakeExec struct {
	loggedIn bool
	screen   nav.Screen

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) snapshot() nav.State {
	return nav.State{IsLoggedIn: f.loggedIn}
}
func (f *fakeExec) screenNow() nav.Screen  { return f.screen }
func (f *fakeExec) setScreen(s nav.Screen) { f.screen = s }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Signup(context.Context) error  { return f.record("signup") }
func (f *fakeExec) Logout(context.Context) error  { f.loggedIn = false; return f.record("logout") }
func (f *fakeExec) Profile(context.Context) error { return f.record("profile") }

func (f *fakeExec) Lists(context.Context) error      { return f.record("lists") }
func (f *fakeExec) Refresh(context.Context) error    { return f.record("refresh") }
func (f *fakeExec) CreateList(context.Context) error { return f.record("create") }
func (f *fakeExec) RenameList(context.Context) error { return f.record("rename") }
func (f *fakeExec) DeleteList(context.Context) error { return f.record("dellist") }
func (f *fakeExec) AddItem(context.Context) error    { return f.record("additem") }
func (f *fakeExec) ToggleItem(context.Context) error { return f.record("toggle") }
func (f *fakeExec) EditItem(context.Context) error   { return f.record("edititem") }
func (f *fakeExec) DeleteItem(context.Context) error { return f.record("delitem") }
func (f *fakeExec) Share(context.Context) error      { return f.record("share") }
func (f *fakeExec) ImportList(context.Context) error { return f.record("import") }

func (f *fakeExec) Scan(context.Context) error       { return f.record("scan") }
func (f *fakeExec) Cart(context.Context) error       { return f.record("cart") }
func (f *fakeExec) EndSession(context.Context) error { return f.record("endsession") }

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"lists",
		"additem",
		"scan",
		"endsession",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false, screen: nav.ScreenSignIn}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "lists", "additem", "scan", "endsession"}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_GuardRedirectsLoggedOutUser(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{loggedIn: false, screen: nav.ScreenTabs}
	sc := bufio.NewScanner(strings.NewReader("exit\n"))

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if exec.screen != nav.ScreenSignIn {
		t.Fatalf("want redirect to sign-in, on %q", exec.screen)
	}
}

func TestRunREPL_GuardMovesFreshLoginToTabs(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{loggedIn: false, screen: nav.ScreenSignIn}
	sc := bufio.NewScanner(strings.NewReader("login\nhelp\nquit\n"))

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if exec.screen != nav.ScreenTabs {
		t.Fatalf("want tabs after login, on %q", exec.screen)
	}
}

func TestRunREPL_EmptyLinesAndQuit(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true, screen: nav.ScreenTabs}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
