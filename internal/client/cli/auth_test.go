package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/duckycart/companion/internal/client/auth"
	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/client/nav"
	"github.com/duckycart/companion/internal/common"
	"github.com/duckycart/companion/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInputs replaces the interactive input helpers with canned responses.
// Text prompts are answered from the queue in order.
func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", errors.New("no more canned answers")
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuthMgr struct {
	loginUser string
	loginPass string
	loginErr  error

	signupReq models.SignupRequest
	signupRet *models.User
	signupErr error

	logoutCalls int

	user  *models.User
	token string
}

func (f *fakeAuthMgr) Restore(context.Context) {}
func (f *fakeAuthMgr) Login(_ context.Context, username, password string) error {
	f.loginUser, f.loginPass = username, password
	if f.loginErr == nil {
		f.token = "token"
	}
	return f.loginErr
}
func (f *fakeAuthMgr) Signup(_ context.Context, req models.SignupRequest) (*models.User, error) {
	f.signupReq = req
	return f.signupRet, f.signupErr
}
func (f *fakeAuthMgr) Logout(context.Context) {
	f.logoutCalls++
	f.token = ""
	f.user = nil
}
func (f *fakeAuthMgr) IsLoggedIn() bool     { return f.token != "" }
func (f *fakeAuthMgr) User() *models.User   { return f.user }
func (f *fakeAuthMgr) Token() string        { return f.token }
func (f *fakeAuthMgr) Snapshot() auth.State {
	return auth.State{User: f.user, IsLoggedIn: f.token != ""}
}

type fakeChecklistSvc struct {
	lists      []models.Checklist
	refreshes  int
	refreshErr error

	created    *models.Checklist
	createErr  error
	lastName   string
	lastItems  []string
	shareRet   string
	shareErr   error
}

func (f *fakeChecklistSvc) Lists() []models.Checklist { return f.lists }
func (f *fakeChecklistSvc) Refresh(context.Context) error {
	f.refreshes++
	return f.refreshErr
}
func (f *fakeChecklistSvc) Create(_ context.Context, name string, itemTexts []string) (*models.Checklist, error) {
	f.lastName, f.lastItems = name, itemTexts
	return f.created, f.createErr
}
func (f *fakeChecklistSvc) Rename(context.Context, int, string) (*models.Checklist, error) {
	return f.created, f.createErr
}
func (f *fakeChecklistSvc) Delete(context.Context, int) error { return nil }
func (f *fakeChecklistSvc) AddItem(context.Context, int, string) (*models.ChecklistItem, error) {
	return &models.ChecklistItem{}, nil
}
func (f *fakeChecklistSvc) ToggleItem(context.Context, int, int) (*models.ChecklistItem, error) {
	return &models.ChecklistItem{}, nil
}
func (f *fakeChecklistSvc) UpdateItemText(context.Context, int, int, string) (*models.ChecklistItem, error) {
	return &models.ChecklistItem{}, nil
}
func (f *fakeChecklistSvc) DeleteItem(context.Context, int, int) error { return nil }
func (f *fakeChecklistSvc) ShareText(int) (string, error)              { return f.shareRet, f.shareErr }

type fakeCartSvc struct {
	scanRet   *models.CartSession
	scanErr   error
	lastToken string

	activeRet *models.CartSession
	activeErr error

	endErr   error
	endCalls int
}

func (f *fakeCartSvc) ScanQR(_ context.Context, qrToken string) (*models.CartSession, error) {
	f.lastToken = qrToken
	return f.scanRet, f.scanErr
}
func (f *fakeCartSvc) Active(context.Context) (*models.CartSession, error) {
	return f.activeRet, f.activeErr
}
func (f *fakeCartSvc) EndSession(context.Context) error {
	f.endCalls++
	return f.endErr
}

func newTestApp(mgr *fakeAuthMgr, lists *fakeChecklistSvc, carts *fakeCartSvc) *App {
	return &App{
		auth:       mgr,
		checklists: lists,
		carts:      carts,
		log:        logging.NewDefault(),
		screen:     nav.ScreenSignIn,
	}
}

func TestLogin_Success(t *testing.T) {
	mgr := &fakeAuthMgr{}
	lists := &fakeChecklistSvc{}
	a := newTestApp(mgr, lists, &fakeCartSvc{})

	stubInputs(t, []string{"alice"}, []byte("secret"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice", mgr.loginUser)
	assert.Equal(t, "secret", mgr.loginPass)
	assert.Equal(t, 1, lists.refreshes)
}

func TestLogin_FailureLeavesMirrorAlone(t *testing.T) {
	mgr := &fakeAuthMgr{loginErr: errors.New("server returned 401: bad credentials")}
	lists := &fakeChecklistSvc{}
	a := newTestApp(mgr, lists, &fakeCartSvc{})

	stubInputs(t, []string{"alice"}, []byte("wrong"))

	require.Error(t, a.Login(context.Background()))
	assert.Zero(t, lists.refreshes)
	assert.False(t, mgr.IsLoggedIn())
}

func TestSignup_CollectsFormAndDoesNotLogIn(t *testing.T) {
	mgr := &fakeAuthMgr{signupRet: &models.User{Username: "alice"}}
	a := newTestApp(mgr, &fakeChecklistSvc{}, &fakeCartSvc{})

	stubInputs(t, []string{
		"alice",
		"alice@example.org",
		"+371 12345678",
		"34",
		"Alice Doe",
		"12 Cart Lane",
	}, []byte("secret"))

	require.NoError(t, a.Signup(context.Background()))

	assert.Equal(t, "alice", mgr.signupReq.Username)
	assert.Equal(t, "alice@example.org", mgr.signupReq.Email)
	assert.Equal(t, "secret", mgr.signupReq.Password)
	assert.Equal(t, "+371 12345678", mgr.signupReq.MobileNumber)
	assert.Equal(t, 34, mgr.signupReq.Age)
	assert.Equal(t, "Alice Doe", mgr.signupReq.FullName)
	require.NotNil(t, mgr.signupReq.Address)
	assert.Equal(t, "12 Cart Lane", *mgr.signupReq.Address)

	assert.False(t, mgr.IsLoggedIn())
}

func TestSignup_EmptyAddressStaysNil(t *testing.T) {
	mgr := &fakeAuthMgr{signupRet: &models.User{Username: "bob"}}
	a := newTestApp(mgr, &fakeChecklistSvc{}, &fakeCartSvc{})

	stubInputs(t, []string{"bob", "bob@example.org", "123", "40", "Bob", ""}, []byte("pw"))

	require.NoError(t, a.Signup(context.Background()))
	assert.Nil(t, mgr.signupReq.Address)
}

func TestSignup_NonNumericAge(t *testing.T) {
	mgr := &fakeAuthMgr{}
	a := newTestApp(mgr, &fakeChecklistSvc{}, &fakeCartSvc{})

	stubInputs(t, []string{"bob", "bob@example.org", "123", "young"}, []byte("pw"))

	err := a.Signup(context.Background())
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, mgr.signupReq.Username)
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	mgr := &fakeAuthMgr{token: "token", user: &models.User{Username: "alice"}}
	a := newTestApp(mgr, &fakeChecklistSvc{}, &fakeCartSvc{})

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 1, mgr.logoutCalls)
	assert.False(t, mgr.IsLoggedIn())
}
