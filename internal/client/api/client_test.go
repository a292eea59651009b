package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/common"
	"github.com/duckycart/companion/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, staticTokens{token: token}, logging.NewDefault(), 5*time.Second)
	return c, srv
}

func TestLogin_SendsFormEncodedBody(t *testing.T) {
	var gotContentType, gotBody string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "tok1",
			TokenType:   "bearer",
			User:        models.User{ID: 1, Username: "alice"},
		})
	}), "")

	resp, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Contains(t, gotBody, "username=a%40b.com")
	assert.Contains(t, gotBody, "password=pw")
	assert.Equal(t, "tok1", resp.AccessToken)
	assert.Equal(t, 1, resp.User.ID)
}

func TestLogin_RemoteErrorCarriesServerDetail(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	}), "")

	_, err := c.Login(context.Background(), "a@b.com", "bad")
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.Status)
	assert.Equal(t, "Incorrect username or password", remoteErr.Message)
}

func TestRemoteError_UnparsableBodyFallsBackToGenericMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}), "tok1")

	_, err := c.ListChecklists(context.Background())
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)
	assert.Equal(t, "list checklists failed", remoteErr.Message)
}

func TestNetworkFailure_WrapsSentinel(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	c := New(srv.URL, staticTokens{}, logging.NewDefault(), time.Second)
	_, err := c.ListChecklists(context.Background())
	assert.ErrorIs(t, err, common.ErrNetwork)
}

func TestAuthenticatedRequest_CarriesBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}), "tok1")

	_, err := c.ListChecklists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok1", gotAuth)
}

func TestAuthenticatedRequest_TokenSourceFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	c := New(srv.URL, staticTokens{err: errors.New("vault locked")}, logging.NewDefault(), time.Second)
	_, err := c.ListChecklists(context.Background())
	assert.ErrorContains(t, err, "vault locked")
}

func TestChecklistCRUD_PathsAndMethods(t *testing.T) {
	type call struct{ method, path string }
	var calls []call

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		switch {
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/checklists/":
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte(`[]`))
			} else {
				_ = json.NewEncoder(w).Encode(models.Checklist{ID: 9, Name: "Groceries"})
			}
		case r.URL.Path == "/checklists/9/items":
			_ = json.NewEncoder(w).Encode(models.ChecklistItem{ID: 4, Text: "Milk", ChecklistID: 9})
		default:
			_ = json.NewEncoder(w).Encode(models.Checklist{ID: 9, Name: "Groceries"})
		}
	}), "tok1")

	ctx := context.Background()

	_, err := c.ListChecklists(ctx)
	require.NoError(t, err)
	_, err = c.GetChecklist(ctx, 9)
	require.NoError(t, err)
	_, err = c.CreateChecklist(ctx, models.ChecklistCreate{Name: "Groceries"})
	require.NoError(t, err)
	_, err = c.UpdateChecklist(ctx, 9, models.ChecklistUpdate{Name: "Weekend"})
	require.NoError(t, err)
	_, err = c.AddItem(ctx, 9, models.ChecklistItemCreate{Text: "Milk"})
	require.NoError(t, err)
	_, err = c.UpdateItem(ctx, 9, 4, models.ChecklistItemUpdate{})
	require.NoError(t, err)
	require.NoError(t, c.DeleteItem(ctx, 9, 4))
	require.NoError(t, c.DeleteChecklist(ctx, 9))

	want := []call{
		{http.MethodGet, "/checklists/"},
		{http.MethodGet, "/checklists/9"},
		{http.MethodPost, "/checklists/"},
		{http.MethodPut, "/checklists/9"},
		{http.MethodPost, "/checklists/9/items"},
		{http.MethodPut, "/checklists/9/items/4"},
		{http.MethodDelete, "/checklists/9/items/4"},
		{http.MethodDelete, "/checklists/9"},
	}
	assert.Equal(t, want, calls)
}

func TestScanQR_SendsTokenPayload(t *testing.T) {
	var gotBody scanQRRequest
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customer-session/scan-qr", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"session_id":7,"cart_id":3,"created_at":"2025-01-01T00:00:00Z"}`))
	}), "tok1")

	record, err := c.ScanQR(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", gotBody.Token)
	assert.Equal(t, 7, record.SessionID)
	assert.Equal(t, 3, record.CartID)
	assert.Equal(t, 2025, record.CreatedAt.Year())
}

func TestCheckout_HitsSessionScopedPath(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"closed"}`))
	}), "tok1")

	require.NoError(t, c.Checkout(context.Background(), 7))
	assert.Equal(t, "/customer-session/7/checkout", gotPath)
}
