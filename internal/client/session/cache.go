// Package session is the typed mirror of the remote session kept in the
// secure store. Each cached key has an explicit encode/decode pair so shape
// mismatches fail at compile time instead of at read time.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/client/repositories/secrets"
)

// Names of the persisted keys. The set of five is wiped as a unit on logout.
const (
	KeyUserToken            = "userToken"
	KeyUserData             = "userData"
	KeyCartSessionID        = "cartSessionId"
	KeyCartID               = "cartId"
	KeyCartSessionCreatedAt = "cartSessionCreatedAt"
)

// Cache serializes structured values through the secure key-value store.
// It is a durable mirror, not a second source of truth: remote API
// responses always overwrite it.
type Cache struct {
	store secrets.Repository
}

func NewCache(store secrets.Repository) *Cache {
	return &Cache{store: store}
}

// Token returns the cached access token, or "" when logged out.
func (c *Cache) Token(ctx context.Context) (string, error) {
	return c.store.Get(ctx, KeyUserToken)
}

func (c *Cache) SetToken(ctx context.Context, token string) error {
	return c.store.Set(ctx, KeyUserToken, token)
}

func (c *Cache) DeleteToken(ctx context.Context) error {
	return c.store.Delete(ctx, KeyUserToken)
}

// User returns the cached profile, or nil when none is stored.
func (c *Cache) User(ctx context.Context) (*models.User, error) {
	raw, err := c.store.Get(ctx, KeyUserData)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode cached user: %w", err)
	}
	return &user, nil
}

func (c *Cache) SetUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return c.store.Set(ctx, KeyUserData, string(raw))
}

func (c *Cache) DeleteUser(ctx context.Context) error {
	return c.store.Delete(ctx, KeyUserData)
}

// CartSession returns the cached cart session, or nil when none is active.
// The record is spread over three keys; the session id key decides presence.
func (c *Cache) CartSession(ctx context.Context) (*models.CartSession, error) {
	rawID, err := c.store.Get(ctx, KeyCartSessionID)
	if err != nil {
		return nil, err
	}
	if rawID == "" {
		return nil, nil
	}

	sessionID, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, fmt.Errorf("decode cached session id %q: %w", rawID, err)
	}

	record := &models.CartSession{SessionID: sessionID}

	if rawCart, err := c.store.Get(ctx, KeyCartID); err != nil {
		return nil, err
	} else if rawCart != "" {
		if record.CartID, err = strconv.Atoi(rawCart); err != nil {
			return nil, fmt.Errorf("decode cached cart id %q: %w", rawCart, err)
		}
	}

	if rawCreated, err := c.store.Get(ctx, KeyCartSessionCreatedAt); err != nil {
		return nil, err
	} else if rawCreated != "" {
		if record.CreatedAt, err = time.Parse(time.RFC3339, rawCreated); err != nil {
			return nil, fmt.Errorf("decode cached session timestamp %q: %w", rawCreated, err)
		}
	}

	return record, nil
}

// SetCartSession writes the three keys of the record atomically, so a crash
// can never leave a session id without its companion keys.
func (c *Cache) SetCartSession(ctx context.Context, record *models.CartSession) error {
	return c.store.SetMany(ctx, map[string]string{
		KeyCartSessionID:        strconv.Itoa(record.SessionID),
		KeyCartID:               strconv.Itoa(record.CartID),
		KeyCartSessionCreatedAt: record.CreatedAt.Format(time.RFC3339),
	})
}

func (c *Cache) DeleteCartSession(ctx context.Context) error {
	return c.store.DeleteMany(ctx, KeyCartSessionID, KeyCartID, KeyCartSessionCreatedAt)
}

// Clear removes every namespaced key. Used on logout.
func (c *Cache) Clear(ctx context.Context) error {
	return c.store.DeleteMany(ctx,
		KeyUserToken, KeyUserData, KeyCartSessionID, KeyCartID, KeyCartSessionCreatedAt)
}
