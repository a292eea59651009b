// Package services contains application services for the companion client:
// cart-session pairing and checklist synchronization against the remote API.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/duckycart/companion/internal/client/models"
	"github.com/duckycart/companion/internal/client/session"
	"github.com/duckycart/companion/internal/common"
	"github.com/duckycart/companion/internal/logging"
)

// CartSessionAPI is the slice of the remote client the service needs.
type CartSessionAPI interface {
	ScanQR(ctx context.Context, qrToken string) (*models.CartSession, error)
	Checkout(ctx context.Context, sessionID int) error
}

// CartSessionService pairs the user with a physical cart and ends the
// pairing.
//
// Contract:
//   - ScanQR: exchange a QR token for a session and persist it in the cache
//     as part of the call.
//   - Active: report the cached session, if any.
//   - EndSession: check out remotely, then clear the cache. Local state must
//     never claim "no session" while the server still considers it active.
type CartSessionService interface {
	ScanQR(ctx context.Context, qrToken string) (*models.CartSession, error)
	Active(ctx context.Context) (*models.CartSession, error)
	EndSession(ctx context.Context) error
}

type cartSessionService struct {
	api   CartSessionAPI
	cache *session.Cache
	log   logging.Logger
}

// NewCartSessionService binds the service to the remote client and the
// session cache.
func NewCartSessionService(api CartSessionAPI, cache *session.Cache, log logging.Logger) CartSessionService {
	return &cartSessionService{api: api, cache: cache, log: log.With("component", "cart-session")}
}

func (s *cartSessionService) ScanQR(ctx context.Context, qrToken string) (*models.CartSession, error) {
	qrToken = strings.TrimSpace(qrToken)
	if qrToken == "" {
		return nil, fmt.Errorf("%w: empty QR token", common.ErrValidation)
	}

	record, err := s.api.ScanQR(ctx, qrToken)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCartSession(ctx, record); err != nil {
		return nil, fmt.Errorf("persist cart session: %w", err)
	}

	s.log.Info(ctx, "cart session started", "session", record.SessionID, "cart", record.CartID)
	return record, nil
}

func (s *cartSessionService) Active(ctx context.Context) (*models.CartSession, error) {
	return s.cache.CartSession(ctx)
}

func (s *cartSessionService) EndSession(ctx context.Context) error {
	record, err := s.cache.CartSession(ctx)
	if err != nil {
		return err
	}
	if record == nil {
		return common.ErrNoActiveSession
	}

	if err := s.api.Checkout(ctx, record.SessionID); err != nil {
		return err
	}

	// Only forget the session once the server confirmed the checkout.
	if err := s.cache.DeleteCartSession(ctx); err != nil {
		return err
	}

	s.log.Info(ctx, "cart session ended", "session", record.SessionID)
	return nil
}
