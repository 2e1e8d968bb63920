package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
)

const tokenBytes = 32

// Manager creates, resolves and destroys sessions on top of a Store.
type Manager struct {
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger logging.Logger
}

func NewManager(store Store, ttl time.Duration, logger logging.Logger) *Manager {
	return &Manager{
		store:  store,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.With("module", "sessions"),
	}
}

// TTL is the lifetime given to new sessions.
func (m *Manager) TTL() time.Duration { return m.ttl }

// CreateSession records a fresh session for the user and returns it. The
// token is 32 random bytes, hex encoded.
func (m *Manager) CreateSession(ctx context.Context, userID, userName string) (*models.Session, error) {
	token, err := common.MakeRandHexString(tokenBytes)
	if err != nil {
		return nil, fmt.Errorf("session token: %w", err)
	}

	now := m.now()
	sess := &models.Session{
		Token:     token,
		UserID:    userID,
		UserName:  userName,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ResolveSession returns the live session for token, or
// common.ErrorUnauthorized if it is unknown or expired. Expired entries are
// removed on the way.
func (m *Manager) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	sess, ok, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	if sess.Expired(m.now()) {
		_ = m.store.Delete(ctx, token)
		return nil, common.ErrorUnauthorized
	}
	return sess, nil
}

// DestroySession removes token. Unknown tokens are not an error.
func (m *Manager) DestroySession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// Sweep drops every expired session and returns how many were removed.
func (m *Manager) Sweep(ctx context.Context) (int, error) {
	return m.store.DeleteExpired(ctx, m.now())
}

// Run sweeps expired sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := m.Sweep(ctx)
			if err != nil {
				m.logger.Error(ctx, "session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				m.logger.Debug(ctx, "expired sessions removed", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}
