// Package services contains server-side business logic shared by the web
// and gRPC transports. This file implements UserService, which handles
// registration, credential verification and the session lifecycle.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/dbx"
	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/auth"
	"github.com/dmitrijs2005/wanttogo/internal/server/config"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
)

// LoginResult is what a successful login hands back to a transport: the
// signed token to give the client and the session it stands for.
type LoginResult struct {
	Token   string
	Session *models.Session
}

// UserService provides account operations:
// - Register: create users with a unique username
// - Login: verify credentials and open a session
// - Logout / ResolveToken: end and look up sessions by their signed token
type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      auth.SecretHasher
	sessions    *sessions.Manager
	jwtSecret   []byte
	logger      logging.Logger

	// decoy is verified against when the user does not exist so that both
	// failure paths cost about the same.
	decoy []byte
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, hasher auth.SecretHasher, sm *sessions.Manager,
	cfg *config.Config, logger logging.Logger) *UserService {

	decoy, _ := hasher.Hash(common.GenerateRandByteArray(16))

	return &UserService{
		repomanager: m,
		hasher:      hasher,
		sessions:    sm,
		jwtSecret:   []byte(cfg.SecretKey),
		logger:      logger.With("module", "users"),
		decoy:       decoy,
	}
}

// Register creates an account. Whitespace-only fields yield
// common.ErrorValidation and an existing username yields
// common.ErrorUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, common.ErrorValidation
	}

	credential, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	var created *models.User
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetUserByLogin(ctx, username)
		switch {
		case err == nil:
			return common.ErrorUsernameTaken
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		created, err = repo.Create(ctx, &models.User{UserName: username, Credential: credential})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			return nil, common.ErrorUsernameTaken
		}
		return nil, storeError(ctx, s.logger, "register", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", created.ID)
	return created, nil
}

// Login checks the pair against the account store and, on an exact match,
// opens a session. Unknown users and wrong secrets both yield
// common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.repomanager.DB())

	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(s.decoy, []byte(password))
			return nil, common.ErrorInvalidCredentials
		}
		return nil, storeError(ctx, s.logger, "login", err)
	}

	if !s.hasher.Verify(user.Credential, []byte(password)) {
		return nil, common.ErrorInvalidCredentials
	}

	sess, err := s.sessions.CreateSession(ctx, user.ID, user.UserName)
	if err != nil {
		s.logger.Error(ctx, "create session", "error", err)
		return nil, common.ErrorInternal
	}

	token, err := auth.GenerateToken(sess.Token, s.jwtSecret, s.sessions.TTL())
	if err != nil {
		_ = s.sessions.DestroySession(ctx, sess.Token)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, Session: sess}, nil
}

// ResolveToken returns the live session behind a signed token,
// common.ErrorUnauthorized when there is none, or common.ErrorStoreUnavailable
// when the session table cannot be read.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}
	sid, err := auth.GetSessionIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	sess, err := s.sessions.ResolveSession(ctx, sid)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, err
		}
		return nil, storeError(ctx, s.logger, "resolve session", err)
	}
	return sess, nil
}

// Logout destroys the session behind token. Tokens that do not verify are
// ignored: there is nothing to destroy.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sid, err := auth.GetSessionIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil
	}
	return s.sessions.DestroySession(ctx, sid)
}
