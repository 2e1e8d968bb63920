package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/wanttogo/internal/dbx"
	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/auth"
	"github.com/dmitrijs2005/wanttogo/internal/server/catalog"
	"github.com/dmitrijs2005/wanttogo/internal/server/config"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/users"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/wanttogo"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

type testEnv struct {
	rm           repomanager.RepositoryManager
	sessions     *sessions.Manager
	users        *UserService
	lists        *ListService
	destinations *DestinationService
}

func newTestEnv(t *testing.T, rm repomanager.RepositoryManager) *testEnv {
	t.Helper()
	if rm == nil {
		rm = repomanager.NewMemoryRepositoryManager()
	}

	c, err := catalog.Default()
	require.NoError(t, err)

	sm := sessions.NewManager(sessions.NewMemoryStore(), time.Hour, logging.Nop{})
	cfg := &config.Config{SecretKey: "test-secret"}

	lists := NewListService(rm, logging.Nop{})
	return &testEnv{
		rm:           rm,
		sessions:     sm,
		users:        NewUserService(rm, auth.PlainHasher{}, sm, cfg, logging.Nop{}),
		lists:        lists,
		destinations: NewDestinationService(c, lists, nil, logging.Nop{}),
	}
}

// brokenManager hands out repositories whose every call fails.
type brokenManager struct{ repomanager.RepositoryManager }

func (brokenManager) Users(dbx.DBTX) users.Repository       { return brokenUsers{} }
func (brokenManager) WantToGo(dbx.DBTX) wanttogo.Repository { return brokenList{} }
func (brokenManager) DB() dbx.DBTX                          { return nil }
func (brokenManager) WithTx(ctx context.Context, fn func(context.Context, dbx.DBTX) error) error {
	return fn(ctx, nil)
}

type brokenUsers struct{}

func (brokenUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, errDown }
func (brokenUsers) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, errDown
}
func (brokenUsers) GetUserByID(context.Context, string) (*models.User, error) { return nil, errDown }

type brokenList struct{}

func (brokenList) List(context.Context, string) ([]string, error)         { return nil, errDown }
func (brokenList) Contains(context.Context, string, string) (bool, error) { return false, errDown }
func (brokenList) Add(context.Context, string, string) (bool, error)      { return false, errDown }

// lostRaceList reports the destination absent but loses the insert.
type lostRaceList struct{ brokenList }

func (lostRaceList) Contains(context.Context, string, string) (bool, error) { return false, nil }
func (lostRaceList) Add(context.Context, string, string) (bool, error)      { return false, nil }

type lostRaceManager struct{ brokenManager }

func (lostRaceManager) WantToGo(dbx.DBTX) wanttogo.Repository { return lostRaceList{} }
