package repomanager

import (
	"context"

	"github.com/dmitrijs2005/wanttogo/internal/dbx"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/users"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/wanttogo"
)

// MemoryRepositoryManager serves process-local repositories. The DBTX
// arguments are ignored; every call shares the same underlying state.
// WithTx gives no isolation, the repositories guard their own invariants.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	wanttogo *wanttogo.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		wanttogo: wanttogo.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *MemoryRepositoryManager) WantToGo(dbx.DBTX) wanttogo.Repository { return m.wanttogo }

func (m *MemoryRepositoryManager) DB() dbx.DBTX { return nil }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *MemoryRepositoryManager) Ping(ctx context.Context) error { return ctx.Err() }

func (m *MemoryRepositoryManager) Close() error { return nil }
