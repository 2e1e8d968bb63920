package repomanager

import (
	"context"

	"github.com/dmitrijs2005/wanttogo/internal/dbx"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/users"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/wanttogo"
)

// RepositoryManager vends repositories bound to a DBTX and runs units of
// work transactionally. Services never see the concrete backend.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users(db dbx.DBTX) users.Repository
	WantToGo(db dbx.DBTX) wanttogo.Repository

	// DB is the non-transactional handle to pass to the factories above.
	DB() dbx.DBTX

	// WithTx runs fn with a transactional handle.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error

	Ping(ctx context.Context) error
	Close() error
}
