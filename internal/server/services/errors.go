package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/logging"
)

// storeError logs a failed store call and reports it as
// common.ErrorStoreUnavailable, keeping the cause in the chain.
func storeError(ctx context.Context, logger logging.Logger, op string, err error) error {
	logger.Error(ctx, "store call failed", "op", op, "error", err)
	return fmt.Errorf("%w: %w", common.ErrorStoreUnavailable, err)
}
