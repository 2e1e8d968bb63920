package services

import (
	"context"

	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/repomanager"
)

// ListService manages each user's want-to-go list. Destination names are
// compared exactly; validating them against the catalog is the caller's job.
type ListService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewListService(m repomanager.RepositoryManager, logger logging.Logger) *ListService {
	return &ListService{repomanager: m, logger: logger.With("module", "list")}
}

func (s *ListService) IsMember(ctx context.Context, userID, destination string) (bool, error) {
	ok, err := s.repomanager.WantToGo(s.repomanager.DB()).Contains(ctx, userID, destination)
	if err != nil {
		return false, storeError(ctx, s.logger, "list contains", err)
	}
	return ok, nil
}

// TryAdd puts destination on the user's list unless it is already there.
// A concurrent add that wins the race is reported as AlreadyPresent.
func (s *ListService) TryAdd(ctx context.Context, userID, destination string) (models.AddOutcome, error) {
	repo := s.repomanager.WantToGo(s.repomanager.DB())

	present, err := repo.Contains(ctx, userID, destination)
	if err != nil {
		return 0, storeError(ctx, s.logger, "list contains", err)
	}
	if present {
		return models.AlreadyPresent, nil
	}

	added, err := repo.Add(ctx, userID, destination)
	if err != nil {
		return 0, storeError(ctx, s.logger, "list add", err)
	}
	if !added {
		return models.AlreadyPresent, nil
	}

	s.logger.Debug(ctx, "destination added", "user_id", userID, "destination", destination)
	return models.Added, nil
}

// ListFor returns the user's list in insertion order. Never nil.
func (s *ListService) ListFor(ctx context.Context, userID string) ([]string, error) {
	names, err := s.repomanager.WantToGo(s.repomanager.DB()).List(ctx, userID)
	if err != nil {
		return nil, storeError(ctx, s.logger, "list", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
