package services

import (
	"context"

	"github.com/dmitrijs2005/wanttogo/internal/common"
	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/catalog"
	"github.com/dmitrijs2005/wanttogo/internal/server/models"
)

// MediaResolver turns a stored media reference into a URL for the client.
type MediaResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

// DestinationView is a catalog record as shown to one user.
type DestinationView struct {
	Destination   models.Destination
	MediaURL      string
	AlreadyInList bool
}

// DestinationService joins the read-only catalog with the user's list.
type DestinationService struct {
	catalog *catalog.Catalog
	lists   *ListService
	media   MediaResolver
	logger  logging.Logger
}

func NewDestinationService(c *catalog.Catalog, lists *ListService, media MediaResolver, logger logging.Logger) *DestinationService {
	return &DestinationService{
		catalog: c,
		lists:   lists,
		media:   media,
		logger:  logger.With("module", "destinations"),
	}
}

// Catalog lists every destination ordered by key.
func (s *DestinationService) Catalog() []models.Destination {
	return s.catalog.All()
}

// View looks key up case-insensitively and reports whether the destination
// is already on the user's list.
func (s *DestinationService) View(ctx context.Context, userID, key string) (*DestinationView, error) {
	d, ok := s.catalog.Lookup(key)
	if !ok {
		return nil, common.ErrorDestinationNotFound
	}

	inList, err := s.lists.IsMember(ctx, userID, d.Name)
	if err != nil {
		return nil, err
	}

	return &DestinationView{
		Destination:   d,
		MediaURL:      s.resolveMedia(ctx, d),
		AlreadyInList: inList,
	}, nil
}

// AddToList adds the destination with the given display name to the user's
// list. Names missing from the catalog yield common.ErrorDestinationNotFound.
func (s *DestinationService) AddToList(ctx context.Context, userID, name string) (models.Destination, models.AddOutcome, error) {
	d, ok := s.catalog.ByName(name)
	if !ok {
		return models.Destination{}, 0, common.ErrorDestinationNotFound
	}

	outcome, err := s.lists.TryAdd(ctx, userID, d.Name)
	if err != nil {
		return d, 0, err
	}
	return d, outcome, nil
}

func (s *DestinationService) resolveMedia(ctx context.Context, d models.Destination) string {
	if s.media == nil {
		return d.MediaURL
	}
	u, err := s.media.Resolve(ctx, d.MediaURL)
	if err != nil {
		s.logger.Warn(ctx, "media unavailable", "destination", d.Key, "error", err)
		return ""
	}
	return u
}
