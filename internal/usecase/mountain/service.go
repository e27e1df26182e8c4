// Package mountain handles single-mountain lookups, the two-phase
// related-mountain resolution, and the distinct province listing.
package mountain

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sudutpuncak/puncak/internal/domain"
)

// Service handles mountain lookups against the catalog.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a mountain service.
func New(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get retrieves a single mountain by exact (case-insensitive) name.
func (s *Service) Get(ctx context.Context, name string) (domain.Mountain, error) {
	return s.repo.GetByName(ctx, name)
}

// Related resolves the reference mountain's province and elevation, then
// retrieves mountains sharing either. The second query depends on the first's
// result, so the two store calls are strictly sequential. A missing reference
// or a store failure yields an empty list, never an error: related mountains
// are a non-fatal enrichment.
func (s *Service) Related(ctx context.Context, name string) ([]domain.RelatedMountain, error) {
	ref, err := s.repo.ResolveReference(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("related lookup degraded", zap.String("name", name), zap.Error(err))
		}
		return []domain.RelatedMountain{}, nil
	}

	related, err := s.repo.Related(ctx, name, ref)
	if err != nil {
		s.logger.Warn("related lookup degraded", zap.String("name", name), zap.Error(err))
		return []domain.RelatedMountain{}, nil
	}
	if related == nil {
		related = []domain.RelatedMountain{}
	}
	return related, nil
}

// Provinces lists all distinct province labels. Store failures degrade to an
// empty list.
func (s *Service) Provinces(ctx context.Context) ([]string, error) {
	provinces, err := s.repo.Provinces(ctx)
	if err != nil {
		s.logger.Warn("province listing degraded", zap.Error(err))
		return []string{}, nil
	}
	if provinces == nil {
		provinces = []string{}
	}
	return provinces, nil
}
