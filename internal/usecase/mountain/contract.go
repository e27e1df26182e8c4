package mountain

import (
	"context"

	"github.com/sudutpuncak/puncak/internal/domain"
)

// Repository defines the storage contract for single-mountain operations.
type Repository interface {
	GetByName(ctx context.Context, name string) (domain.Mountain, error)
	ResolveReference(ctx context.Context, name string) (domain.Reference, error)
	Related(ctx context.Context, refName string, ref domain.Reference) ([]domain.RelatedMountain, error)
	Provinces(ctx context.Context) ([]string, error)
}
