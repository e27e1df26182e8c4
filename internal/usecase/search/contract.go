package search

import (
	"context"

	"github.com/sudutpuncak/puncak/internal/domain"
)

// Repository defines the storage contract for catalog retrieval.
type Repository interface {
	List(ctx context.Context) ([]domain.Mountain, error)
}
