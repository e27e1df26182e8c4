// Package mountain translates SPARQL result bindings into catalog records.
package mountain

import (
	"context"
	"fmt"

	"github.com/sudutpuncak/puncak/internal/domain"
	"github.com/sudutpuncak/puncak/internal/sparql"
)

// store is the consumer interface for SPARQL query execution (ISP).
type store interface {
	Query(ctx context.Context, operation, query string) ([]sparql.Binding, error)
}

// Repo implements the usecase repository contracts against the SPARQL store.
type Repo struct {
	store store
}

// New creates a mountain repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List retrieves every mountain with its optional attributes.
func (r *Repo) List(ctx context.Context) ([]domain.Mountain, error) {
	bindings, err := r.store.Query(ctx, "list", sparql.MountainList())
	if err != nil {
		return nil, fmt.Errorf("list mountains: %w", err)
	}

	mountains := make([]domain.Mountain, 0, len(bindings))
	for _, b := range bindings {
		mountains = append(mountains, mountainFromBinding(b))
	}
	return mountains, nil
}

// GetByName retrieves a single mountain by case-insensitive exact name.
// Returns domain.ErrNotFound when the store holds no such mountain.
func (r *Repo) GetByName(ctx context.Context, name string) (domain.Mountain, error) {
	bindings, err := r.store.Query(ctx, "get_by_name", sparql.MountainByName(name))
	if err != nil {
		return domain.Mountain{}, fmt.Errorf("get mountain %q: %w", name, err)
	}
	if len(bindings) == 0 {
		return domain.Mountain{}, fmt.Errorf("get mountain %q: %w", name, domain.ErrNotFound)
	}
	return mountainFromBinding(bindings[0]), nil
}

// ResolveReference retrieves the province and elevation of a named mountain.
// Returns domain.ErrNotFound when the mountain does not exist.
func (r *Repo) ResolveReference(ctx context.Context, name string) (domain.Reference, error) {
	bindings, err := r.store.Query(ctx, "resolve_reference", sparql.ReferenceByName(name))
	if err != nil {
		return domain.Reference{}, fmt.Errorf("resolve reference %q: %w", name, err)
	}
	if len(bindings) == 0 {
		return domain.Reference{}, fmt.Errorf("resolve reference %q: %w", name, domain.ErrNotFound)
	}

	ref := domain.Reference{Province: bindings[0].Str("province")}
	if elev := bindings[0].IntPtr("elevation"); elev != nil {
		ref.Elevation = *elev
	}
	return ref, nil
}

// Related retrieves mountains sharing the reference's province or elevation
// band, self excluded, same-province first, capped by the query itself.
func (r *Repo) Related(ctx context.Context, refName string, ref domain.Reference) ([]domain.RelatedMountain, error) {
	bindings, err := r.store.Query(ctx, "related", sparql.Related(refName, ref.Province, ref.Elevation))
	if err != nil {
		return nil, fmt.Errorf("related to %q: %w", refName, err)
	}

	related := make([]domain.RelatedMountain, 0, len(bindings))
	for _, b := range bindings {
		related = append(related, domain.RelatedMountain{
			URI:       b.Str("mountain"),
			Name:      b.Str("name"),
			Elevation: b.IntPtr("elevation"),
			ImageURL:  imageURL(b),
			Province:  b.StrPtr("province"),
		})
	}
	return related, nil
}

// Provinces retrieves all distinct province labels, lexicographically ordered.
func (r *Repo) Provinces(ctx context.Context) ([]string, error) {
	bindings, err := r.store.Query(ctx, "provinces", sparql.Provinces())
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}

	provinces := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if p := b.Str("province"); p != "" {
			provinces = append(provinces, p)
		}
	}
	return provinces, nil
}

// mountainFromBinding maps one result row onto a catalog record. Unbound
// optional variables become nil fields; the image URL falls back to the
// catalog default.
func mountainFromBinding(b sparql.Binding) domain.Mountain {
	m := domain.Mountain{
		URI:              b.Str("mountain"),
		Name:             b.Str("name"),
		Description:      b.StrPtr("description"),
		Elevation:        b.IntPtr("elevation"),
		ImageURL:         imageURL(b),
		Province:         b.StrPtr("province"),
		Lat:              b.FloatPtr("lat"),
		Lon:              b.FloatPtr("lon"),
		VolcanicCategory: b.StrPtr("volcanicCategory"),
		GoogleMapsURL:    b.StrPtr("googleMapsUrl"),
		RestrictedFrom:   b.StrPtr("restrictedFrom"),
		RestrictedUntil:  b.StrPtr("restrictedUntil"),
	}

	if level, ok := domain.ParseStatusLevel(b.Str("statusLevel")); ok {
		m.StatusLevel = &level
	}

	return m
}

func imageURL(b sparql.Binding) string {
	if u := b.Str("imageUrl"); u != "" {
		return u
	}
	return domain.DefaultImageURL
}
