// Package search coordinates catalog retrieval: fetch from the store, apply
// structural filters, classify candidates into best/other buckets, rank,
// sort, and paginate.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/sudutpuncak/puncak/internal/domain"
	"github.com/sudutpuncak/puncak/internal/domain/similarity"
)

const (
	// BestMatchesCap truncates the best-match bucket.
	BestMatchesCap = 15
	// OtherMatchesCap truncates the other-match bucket.
	OtherMatchesCap = 30
)

// Params holds the recognized search parameters. All fields are optional.
type Params struct {
	Query        string
	Province     string
	MinElevation *int
	SortBy       string // name, province, elevation
	SortOrder    string // asc, desc
}

// Result is the two-bucket search outcome.
type Result struct {
	BestMatches  []domain.Mountain
	OtherMatches []domain.Mountain
}

// Service is the retrieval coordinator.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs one retrieval pass. With no query and no filters it
// short-circuits to an empty result without touching the store.
func (s *Service) Search(ctx context.Context, p Params) (Result, error) {
	query := strings.TrimSpace(p.Query)

	if query == "" && p.Province == "" && p.MinElevation == nil {
		return Result{BestMatches: []domain.Mountain{}, OtherMatches: []domain.Mountain{}}, nil
	}

	mountains, err := s.repo.List(ctx)
	if err != nil {
		return Result{}, err
	}

	mountains = applyFilters(mountains, p.Province, p.MinElevation)

	var best, other []domain.Mountain
	if query != "" {
		best, other = classify(query, mountains)
	} else {
		// Filters only: everything lands in the other bucket and the
		// explicit sort parameters apply.
		other = mountains
		sortMountains(other, p.SortBy, p.SortOrder)
	}

	if len(best) > BestMatchesCap {
		best = best[:BestMatchesCap]
	}
	if len(other) > OtherMatchesCap {
		other = other[:OtherMatchesCap]
	}

	if best == nil {
		best = []domain.Mountain{}
	}
	if other == nil {
		other = []domain.Mountain{}
	}
	return Result{BestMatches: best, OtherMatches: other}, nil
}

// applyFilters keeps mountains matching the province exactly
// (case-insensitive) and sitting at or above the elevation floor.
func applyFilters(mountains []domain.Mountain, province string, minElevation *int) []domain.Mountain {
	if province == "" && minElevation == nil {
		return mountains
	}

	filtered := mountains[:0]
	for _, m := range mountains {
		if province != "" {
			if m.Province == nil || !strings.EqualFold(*m.Province, province) {
				continue
			}
		}
		if minElevation != nil {
			if m.Elevation == nil || *m.Elevation < *minElevation {
				continue
			}
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// scored pairs a mountain with its transient ranking score.
type scored struct {
	mountain domain.Mountain
	score    float64
}

// classify splits candidates into best matches (name score at or above the
// threshold) and other matches (composite score above the inclusion floor).
// Candidates below the floor are dropped, not ranked low. Each bucket is
// ordered by its own score, descending; explicit sort parameters never apply
// during fuzzy search.
func classify(query string, mountains []domain.Mountain) (best, other []domain.Mountain) {
	queryLower := strings.ToLower(query)

	var bestScored, otherScored []scored
	for _, m := range mountains {
		if similarity.IsBestMatch(queryLower, m.Name) {
			bestScored = append(bestScored, scored{m, similarity.Score(queryLower, m.Name)})
			continue
		}

		composite := similarity.CompositeScore(
			queryLower, m.Name, deref(m.Province), deref(m.Description))
		if composite > similarity.InclusionThreshold {
			otherScored = append(otherScored, scored{m, composite})
		}
	}

	sort.SliceStable(bestScored, func(i, j int) bool {
		return bestScored[i].score > bestScored[j].score
	})
	sort.SliceStable(otherScored, func(i, j int) bool {
		return otherScored[i].score > otherScored[j].score
	})

	return unwrap(bestScored), unwrap(otherScored)
}

// sortMountains orders results by the explicit sort parameters. Missing
// elevations count as 0 for ordering only; missing provinces as "".
func sortMountains(mountains []domain.Mountain, sortBy, sortOrder string) {
	desc := sortOrder == "desc"

	sort.SliceStable(mountains, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "province":
			less = deref(mountains[i].Province) < deref(mountains[j].Province)
		case "elevation":
			less = elevationOrZero(mountains[i]) < elevationOrZero(mountains[j])
		default: // name
			less = mountains[i].Name < mountains[j].Name
		}
		if desc {
			return !less && !equalBy(mountains[i], mountains[j], sortBy)
		}
		return less
	})
}

func equalBy(a, b domain.Mountain, sortBy string) bool {
	switch sortBy {
	case "province":
		return deref(a.Province) == deref(b.Province)
	case "elevation":
		return elevationOrZero(a) == elevationOrZero(b)
	default:
		return a.Name == b.Name
	}
}

func elevationOrZero(m domain.Mountain) int {
	if m.Elevation == nil {
		return 0
	}
	return *m.Elevation
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func unwrap(ss []scored) []domain.Mountain {
	if ss == nil {
		return nil
	}
	out := make([]domain.Mountain, len(ss))
	for i, s := range ss {
		out[i] = s.mountain
	}
	return out
}
