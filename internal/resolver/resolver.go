// Package resolver turns a coordinate into the single best-matching
// named place from the local dataset.
package resolver

import (
	"context"

	"github.com/bstardust/photoplace/internal/geomath"
	"github.com/bstardust/photoplace/internal/placestore"
	"github.com/bstardust/photoplace/pkg/models"
)

// maxDistanceKm is the hard cutoff: candidates farther than this
// from the query point are excluded outright, not merely penalized.
// A finer filter than the repository's bounding box, and tuned
// independently of it.
const maxDistanceKm = 50.0

// Scoring weights. Distance decays the score linearly, importance
// lifts it, and the kind bias prefers landmarks over settlements.
const (
	distanceWeight   = 1.0
	importanceWeight = 2.5
)

func kindBias(k models.Kind) float64 {
	switch k {
	case models.KindLandmark:
		return 8.0
	case models.KindCity:
		return 3.0
	case models.KindTown:
		return 1.0
	default:
		return 0.0
	}
}

// score rates a candidate against the query point. The second return
// is false when the candidate is beyond the distance cutoff, in
// which case no score is defined for it.
func score(c models.Candidate, lat, lon float64) (float64, bool) {
	distance := geomath.Haversine(lat, lon, c.Lat, c.Lon)
	if distance > maxDistanceKm {
		return 0, false
	}
	return -distance*distanceWeight + c.Importance*importanceWeight + kindBias(c.Kind), true
}

// SelectBest returns the highest-scoring candidate within the
// distance cutoff, or nil when none qualifies. Ties go to the
// earliest candidate in the input: the scan keeps a strictly-greater
// comparison, so for identical input ordering the result is
// deterministic even though the scoring itself defines no winner.
func SelectBest(candidates []models.Candidate, lat, lon float64) *models.Place {
	var (
		best      *models.Candidate
		bestScore float64
	)
	for i := range candidates {
		s, ok := score(candidates[i], lat, lon)
		if !ok {
			continue
		}
		if best == nil || s > bestScore {
			best = &candidates[i]
			bestScore = s
		}
	}
	if best == nil {
		return nil
	}
	return &models.Place{
		Name:    best.Name,
		Country: best.Country,
		Admin:   best.Admin,
		Kind:    best.Kind,
	}
}

// ReverseGeocode resolves (lat, lon) to the best nearby place.
// Store errors, including an incompatible schema, propagate to the
// caller; "nothing close enough" is a nil place, not an error.
func ReverseGeocode(ctx context.Context, store *placestore.Store, lat, lon float64) (*models.Place, error) {
	candidates, err := store.FetchCandidates(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return SelectBest(candidates, lat, lon), nil
}
