package recommend

import "github.com/mediashelf/catalog-service/internal/domain"

// Midpoint of the 1-5 score scale. Scores above it promote a work's
// facets, scores below suppress them, exact-midpoint scores are neutral.
const scoreMidpoint = 3.0

// TasteProfile maps a facet (genre name or namespaced work type) to its
// accumulated preference weight. Only relative ordering of candidates
// matters, so weights are never normalized.
type TasteProfile map[string]float64

// typeFacet namespaces work types so a genre that happens to share a
// type's name cannot alias it.
func typeFacet(t domain.WorkType) string {
	return "type:" + string(t)
}

// BuildProfile folds a user's rating history into facet weights. A user
// with no ratings yields an empty profile, which is the cold-start signal
// and not an error.
func BuildProfile(history []domain.UserRating) TasteProfile {
	profile := make(TasteProfile)
	for _, r := range history {
		deviation := r.Score - scoreMidpoint
		for _, g := range r.Genres {
			profile[g] += deviation
		}
		profile[typeFacet(r.WorkType)] += deviation
	}
	return profile
}

// WorkScore sums the profile weights of a work's genres and type. Facets
// absent from the profile contribute zero.
func (p TasteProfile) WorkScore(w domain.Work) float64 {
	var score float64
	for _, g := range w.Genres {
		score += p[g]
	}
	score += p[typeFacet(w.Type)]
	return score
}
