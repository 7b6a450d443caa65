package recommend

import (
	"sort"

	"github.com/mediashelf/catalog-service/internal/domain"
)

// ListSize is the fixed length of each published list. Smaller catalogs
// simply produce shorter lists.
const ListSize = 5

// Strategy orders candidates; it reports whether a ranks ahead of b.
type Strategy func(a, b domain.Work) bool

// Popularity ranks by number of ratings received, then mean rating, then
// ascending work ID so the ordering is fully deterministic.
func Popularity() Strategy {
	return func(a, b domain.Work) bool {
		if a.RatingCount != b.RatingCount {
			return a.RatingCount > b.RatingCount
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ID < b.ID
	}
}

// ByProfile ranks by taste-profile score, breaking ties with the
// popularity ordering.
func ByProfile(p TasteProfile) Strategy {
	popularity := Popularity()
	return func(a, b domain.Work) bool {
		sa, sb := p.WorkScore(a), p.WorkScore(b)
		if sa != sb {
			return sa > sb
		}
		return popularity(a, b)
	}
}

// Rank sorts candidates under the given strategy and returns the top n.
// The input slice is left untouched.
func Rank(candidates []domain.Work, s Strategy, n int) []domain.Work {
	ranked := make([]domain.Work, len(candidates))
	copy(ranked, candidates)
	sort.Slice(ranked, func(i, j int) bool {
		return s(ranked[i], ranked[j])
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
