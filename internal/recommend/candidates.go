package recommend

import "github.com/mediashelf/catalog-service/internal/domain"

// EligibleWorks filters the catalog down to works the user has not rated.
// A user is never recommended something they already scored.
func EligibleWorks(catalog []domain.Work, rated map[int64]struct{}) []domain.Work {
	eligible := make([]domain.Work, 0, len(catalog))
	for _, w := range catalog {
		if _, ok := rated[w.ID]; ok {
			continue
		}
		eligible = append(eligible, w)
	}
	return eligible
}
