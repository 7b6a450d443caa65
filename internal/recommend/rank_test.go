package recommend

import (
	"testing"

	"github.com/mediashelf/catalog-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func workIDs(works []domain.Work) []int64 {
	ids := make([]int64, len(works))
	for i, w := range works {
		ids[i] = w.ID
	}
	return ids
}

func TestPopularityOrdering(t *testing.T) {
	candidates := []domain.Work{
		{ID: 1, RatingCount: 5, Rating: 4.0},
		{ID: 2, RatingCount: 10, Rating: 3.0},
		{ID: 3, RatingCount: 5, Rating: 4.5},
		{ID: 4, RatingCount: 5, Rating: 4.5},
	}

	ranked := Rank(candidates, Popularity(), ListSize)

	// count first, then mean rating, then ascending id
	assert.Equal(t, []int64{2, 3, 4, 1}, workIDs(ranked))
}

func TestRankTruncatesToN(t *testing.T) {
	candidates := make([]domain.Work, 8)
	for i := range candidates {
		candidates[i] = domain.Work{ID: int64(i + 1), RatingCount: int64(100 - i)}
	}

	ranked := Rank(candidates, Popularity(), ListSize)

	assert.Len(t, ranked, ListSize)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, workIDs(ranked))
}

func TestRankSmallCandidateSet(t *testing.T) {
	candidates := []domain.Work{{ID: 7}, {ID: 3}}

	ranked := Rank(candidates, Popularity(), ListSize)

	assert.Equal(t, []int64{3, 7}, workIDs(ranked))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	candidates := []domain.Work{{ID: 2}, {ID: 1}}

	Rank(candidates, Popularity(), ListSize)

	assert.Equal(t, []int64{2, 1}, workIDs(candidates))
}

func TestByProfilePrefersMatchingGenre(t *testing.T) {
	// user loved a drama: weight(drama) = +2
	profile := BuildProfile([]domain.UserRating{
		{WorkID: 1, Score: 5, WorkType: domain.WorkTypeMovie, Genres: []string{"drama"}},
	})

	// equal popularity; the comedy has the lower id so popularity alone
	// would rank it first
	candidates := []domain.Work{
		{ID: 10, Genres: []string{"comedy"}, Type: domain.WorkTypeMovie},
		{ID: 11, Genres: []string{"drama"}, Type: domain.WorkTypeMovie},
	}

	ranked := Rank(candidates, ByProfile(profile), ListSize)

	assert.Equal(t, []int64{11, 10}, workIDs(ranked))
}

func TestByProfileTieBreaksByPopularity(t *testing.T) {
	profile := TasteProfile{"drama": 1.0}

	candidates := []domain.Work{
		{ID: 1, Genres: []string{"drama"}, RatingCount: 2},
		{ID: 2, Genres: []string{"drama"}, RatingCount: 9},
		{ID: 3, Genres: []string{"drama"}, RatingCount: 2},
	}

	ranked := Rank(candidates, ByProfile(profile), ListSize)

	assert.Equal(t, []int64{2, 1, 3}, workIDs(ranked))
}

func TestEligibleWorksExcludesRated(t *testing.T) {
	catalog := []domain.Work{{ID: 1}, {ID: 2}, {ID: 3}}
	rated := map[int64]struct{}{2: {}}

	eligible := EligibleWorks(catalog, rated)

	assert.Equal(t, []int64{1, 3}, workIDs(eligible))
}
