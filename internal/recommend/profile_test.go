package recommend

import (
	"testing"

	"github.com/mediashelf/catalog-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildProfileWeights(t *testing.T) {
	history := []domain.UserRating{
		{WorkID: 1, Score: 5, WorkType: domain.WorkTypeMovie, Genres: []string{"drama"}},
		{WorkID: 2, Score: 1, WorkType: domain.WorkTypeMovie, Genres: []string{"comedy"}},
		{WorkID: 3, Score: 4, WorkType: domain.WorkTypeBook, Genres: []string{"drama", "thriller"}},
	}

	p := BuildProfile(history)

	// drama: (5-3) + (4-3) = 3
	assert.Equal(t, 3.0, p["drama"])
	// comedy: (1-3) = -2
	assert.Equal(t, -2.0, p["comedy"])
	// thriller: (4-3) = 1
	assert.Equal(t, 1.0, p["thriller"])
	// movie type: (5-3) + (1-3) = 0
	assert.Equal(t, 0.0, p[typeFacet(domain.WorkTypeMovie)])
	assert.Equal(t, 1.0, p[typeFacet(domain.WorkTypeBook)])
}

func TestBuildProfileEmptyHistory(t *testing.T) {
	p := BuildProfile(nil)
	assert.Empty(t, p)
}

func TestMidpointScoreIsNeutral(t *testing.T) {
	history := []domain.UserRating{
		{WorkID: 1, Score: 3, WorkType: domain.WorkTypeMovie, Genres: []string{"drama"}},
	}

	p := BuildProfile(history)

	assert.Equal(t, 0.0, p["drama"])
	assert.Equal(t, 0.0, p[typeFacet(domain.WorkTypeMovie)])
}

func TestTypeFacetDoesNotAliasGenre(t *testing.T) {
	// a genre literally named "movie" must not share weight with the
	// movie work type
	history := []domain.UserRating{
		{WorkID: 1, Score: 5, WorkType: domain.WorkTypeBook, Genres: []string{"movie"}},
	}

	p := BuildProfile(history)

	assert.Equal(t, 2.0, p["movie"])
	assert.Equal(t, 0.0, p[typeFacet(domain.WorkTypeMovie)])
	assert.Equal(t, 2.0, p[typeFacet(domain.WorkTypeBook)])
}

func TestWorkScoreSumsFacets(t *testing.T) {
	p := TasteProfile{
		"drama":                          2.0,
		"thriller":                       0.5,
		typeFacet(domain.WorkTypeMovie): 1.0,
	}

	w := domain.Work{Type: domain.WorkTypeMovie, Genres: []string{"drama", "thriller"}}
	assert.Equal(t, 3.5, p.WorkScore(w))

	// facets absent from the profile contribute zero
	unknown := domain.Work{Type: domain.WorkTypeGame, Genres: []string{"sports"}}
	assert.Equal(t, 0.0, p.WorkScore(unknown))
}
