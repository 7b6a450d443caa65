package recommend_test

import (
	"context"
	"testing"

	"github.com/mediashelf/catalog-service/internal/domain"
	"github.com/mediashelf/catalog-service/internal/recommend"
	"github.com/mediashelf/catalog-service/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCatalog creates one user and six works. Work IDs are 1..6; the
// comedy works carry lower IDs than the dramas so popularity ordering and
// profile ordering are distinguishable.
func seedCatalog(t *testing.T) (*memory.Store, *domain.User) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	user, err := store.CreateUser(ctx, "reader")
	require.NoError(t, err)

	works := []domain.Work{
		{Title: "Comedy One", Type: domain.WorkTypeMovie, Genres: []string{"comedy"}},
		{Title: "Comedy Two", Type: domain.WorkTypeMovie, Genres: []string{"comedy"}},
		{Title: "Drama One", Type: domain.WorkTypeMovie, Genres: []string{"drama"}},
		{Title: "Drama Two", Type: domain.WorkTypeMovie, Genres: []string{"drama"}},
		{Title: "Drama Three", Type: domain.WorkTypeMovie, Genres: []string{"drama"}},
		{Title: "Thriller One", Type: domain.WorkTypeMovie, Genres: []string{"thriller"}},
	}
	for i := range works {
		_, err := store.CreateWork(ctx, &works[i])
		require.NoError(t, err)
	}
	return store, user
}

func ids(works []domain.Work) []int64 {
	out := make([]int64, len(works))
	for i, w := range works {
		out[i] = w.ID
	}
	return out
}

func TestColdStartProfileMatchesCurrent(t *testing.T) {
	store, user := seedCatalog(t)
	engine := recommend.NewEngine(store)

	result, err := engine.Recommendations(context.Background(), user.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Current)
	assert.Equal(t, result.Current, result.Profile)
	assert.Equal(t, int64(0), result.Version)
}

func TestRatedWorksNeverRecommended(t *testing.T) {
	store, user := seedCatalog(t)
	ctx := context.Background()

	_, err := store.UpsertRating(ctx, user.ID, 1, 4.5)
	require.NoError(t, err)
	_, err = store.UpsertRating(ctx, user.ID, 3, 2.0)
	require.NoError(t, err)

	engine := recommend.NewEngine(store)
	result, err := engine.Recommendations(ctx, user.ID)
	require.NoError(t, err)

	for _, list := range [][]domain.Work{result.Current, result.Profile} {
		assert.NotContains(t, ids(list), int64(1))
		assert.NotContains(t, ids(list), int64(3))
	}
}

func TestProfileListPrefersLikedGenre(t *testing.T) {
	store, user := seedCatalog(t)
	ctx := context.Background()

	// loving one drama lifts every unrated drama above the comedies
	_, err := store.UpsertRating(ctx, user.ID, 3, 5.0)
	require.NoError(t, err)

	engine := recommend.NewEngine(store)
	result, err := engine.Recommendations(ctx, user.ID)
	require.NoError(t, err)

	// dramas 4 and 5 first, then the zero-weight rest by work id
	assert.Equal(t, []int64{4, 5, 1, 2, 6}, ids(result.Profile))
	// current stays popularity-ordered (all equal, so ascending id)
	assert.Equal(t, []int64{1, 2, 4, 5, 6}, ids(result.Current))
	assert.Equal(t, int64(1), result.Version)
}

func TestRecommendationsAreDeterministic(t *testing.T) {
	store, user := seedCatalog(t)
	ctx := context.Background()

	_, err := store.UpsertRating(ctx, user.ID, 2, 4.0)
	require.NoError(t, err)

	engine := recommend.NewEngine(store)
	first, err := engine.Recommendations(ctx, user.ID)
	require.NoError(t, err)
	second, err := engine.Recommendations(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSmallCatalogReturnsShortLists(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	user, err := store.CreateUser(ctx, "reader")
	require.NoError(t, err)
	_, err = store.CreateWork(ctx, &domain.Work{Title: "Only One", Type: domain.WorkTypeBook, Genres: []string{"drama"}})
	require.NoError(t, err)

	engine := recommend.NewEngine(store)
	result, err := engine.Recommendations(ctx, user.ID)
	require.NoError(t, err)

	assert.Len(t, result.Current, 1)
	assert.Len(t, result.Profile, 1)
}

func TestUnknownUserIsNotFound(t *testing.T) {
	store, _ := seedCatalog(t)
	engine := recommend.NewEngine(store)

	_, err := engine.Recommendations(context.Background(), 999999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
