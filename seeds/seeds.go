// Package seeds populates an empty database with a small deterministic
// catalog so the service is usable immediately after first start.
package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func Setup(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	logger.Info("seed: truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE follows, shelf_works, shelves, ratings, works, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	logger.Info("seed: inserting users")
	if err := seedUsers(ctx, pool, rng, 20); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	logger.Info("seed: inserting works")
	if err := seedWorks(ctx, pool, rng, 50); err != nil {
		return fmt.Errorf("seed works: %w", err)
	}

	logger.Info("seed: inserting ratings")
	if err := seedRatings(ctx, pool, rng, 20, 50, 200); err != nil {
		return fmt.Errorf("seed ratings: %w", err)
	}

	logger.Info("seed: complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	first := []string{"alex", "sam", "jordan", "casey", "robin", "taylor", "morgan", "quinn"}
	last := []string{"reader", "viewer", "listener", "critic", "fan"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s_%s_%d", first[rng.Intn(len(first))], last[rng.Intn(len(last))], i+1)
		rows = append(rows, fmt.Sprintf("($%d)", i+1))
		args = append(args, name)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO users (name) VALUES " + strings.Join(rows, ", ")
	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedWorks(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	types := []string{"movie", "series", "book", "music", "game"}
	genrePool := []string{"drama", "comedy", "thriller", "sci-fi", "fantasy", "romance", "horror", "documentary"}
	adjectives := []string{"Silent", "Endless", "Broken", "Golden", "Hidden", "Last", "Burning", "Distant"}
	nouns := []string{"Harbor", "Winter", "Garden", "Signal", "Empire", "Mirror", "Voyage", "Archive"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		title := fmt.Sprintf("The %s %s", adjectives[rng.Intn(len(adjectives))], nouns[rng.Intn(len(nouns))])
		workType := types[rng.Intn(len(types))]
		year := 1970 + rng.Intn(56)

		// one or two genres per work
		genres := []string{genrePool[rng.Intn(len(genrePool))]}
		if rng.Float64() < 0.4 {
			extra := genrePool[rng.Intn(len(genrePool))]
			if extra != genres[0] {
				genres = append(genres, extra)
			}
		}

		base := i * 4
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, title, workType, year, genres)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO works (title, type, year, genres) VALUES " + strings.Join(rows, ", ")
	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedRatings(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, users, works, n int) error {
	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		userID := rng.Intn(users) + 1
		workID := rng.Intn(works) + 1
		// scores cluster toward the upper half of the scale
		score := math.Round((1.0+4.0*math.Sqrt(rng.Float64()))*2) / 2
		if score > 5 {
			score = 5
		}
		ratedAt := time.Now().AddDate(0, 0, -rng.Intn(180))

		base := i * 4
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, userID, workID, score, ratedAt)
	}

	if len(rows) == 0 {
		return nil
	}

	// Duplicate (user, work) pairs from the generator are dropped rather
	// than upserted, so seeding never touches recommendation versions.
	query := "INSERT INTO ratings (user_id, work_id, score, rated_at) VALUES " +
		strings.Join(rows, ", ") + " ON CONFLICT (user_id, work_id) DO NOTHING"
	_, err := pool.Exec(ctx, query, args...)
	return err
}
