package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mediashelf/catalog-service/internal/domain"
)

// UpsertRating creates or replaces the user's rating for a work and bumps
// the user's recommendation version, all in one transaction. The UPDATE on
// the user row takes a row lock, so concurrent upserts for the same user
// serialize and never lose an increment; unrelated users are unaffected.
func (r *Repository) UpsertRating(ctx context.Context, userID, workID int64, score float64) (*domain.Rating, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin rating upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	var workExists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM works WHERE id = $1)`, workID,
	).Scan(&workExists); err != nil {
		return nil, fmt.Errorf("check work id=%d: %w", workID, err)
	}
	if !workExists {
		return nil, domain.ErrWorkNotFound
	}

	// Doubles as the user existence check.
	tag, err := tx.Exec(ctx,
		`UPDATE users SET recommendation_version = recommendation_version + 1
		 WHERE id = $1`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("bump recommendation version for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	rating := &domain.Rating{UserID: userID, WorkID: workID, Score: score}
	err = tx.QueryRow(ctx,
		`INSERT INTO ratings (user_id, work_id, score, rated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, work_id)
		 DO UPDATE SET score = EXCLUDED.score, rated_at = EXCLUDED.rated_at
		 RETURNING id, rated_at`,
		userID, workID, score,
	).Scan(&rating.ID, &rating.RatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert rating user=%d work=%d: %w", userID, workID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit rating upsert: %w", err)
	}
	return rating, nil
}

func (r *Repository) GetRating(ctx context.Context, userID, workID int64) (*domain.Rating, error) {
	rating := &domain.Rating{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, work_id, score, rated_at
		 FROM ratings WHERE user_id = $1 AND work_id = $2`,
		userID, workID,
	).Scan(&rating.ID, &rating.UserID, &rating.WorkID, &rating.Score, &rating.RatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, fmt.Errorf("query rating user=%d work=%d: %w", userID, workID, err)
	}
	return rating, nil
}

func (r *Repository) ListRatings(ctx context.Context, userID int64) ([]domain.Rating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, work_id, score, rated_at
		 FROM ratings WHERE user_id = $1
		 ORDER BY rated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query ratings for user %d: %w", userID, err)
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.WorkID, &rt.Score, &rt.RatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}

// ListRatedWorks joins a user's ratings with the rated works' facets. This
// is the read model taste profiles are built from.
func (r *Repository) ListRatedWorks(ctx context.Context, userID int64) ([]domain.UserRating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT rt.work_id, rt.score, w.type, w.genres, rt.rated_at
		 FROM ratings rt
		 JOIN works w ON rt.work_id = w.id
		 WHERE rt.user_id = $1
		 ORDER BY rt.rated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query rated works for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []domain.UserRating
	for rows.Next() {
		var item domain.UserRating
		if err := rows.Scan(&item.WorkID, &item.Score, &item.WorkType, &item.Genres, &item.RatedAt); err != nil {
			return nil, fmt.Errorf("scan rated work: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rated works: %w", err)
	}
	return items, nil
}
