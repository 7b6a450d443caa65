package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mediashelf/catalog-service/internal/domain"
)

func (r *Repository) CreateWork(ctx context.Context, w *domain.Work) (*domain.Work, error) {
	var year *int
	if w.Year != 0 {
		year = &w.Year
	}
	created := &domain.Work{
		Title:  w.Title,
		Type:   w.Type,
		Year:   w.Year,
		Genres: w.Genres,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO works (title, type, year, genres) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		w.Title, w.Type, year, w.Genres,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert work: %w", err)
	}
	return created, nil
}

// Aggregates (mean score and count) are always computed from the ratings
// table rather than denormalized onto works.
const workSelect = `
	SELECT w.id, w.title, w.type, COALESCE(w.year, 0), w.genres,
	       COALESCE(AVG(rt.score), 0), COUNT(rt.id), w.created_at
	FROM works w
	LEFT JOIN ratings rt ON rt.work_id = w.id`

func (r *Repository) GetWork(ctx context.Context, workID int64) (*domain.Work, error) {
	w := &domain.Work{}
	err := r.pool.QueryRow(ctx,
		workSelect+` WHERE w.id = $1 GROUP BY w.id`, workID,
	).Scan(&w.ID, &w.Title, &w.Type, &w.Year, &w.Genres, &w.Rating, &w.RatingCount, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkNotFound
		}
		return nil, fmt.Errorf("query work id=%d: %w", workID, err)
	}
	return w, nil
}

func (r *Repository) ListWorks(ctx context.Context) ([]domain.Work, error) {
	rows, err := r.pool.Query(ctx, workSelect+` GROUP BY w.id ORDER BY w.id`)
	if err != nil {
		return nil, fmt.Errorf("query works: %w", err)
	}
	defer rows.Close()

	var works []domain.Work
	for rows.Next() {
		var w domain.Work
		err := rows.Scan(&w.ID, &w.Title, &w.Type, &w.Year, &w.Genres, &w.Rating, &w.RatingCount, &w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan work: %w", err)
		}
		works = append(works, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate works: %w", err)
	}
	return works, nil
}
