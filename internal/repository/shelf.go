package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mediashelf/catalog-service/internal/domain"
)

func (r *Repository) CreateShelf(ctx context.Context, userID int64, name string) (*domain.Shelf, error) {
	var userExists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID,
	).Scan(&userExists); err != nil {
		return nil, fmt.Errorf("check user id=%d: %w", userID, err)
	}
	if !userExists {
		return nil, domain.ErrUserNotFound
	}

	shelf := &domain.Shelf{UserID: userID, Name: name}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO shelves (user_id, name) VALUES ($1, $2)
		 RETURNING id, created_at`,
		userID, name,
	).Scan(&shelf.ID, &shelf.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert shelf for user %d: %w", userID, err)
	}
	return shelf, nil
}

func (r *Repository) GetShelf(ctx context.Context, shelfID int64) (*domain.Shelf, error) {
	shelf := &domain.Shelf{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, created_at FROM shelves WHERE id = $1`,
		shelfID,
	).Scan(&shelf.ID, &shelf.UserID, &shelf.Name, &shelf.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShelfNotFound
		}
		return nil, fmt.Errorf("query shelf id=%d: %w", shelfID, err)
	}
	return shelf, nil
}

func (r *Repository) ListShelves(ctx context.Context, userID int64) ([]domain.Shelf, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, created_at
		 FROM shelves WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query shelves for user %d: %w", userID, err)
	}
	defer rows.Close()

	var shelves []domain.Shelf
	for rows.Next() {
		var s domain.Shelf
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shelf: %w", err)
		}
		shelves = append(shelves, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shelves: %w", err)
	}
	return shelves, nil
}

// AddShelfWork is idempotent: re-adding a work already on the shelf is a
// no-op.
func (r *Repository) AddShelfWork(ctx context.Context, shelfID, workID int64) error {
	if _, err := r.GetShelf(ctx, shelfID); err != nil {
		return err
	}
	var workExists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM works WHERE id = $1)`, workID,
	).Scan(&workExists); err != nil {
		return fmt.Errorf("check work id=%d: %w", workID, err)
	}
	if !workExists {
		return domain.ErrWorkNotFound
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO shelf_works (shelf_id, work_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		shelfID, workID,
	)
	if err != nil {
		return fmt.Errorf("add work %d to shelf %d: %w", workID, shelfID, err)
	}
	return nil
}

func (r *Repository) RemoveShelfWork(ctx context.Context, shelfID, workID int64) error {
	if _, err := r.GetShelf(ctx, shelfID); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx,
		`DELETE FROM shelf_works WHERE shelf_id = $1 AND work_id = $2`,
		shelfID, workID,
	)
	if err != nil {
		return fmt.Errorf("remove work %d from shelf %d: %w", workID, shelfID, err)
	}
	return nil
}

func (r *Repository) ListShelfWorks(ctx context.Context, shelfID int64) ([]domain.Work, error) {
	if _, err := r.GetShelf(ctx, shelfID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT w.id, w.title, w.type, COALESCE(w.year, 0), w.genres,
		        COALESCE(AVG(rt.score), 0), COUNT(rt.id), w.created_at
		 FROM shelf_works sw
		 JOIN works w ON sw.work_id = w.id
		 LEFT JOIN ratings rt ON rt.work_id = w.id
		 WHERE sw.shelf_id = $1
		 GROUP BY w.id, sw.added_at
		 ORDER BY sw.added_at, w.id`,
		shelfID,
	)
	if err != nil {
		return nil, fmt.Errorf("query works on shelf %d: %w", shelfID, err)
	}
	defer rows.Close()

	var works []domain.Work
	for rows.Next() {
		var w domain.Work
		err := rows.Scan(&w.ID, &w.Title, &w.Type, &w.Year, &w.Genres, &w.Rating, &w.RatingCount, &w.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan shelf work: %w", err)
		}
		works = append(works, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shelf works: %w", err)
	}
	return works, nil
}
