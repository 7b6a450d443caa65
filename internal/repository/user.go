package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mediashelf/catalog-service/internal/domain"
)

func (r *Repository) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	user := &domain.User{Name: name}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name) VALUES ($1)
		 RETURNING id, recommendation_version, created_at`,
		name,
	).Scan(&user.ID, &user.RecommendationVersion, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Get single user
func (r *Repository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user := &domain.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, recommendation_version, created_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Name, &user.RecommendationVersion, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user id=%d: %w", userID, err)
	}
	return user, nil
}

// RecommendationVersion returns the latest committed version counter for
// the user.
func (r *Repository) RecommendationVersion(ctx context.Context, userID int64) (int64, error) {
	var version int64
	err := r.pool.QueryRow(ctx,
		`SELECT recommendation_version FROM users WHERE id = $1`, userID,
	).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("query recommendation version for user %d: %w", userID, err)
	}
	return version, nil
}

// Get user ids for page
func (r *Repository) ListUserIDs(ctx context.Context, page, limit int) ([]int64, error) {
	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query user ids for page %d: %w", page, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user ids: %w", err)
	}
	return ids, nil
}

// Count total users
func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}
