package repository

import (
	"context"
	"fmt"

	"github.com/mediashelf/catalog-service/internal/domain"
)

func (r *Repository) checkUser(ctx context.Context, userID int64) error {
	var exists bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check user id=%d: %w", userID, err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return nil
}

// Follow records a follower → followee edge. Re-following is a no-op.
func (r *Repository) Follow(ctx context.Context, followerID, followeeID int64) error {
	if err := r.checkUser(ctx, followerID); err != nil {
		return err
	}
	if err := r.checkUser(ctx, followeeID); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		followerID, followeeID,
	)
	if err != nil {
		return fmt.Errorf("follow %d -> %d: %w", followerID, followeeID, err)
	}
	return nil
}

func (r *Repository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if err := r.checkUser(ctx, followerID); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return fmt.Errorf("unfollow %d -> %d: %w", followerID, followeeID, err)
	}
	return nil
}

func (r *Repository) Following(ctx context.Context, userID int64) ([]domain.User, error) {
	return r.queryFollowEdge(ctx, userID,
		`SELECT u.id, u.name, u.recommendation_version, u.created_at
		 FROM follows f
		 JOIN users u ON f.followee_id = u.id
		 WHERE f.follower_id = $1
		 ORDER BY u.id`)
}

func (r *Repository) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	return r.queryFollowEdge(ctx, userID,
		`SELECT u.id, u.name, u.recommendation_version, u.created_at
		 FROM follows f
		 JOIN users u ON f.follower_id = u.id
		 WHERE f.followee_id = $1
		 ORDER BY u.id`)
}

func (r *Repository) queryFollowEdge(ctx context.Context, userID int64, query string) ([]domain.User, error) {
	if err := r.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query follow edges for user %d: %w", userID, err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.RecommendationVersion, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate follow edges: %w", err)
	}
	return users, nil
}
