package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mediashelf/catalog-service/internal/domain"
	"go.uber.org/zap"
)

const batchConcurrency = 10

// Recommendations is a pure read: it recomputes both lists from current
// state and tags them with the user's recommendation version.
func (s *Service) Recommendations(ctx context.Context, userID int64) (*domain.RecommendationResult, error) {
	return s.engine.Recommendations(ctx, userID)
}

// BatchRecommendations computes recommendations for a page of users with a
// bounded worker pool, capturing per-user failures instead of aborting the
// whole batch.
func (s *Service) BatchRecommendations(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	userIDs, err := s.store.ListUserIDs(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch user ids: %w", err)
	}

	totalUsers, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	results := make([]domain.BatchUserResult, len(userIDs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, userID := range userIDs {
		wg.Add(1)
		go func(idx int, uid int64) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.recommendForBatch(ctx, uid)
		}(i, userID)
	}
	wg.Wait()

	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalUsers: totalUsers,
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func (s *Service) recommendForBatch(ctx context.Context, userID int64) domain.BatchUserResult {
	result, err := s.Recommendations(ctx, userID)
	if err != nil {
		s.logger.Warn("batch recommendation failed",
			zap.Int64("user_id", userID), zap.Error(err))
		code, msg := categorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchUserResult{
		UserID: userID,
		Result: result,
		Status: domain.StatusSuccess,
	}
}

func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrUserNotFound) {
		return "user_not_found", "user not found"
	}
	return "internal_error", "an unexpected error occurred"
}
