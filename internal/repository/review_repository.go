package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
)

type ReviewRepository struct {
	exec *db.Executor
}

func NewReviewRepository(exec *db.Executor) *ReviewRepository {
	return &ReviewRepository{exec: exec}
}

// InsertUnlessRecent inserts the review unless the same (name, email)
// fingerprint already submitted one after the cutoff. Check and insert run
// as a single statement, so two concurrent submissions cannot both pass the
// duplicate check. Returns false with a nil error when the insert was
// suppressed as a duplicate.
func (r *ReviewRepository) InsertUnlessRecent(ctx context.Context, review *model.Review, cutoff time.Time) (bool, error) {
	const stmt = `
		INSERT INTO reviews (name, email, rating, message, status)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM reviews
			WHERE name = $1 AND email = $2 AND created_at > $6
		)
	`
	affected, err := r.exec.Exec(ctx, stmt,
		db.String(review.Name),
		db.String(review.Email),
		db.Integer(int64(review.Rating)),
		db.String(review.Message),
		db.String(string(review.Status)),
		db.String(cutoff.UTC().Format(time.RFC3339)),
	)
	if err != nil {
		return false, fmt.Errorf("ReviewRepository.InsertUnlessRecent: %w", err)
	}
	return affected > 0, nil
}

// HasRecentFrom reports whether the (name, email) fingerprint submitted a
// review after the cutoff.
func (r *ReviewRepository) HasRecentFrom(ctx context.Context, name, email string, cutoff time.Time) (bool, error) {
	var count int
	const stmt = `SELECT COUNT(1) FROM reviews WHERE name = $1 AND email = $2 AND created_at > $3`
	err := r.exec.Get(ctx, &count, stmt,
		db.String(name),
		db.String(email),
		db.String(cutoff.UTC().Format(time.RFC3339)),
	)
	if err != nil {
		return false, fmt.Errorf("ReviewRepository.HasRecentFrom: %w", err)
	}
	return count > 0, nil
}

// FindApproved returns approved reviews newest first.
func (r *ReviewRepository) FindApproved(ctx context.Context, limit, offset int) ([]model.Review, error) {
	const stmt = `
		SELECT id, name, email, rating, message, status, helpful_count, created_at
		FROM reviews
		WHERE status = 'approved'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	var reviews []model.Review
	err := r.exec.Select(ctx, &reviews, stmt, db.Integer(int64(limit)), db.Integer(int64(offset)))
	if err != nil {
		return nil, fmt.Errorf("ReviewRepository.FindApproved: %w", err)
	}
	return reviews, nil
}

// CountApproved returns the number of approved reviews.
func (r *ReviewRepository) CountApproved(ctx context.Context) (int, error) {
	var total int
	const stmt = `SELECT COUNT(*) FROM reviews WHERE status = 'approved'`
	if err := r.exec.Get(ctx, &total, stmt); err != nil {
		return 0, fmt.Errorf("ReviewRepository.CountApproved: %w", err)
	}
	return total, nil
}

// Stats aggregates the approved reviews in one query. NULLIF guards keep
// the averages defined when the table is empty.
func (r *ReviewRepository) Stats(ctx context.Context) (*model.ReviewStats, error) {
	const stmt = `
		SELECT
			COUNT(*) AS total_reviews,
			COALESCE(AVG(rating), 0) AS average_rating,
			COALESCE(SUM(CASE WHEN rating = 5 THEN 1 ELSE 0 END), 0) AS five_star_count,
			COALESCE(SUM(CASE WHEN rating = 4 THEN 1 ELSE 0 END), 0) AS four_star_count,
			COALESCE(SUM(CASE WHEN rating = 3 THEN 1 ELSE 0 END), 0) AS three_star_count,
			COALESCE(SUM(CASE WHEN rating = 2 THEN 1 ELSE 0 END), 0) AS two_star_count,
			COALESCE(SUM(CASE WHEN rating = 1 THEN 1 ELSE 0 END), 0) AS one_star_count,
			COALESCE(ROUND(SUM(CASE WHEN rating >= 4 THEN 1 ELSE 0 END) * 100.0 / NULLIF(COUNT(*), 0), 1), 0) AS satisfaction_percentage
		FROM reviews
		WHERE status = 'approved'
	`
	var stats model.ReviewStats
	if err := r.exec.Get(ctx, &stats, stmt); err != nil {
		return nil, fmt.Errorf("ReviewRepository.Stats: %w", err)
	}
	return &stats, nil
}
