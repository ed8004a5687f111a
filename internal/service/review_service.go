package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// duplicateWindow is how long a (name, email) fingerprint blocks repeat
// submissions.
const duplicateWindow = 24 * time.Hour

const (
	minPageSize     = 1
	maxPageSize     = 50
	defaultPageSize = 10
)

// ReviewStore is what ReviewService needs from the persistence layer.
type ReviewStore interface {
	InsertUnlessRecent(ctx context.Context, review *model.Review, cutoff time.Time) (bool, error)
	HasRecentFrom(ctx context.Context, name, email string, cutoff time.Time) (bool, error)
	FindApproved(ctx context.Context, limit, offset int) ([]model.Review, error)
	CountApproved(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*model.ReviewStats, error)
}

// SubmitReviewInput carries the raw, unsanitized fields of a submission.
type SubmitReviewInput struct {
	Name    string
	Email   string
	Rating  int
	Message string
}

// ReviewPage is one page of approved reviews plus pagination bookkeeping.
type ReviewPage struct {
	Reviews      []model.Review
	CurrentPage  int
	TotalPages   int
	TotalReviews int
	PerPage      int
}

// ReviewService owns review submission, listing and statistics. Both the
// JSON API and the form path go through Submit, so they enforce identical
// rules.
type ReviewService struct {
	store ReviewStore
	now   func() time.Time
}

func NewReviewService(store ReviewStore) *ReviewService {
	return &ReviewService{store: store, now: time.Now}
}

// Submit sanitizes and validates the input, rejects duplicates within the
// 24-hour window, and inserts the review with status approved. Returns
// validate.Errors for field problems and ErrDuplicateReview for repeats.
func (s *ReviewService) Submit(ctx context.Context, in SubmitReviewInput) (*model.Review, error) {
	name := validate.Sanitize(in.Name)
	email := validate.Sanitize(in.Email)
	message := validate.Sanitize(in.Message)

	var errs validate.Errors
	if !validate.LengthBetween(name, 2, 100) {
		errs.Add("reviewerName", "Name must be between 2 and 100 characters.")
	}
	if !validate.Email(email) {
		errs.Add("reviewerEmail", "Please provide a valid email address.")
	}
	if !validate.Rating(in.Rating) {
		errs.Add("rating", "Rating must be between 1 and 5.")
	}
	if !validate.LengthBetween(message, 10, 1000) {
		errs.Add("reviewText", "Review text must be between 10 and 1000 characters.")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-duplicateWindow)
	dup, err := s.store.HasRecentFrom(ctx, name, email, cutoff)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.Submit: duplicate check: %w", err)
	}
	if dup {
		return nil, ErrDuplicateReview
	}

	review := &model.Review{
		Name:    name,
		Email:   email,
		Rating:  in.Rating,
		Message: message,
		Status:  model.ReviewStatusApproved,
	}
	inserted, err := s.store.InsertUnlessRecent(ctx, review, cutoff)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.Submit: insert: %w", err)
	}
	if !inserted {
		// A concurrent submission won the window between check and insert.
		return nil, ErrDuplicateReview
	}
	review.CreatedAt = s.now()
	return review, nil
}

// Recent returns up to limit approved reviews, newest first.
func (s *ReviewService) Recent(ctx context.Context, limit int) ([]model.Review, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	reviews, err := s.store.FindApproved(ctx, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.Recent: %w", err)
	}
	return reviews, nil
}

// Page returns one page of approved reviews. The page size is clamped to
// [1, 50] and the page number to at least 1.
func (s *ReviewService) Page(ctx context.Context, page, size int) (*ReviewPage, error) {
	if page < 1 {
		page = 1
	}
	if size < minPageSize {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	offset := (page - 1) * size

	reviews, err := s.store.FindApproved(ctx, size, offset)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.Page: %w", err)
	}
	total, err := s.store.CountApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.Page: count: %w", err)
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return &ReviewPage{
		Reviews:      reviews,
		CurrentPage:  page,
		TotalPages:   (total + size - 1) / size,
		TotalReviews: total,
		PerPage:      size,
	}, nil
}

// Statistics returns the aggregate rating figures. With no approved reviews
// every field is zero, TotalReviews included; callers treat that as the
// no-data case.
func (s *ReviewService) Statistics(ctx context.Context) (*model.ReviewStats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.Statistics: %w", err)
	}
	if stats.TotalReviews == 0 {
		return &model.ReviewStats{}, nil
	}
	return stats, nil
}
