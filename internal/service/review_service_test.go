package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// fakeReviewStore mimics the repository against an in-memory slice, using
// the same clock as the service under test.
type fakeReviewStore struct {
	reviews []model.Review
	nextID  int64
	now     func() time.Time
}

func (f *fakeReviewStore) InsertUnlessRecent(_ context.Context, review *model.Review, cutoff time.Time) (bool, error) {
	for _, r := range f.reviews {
		if r.Name == review.Name && r.Email == review.Email && r.CreatedAt.After(cutoff) {
			return false, nil
		}
	}
	f.nextID++
	stored := *review
	stored.ID = f.nextID
	stored.CreatedAt = f.now()
	f.reviews = append(f.reviews, stored)
	return true, nil
}

func (f *fakeReviewStore) HasRecentFrom(_ context.Context, name, email string, cutoff time.Time) (bool, error) {
	for _, r := range f.reviews {
		if r.Name == name && r.Email == email && r.CreatedAt.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewStore) FindApproved(_ context.Context, limit, offset int) ([]model.Review, error) {
	var approved []model.Review
	for i := len(f.reviews) - 1; i >= 0; i-- {
		if f.reviews[i].Status == model.ReviewStatusApproved {
			approved = append(approved, f.reviews[i])
		}
	}
	if offset >= len(approved) {
		return nil, nil
	}
	approved = approved[offset:]
	if len(approved) > limit {
		approved = approved[:limit]
	}
	return approved, nil
}

func (f *fakeReviewStore) CountApproved(_ context.Context) (int, error) {
	count := 0
	for _, r := range f.reviews {
		if r.Status == model.ReviewStatusApproved {
			count++
		}
	}
	return count, nil
}

func (f *fakeReviewStore) Stats(_ context.Context) (*model.ReviewStats, error) {
	stats := &model.ReviewStats{}
	sum := 0
	satisfied := 0
	for _, r := range f.reviews {
		if r.Status != model.ReviewStatusApproved {
			continue
		}
		stats.TotalReviews++
		sum += r.Rating
		if r.Rating >= 4 {
			satisfied++
		}
		switch r.Rating {
		case 5:
			stats.FiveStarCount++
		case 4:
			stats.FourStarCount++
		case 3:
			stats.ThreeStarCount++
		case 2:
			stats.TwoStarCount++
		case 1:
			stats.OneStarCount++
		}
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
		stats.Satisfaction = math.Round(float64(satisfied)*1000/float64(stats.TotalReviews)) / 10
	}
	return stats, nil
}

func newReviewServiceForTest(start time.Time) (*ReviewService, *fakeReviewStore, *time.Time) {
	current := start
	clock := func() time.Time { return current }
	store := &fakeReviewStore{now: clock}
	svc := NewReviewService(store)
	svc.now = clock
	return svc, store, &current
}

func validInput() SubmitReviewInput {
	return SubmitReviewInput{
		Name:    "Sarah Johnson",
		Email:   "sarah.j@example.com",
		Rating:  5,
		Message: "Absolutely stunning wedding cake, the team nailed the design.",
	}
}

func TestSubmitRatingBounds(t *testing.T) {
	svc, _, _ := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	for _, rating := range []int{0, 6, -1} {
		in := validInput()
		in.Rating = rating
		_, err := svc.Submit(context.Background(), in)
		var errs validate.Errors
		require.ErrorAs(t, err, &errs, "rating %d must be rejected", rating)
		assert.Equal(t, "rating", errs[0].Field)
	}

	for rating := 1; rating <= 5; rating++ {
		in := validInput()
		in.Rating = rating
		in.Name = fmt.Sprintf("Customer %d", rating)
		review, err := svc.Submit(context.Background(), in)
		require.NoError(t, err, "rating %d must be accepted", rating)
		assert.Equal(t, rating, review.Rating)
		assert.Equal(t, model.ReviewStatusApproved, review.Status)
	}
}

func TestSubmitMessageLengthBoundary(t *testing.T) {
	svc, _, _ := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	in := validInput()
	in.Message = "123456789" // 9 characters
	_, err := svc.Submit(context.Background(), in)
	var errs validate.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "reviewText", errs[0].Field)

	in.Message = "1234567890" // 10 characters
	_, err = svc.Submit(context.Background(), in)
	require.NoError(t, err)
}

func TestSubmitNameAndEmailValidation(t *testing.T) {
	svc, _, _ := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	in := validInput()
	in.Name = "A"
	in.Email = "not-an-email"
	_, err := svc.Submit(context.Background(), in)
	var errs validate.Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	assert.Equal(t, "reviewerName", errs[0].Field)
	assert.Equal(t, "reviewerEmail", errs[1].Field)
}

func TestSubmitSanitizesFields(t *testing.T) {
	svc, _, _ := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	in := validInput()
	in.Name = "  <b>Sarah</b>  "
	in.Message = "<script></script>The cake was wonderful and arrived on time."
	review, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Sarah", review.Name)
	assert.Equal(t, "The cake was wonderful and arrived on time.", review.Message)
}

func TestSubmitDuplicateWindow(t *testing.T) {
	svc, _, clock := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	_, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	// Same fingerprint an hour later is rejected.
	*clock = clock.Add(1 * time.Hour)
	_, err = svc.Submit(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrDuplicateReview)

	// A different fingerprint is fine inside the window.
	other := validInput()
	other.Email = "sarah.other@example.com"
	_, err = svc.Submit(context.Background(), other)
	require.NoError(t, err)

	// Once 24 hours elapse the original fingerprint may submit again.
	*clock = clock.Add(24 * time.Hour)
	_, err = svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
}

func TestSubmitLosingTheRaceReportsDuplicate(t *testing.T) {
	svc, store, clock := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	// A concurrent submission lands between the duplicate check and the
	// insert; the guarded insert must still refuse the second row.
	_, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.Len(t, store.reviews, 1)

	*clock = clock.Add(time.Minute)
	_, err = svc.Submit(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrDuplicateReview)
	assert.Len(t, store.reviews, 1)
}

func seedReviews(t *testing.T, svc *ReviewService, clock *time.Time, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		in := validInput()
		in.Name = fmt.Sprintf("Customer %02d", i)
		in.Email = fmt.Sprintf("customer%02d@example.com", i)
		in.Rating = i%5 + 1
		_, err := svc.Submit(context.Background(), in)
		require.NoError(t, err)
		*clock = clock.Add(time.Minute)
	}
}

func TestPageDisjointAndCounted(t *testing.T) {
	svc, _, clock := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	seedReviews(t, svc, clock, 15)

	page1, err := svc.Page(context.Background(), 1, 10)
	require.NoError(t, err)
	page2, err := svc.Page(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Len(t, page1.Reviews, 10)
	assert.Len(t, page2.Reviews, 5)
	assert.Equal(t, 15, page1.TotalReviews)
	assert.Equal(t, 2, page1.TotalPages)

	seen := map[int64]bool{}
	for _, r := range page1.Reviews {
		seen[r.ID] = true
	}
	for _, r := range page2.Reviews {
		assert.False(t, seen[r.ID], "review %d appears on both pages", r.ID)
	}
}

func TestPageClampsSize(t *testing.T) {
	svc, _, clock := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	seedReviews(t, svc, clock, 3)

	page, err := svc.Page(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 10, page.PerPage)

	page, err = svc.Page(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 50, page.PerPage)
}

func TestStatisticsEmptySet(t *testing.T) {
	svc, _, _ := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReviews)
	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.Satisfaction)
}

func TestStatisticsAggregates(t *testing.T) {
	svc, _, clock := newReviewServiceForTest(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	// Ratings 1..5, one each.
	seedReviews(t, svc, clock, 5)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalReviews)
	assert.InDelta(t, 3.0, stats.AverageRating, 0.001)
	assert.Equal(t, 1, stats.FiveStarCount)
	assert.InDelta(t, 40.0, stats.Satisfaction, 0.001)
}
