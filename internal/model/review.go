package model

import "time"

// ReviewStatus controls whether a review is publicly visible.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Review is a customer review. New submissions default to approved; status
// changes are a manual back-office operation, never performed here.
type Review struct {
	ID           int64        `db:"id" json:"id"`
	Name         string       `db:"name" json:"name"`
	Email        string       `db:"email" json:"email"`
	Rating       int          `db:"rating" json:"rating"`
	Message      string       `db:"message" json:"message"`
	Status       ReviewStatus `db:"status" json:"status"`
	HelpfulCount int          `db:"helpful_count" json:"helpful_count"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// ReviewStats aggregates the approved reviews. Satisfaction is the share of
// reviews rated 4 or 5, as a percentage rounded to one decimal. A zero
// TotalReviews means no data; every other field is zero in that case.
type ReviewStats struct {
	TotalReviews   int     `db:"total_reviews" json:"total_reviews"`
	AverageRating  float64 `db:"average_rating" json:"average_rating"`
	FiveStarCount  int     `db:"five_star_count" json:"five_star_count"`
	FourStarCount  int     `db:"four_star_count" json:"four_star_count"`
	ThreeStarCount int     `db:"three_star_count" json:"three_star_count"`
	TwoStarCount   int     `db:"two_star_count" json:"two_star_count"`
	OneStarCount   int     `db:"one_star_count" json:"one_star_count"`
	Satisfaction   float64 `db:"satisfaction_percentage" json:"satisfaction_percentage"`
}
