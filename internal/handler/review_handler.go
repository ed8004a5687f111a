package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/service"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// ReviewService is the service surface the review endpoints depend on.
type ReviewService interface {
	Submit(ctx context.Context, in service.SubmitReviewInput) (*model.Review, error)
	Recent(ctx context.Context, limit int) ([]model.Review, error)
	Page(ctx context.Context, page, size int) (*service.ReviewPage, error)
	Statistics(ctx context.Context) (*model.ReviewStats, error)
}

// submitReviewRequest accepts either a JSON body or a classic form post;
// the field names match what the pages submit.
type submitReviewRequest struct {
	ReviewerName  string `json:"reviewerName" form:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail" form:"reviewerEmail"`
	Rating        int    `json:"rating" form:"rating"`
	ReviewText    string `json:"reviewText" form:"reviewText"`
}

type ReviewHandler struct {
	svc ReviewService
}

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// RegisterRoutes registers:
//
//	GET  /api/reviews
//	GET  /api/reviews/recent
//	POST /api/reviews
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.ListReviews)
	rg.GET("/reviews/recent", h.RecentReviews)
	rg.POST("/reviews", h.SubmitReview)
}

// SubmitReview handles POST /api/reviews.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		var errs validate.Errors
		errs.Add("body", "Invalid request body.")
		respondError(c, errs)
		return
	}

	review, err := h.svc.Submit(c.Request.Context(), service.SubmitReviewInput{
		Name:    req.ReviewerName,
		Email:   req.ReviewerEmail,
		Rating:  req.Rating,
		Message: req.ReviewText,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Thank you for your review! It has been submitted successfully and will be visible shortly.", gin.H{
		"name":            review.Name,
		"rating":          review.Rating,
		"submission_time": review.CreatedAt.Format("2006-01-02 15:04:05"),
	})
}

// RecentReviews handles GET /api/reviews/recent?limit=, the feed the home
// page renders.
func (h *ReviewHandler) RecentReviews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	reviews, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	respondOK(c, "Reviews retrieved successfully.", gin.H{"reviews": reviews})
}

// ListReviews handles GET /api/reviews?page=&limit=.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.svc.Page(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := h.svc.Statistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	reviews := make([]gin.H, 0, len(result.Reviews))
	for _, r := range result.Reviews {
		reviews = append(reviews, gin.H{
			"id":         r.ID,
			"name":       r.Name,
			"email":      r.Email,
			"rating":     r.Rating,
			"message":    r.Message,
			"created_at": r.CreatedAt.Format(time.RFC3339),
		})
	}

	respondOK(c, "Reviews retrieved successfully.", gin.H{
		"reviews": reviews,
		"pagination": gin.H{
			"current_page":     result.CurrentPage,
			"total_pages":      result.TotalPages,
			"total_reviews":    result.TotalReviews,
			"reviews_per_page": result.PerPage,
		},
		"stats": stats,
	})
}
