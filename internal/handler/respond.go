package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/service"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

const (
	duplicateReviewMessage = "You have already submitted a review recently. Please wait 24 hours before submitting another review."
	genericFailureMessage  = "Sorry, something went wrong. Please try again."
)

func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// respondError maps the error taxonomy onto HTTP responses: field errors
// come back verbatim with 400, duplicate submissions with 409, and anything
// else is logged in full while the client sees only generic text.
func respondError(c *gin.Context, err error) {
	var fieldErrs validate.Errors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: fieldErrs.Error(),
			Errors:  fieldErrs,
		})
	case errors.Is(err, service.ErrDuplicateReview):
		c.JSON(http.StatusConflict, envelope{Success: false, Message: duplicateReviewMessage})
	default:
		log.Printf("handler: request failed: %v", err)
		c.JSON(http.StatusInternalServerError, envelope{Success: false, Message: genericFailureMessage})
	}
}
