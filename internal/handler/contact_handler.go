package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/service"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// ContactService is the service surface the contact endpoint depends on.
type ContactService interface {
	Submit(ctx context.Context, in service.SubmitContactInput) (*model.ContactMessage, error)
}

type submitContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

type ContactHandler struct {
	svc ContactService
}

func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// RegisterRoutes registers POST /api/contact.
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitMessage)
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBind(&req); err != nil {
		var errs validate.Errors
		errs.Add("body", "Invalid request body.")
		respondError(c, errs)
		return
	}

	msg, err := h.svc.Submit(c.Request.Context(), service.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Thank you for reaching out! We will get back to you soon.", gin.H{
		"id":   msg.ID,
		"name": msg.Name,
	})
}
