package service

import (
	"context"
	"fmt"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// ContactStore is what ContactService needs from the persistence layer.
type ContactStore interface {
	Insert(ctx context.Context, msg *model.ContactMessage) error
}

// SubmitContactInput carries the raw contact form fields. Phone and subject
// are optional.
type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type ContactService struct {
	store ContactStore
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{store: store}
}

// Submit sanitizes the fields, requires non-empty name, email and message,
// and stores the message. No dedup is applied.
func (s *ContactService) Submit(ctx context.Context, in SubmitContactInput) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    validate.Sanitize(in.Name),
		Email:   validate.Sanitize(in.Email),
		Phone:   validate.Sanitize(in.Phone),
		Subject: validate.Sanitize(in.Subject),
		Message: validate.Sanitize(in.Message),
	}

	var errs validate.Errors
	if msg.Name == "" {
		errs.Add("name", "Name is required.")
	}
	if !validate.Email(msg.Email) {
		errs.Add("email", "Valid email is required.")
	}
	if msg.Message == "" {
		errs.Add("message", "Message is required.")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("ContactService.Submit: %w", err)
	}
	return msg, nil
}
