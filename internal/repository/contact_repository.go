package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
)

type ContactRepository struct {
	exec *db.Executor
}

func NewContactRepository(exec *db.Executor) *ContactRepository {
	return &ContactRepository{exec: exec}
}

// Insert saves a contact message and fills in its generated id and
// created_at.
func (r *ContactRepository) Insert(ctx context.Context, msg *model.ContactMessage) error {
	const stmt = `
		INSERT INTO contact_messages (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	type inserted struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	var row inserted
	err := r.exec.Get(ctx, &row, stmt,
		db.String(msg.Name),
		db.String(msg.Email),
		db.String(msg.Phone),
		db.String(msg.Subject),
		db.String(msg.Message),
	)
	if err != nil {
		return fmt.Errorf("ContactRepository.Insert: %w", err)
	}
	msg.ID = row.ID
	msg.CreatedAt = row.CreatedAt
	return nil
}
