package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
)

type OrderRepository struct {
	exec *db.Executor
}

func NewOrderRepository(exec *db.Executor) *OrderRepository {
	return &OrderRepository{exec: exec}
}

// Insert saves a new order and fills in its generated id and created_at.
func (r *OrderRepository) Insert(ctx context.Context, order *model.Order) error {
	const stmt = `
		INSERT INTO orders
			(order_id, customer_name, customer_email, customer_phone,
			 event_type, cake_size, cake_flavor, delivery_date,
			 total_amount, special_message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	type inserted struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	var row inserted
	err := r.exec.Get(ctx, &row, stmt,
		db.String(order.Reference),
		db.String(order.CustomerName),
		db.String(order.CustomerEmail),
		db.String(order.CustomerPhone),
		db.String(order.EventType),
		db.String(order.CakeSize),
		db.String(order.CakeFlavor),
		db.String(order.DeliveryDate.Format("2006-01-02")),
		db.String(order.TotalAmount.String()),
		db.String(order.SpecialMessage),
		db.String(string(order.Status)),
	)
	if err != nil {
		return fmt.Errorf("OrderRepository.Insert: %w", err)
	}
	order.ID = row.ID
	order.CreatedAt = row.CreatedAt
	return nil
}

// FindByReference returns the most recent order carrying the given
// human-readable reference. References are not unique over long spans, so
// newest wins.
func (r *OrderRepository) FindByReference(ctx context.Context, reference string) (*model.Order, error) {
	const stmt = `
		SELECT id, order_id, customer_name, customer_email, customer_phone,
		       event_type, cake_size, cake_flavor, delivery_date,
		       total_amount, special_message, status, created_at
		FROM orders
		WHERE order_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var order model.Order
	if err := r.exec.Get(ctx, &order, stmt, db.String(reference)); err != nil {
		return nil, fmt.Errorf("OrderRepository.FindByReference: %w", err)
	}
	return &order, nil
}

// Summary returns the per-status order counts and revenue as a generic
// result set, mirroring the back-office summary view.
func (r *OrderRepository) Summary(ctx context.Context) (*db.ResultSet, error) {
	const stmt = `
		SELECT status,
		       COUNT(*) AS order_count,
		       COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM orders
		GROUP BY status
		ORDER BY status
	`
	rs, err := r.exec.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("OrderRepository.Summary: %w", err)
	}
	return rs, nil
}
