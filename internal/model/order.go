package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle: pending → confirmed → in_progress →
// completed, with cancelled reachable from any non-terminal state.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is a cake order as submitted by a customer. Reference is the
// human-readable identifier shown back to the customer.
type Order struct {
	ID             int64           `db:"id" json:"id"`
	Reference      string          `db:"order_id" json:"order_id"`
	CustomerName   string          `db:"customer_name" json:"customer_name"`
	CustomerEmail  string          `db:"customer_email" json:"customer_email"`
	CustomerPhone  string          `db:"customer_phone" json:"customer_phone"`
	EventType      string          `db:"event_type" json:"event_type"`
	CakeSize       string          `db:"cake_size" json:"cake_size"`
	CakeFlavor     string          `db:"cake_flavor" json:"cake_flavor"`
	DeliveryDate   time.Time       `db:"delivery_date" json:"delivery_date"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"total_amount"`
	SpecialMessage string          `db:"special_message" json:"special_message"`
	Status         OrderStatus     `db:"status" json:"status"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}
