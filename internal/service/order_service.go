package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// OrderStore is what OrderService needs from the persistence layer.
type OrderStore interface {
	Insert(ctx context.Context, order *model.Order) error
}

// PlaceOrderInput carries the raw order form fields. DeliveryDate is
// YYYY-MM-DD and TotalAmount a decimal string; both are validated here.
type PlaceOrderInput struct {
	Name           string
	Email          string
	Phone          string
	EventType      string
	CakeSize       string
	CakeFlavor     string
	DeliveryDate   string
	TotalAmount    string
	SpecialMessage string
}

// OrderService validates and stores cake orders. Every entry point shares
// these rules; there is no laxer form-only path.
type OrderService struct {
	store OrderStore
	now   func() time.Time
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// Place validates the input and inserts a pending order, returning it with
// the generated human-readable reference.
func (s *OrderService) Place(ctx context.Context, in PlaceOrderInput) (*model.Order, error) {
	name := validate.Sanitize(in.Name)
	email := validate.Sanitize(in.Email)
	phone := validate.Sanitize(in.Phone)
	eventType := validate.Sanitize(in.EventType)
	size := validate.Sanitize(in.CakeSize)
	flavor := validate.Sanitize(in.CakeFlavor)
	message := validate.Sanitize(in.SpecialMessage)

	var errs validate.Errors
	if name == "" {
		errs.Add("customerName", "Name is required.")
	}
	if !validate.Email(email) {
		errs.Add("customerEmail", "Valid email is required.")
	}
	if phone == "" {
		errs.Add("customerPhone", "Phone number is required.")
	}
	if eventType == "" {
		errs.Add("eventType", "Event type is required.")
	}
	if size == "" {
		errs.Add("cakeSize", "Cake size is required.")
	}
	if flavor == "" {
		errs.Add("cakeFlavor", "Flavor is required.")
	}

	var deliveryDate time.Time
	if in.DeliveryDate == "" {
		errs.Add("deliveryDate", "Delivery date is required.")
	} else {
		parsed, err := time.Parse("2006-01-02", in.DeliveryDate)
		if err != nil {
			errs.Add("deliveryDate", "Delivery date must be in YYYY-MM-DD format.")
		} else if !parsed.After(s.today()) {
			errs.Add("deliveryDate", "Delivery date must be in the future.")
		} else {
			deliveryDate = parsed
		}
	}

	var amount decimal.Decimal
	if in.TotalAmount == "" {
		errs.Add("totalAmount", "Total amount is required.")
	} else {
		parsed, err := decimal.NewFromString(in.TotalAmount)
		if err != nil {
			errs.Add("totalAmount", "Total amount must be a number.")
		} else if !parsed.IsPositive() {
			errs.Add("totalAmount", "Total amount must be greater than zero.")
		} else {
			amount = parsed
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	order := &model.Order{
		Reference:      s.GenerateReference(),
		CustomerName:   name,
		CustomerEmail:  email,
		CustomerPhone:  phone,
		EventType:      eventType,
		CakeSize:       size,
		CakeFlavor:     flavor,
		DeliveryDate:   deliveryDate,
		TotalAmount:    amount,
		SpecialMessage: message,
		Status:         model.OrderStatusPending,
	}
	if err := s.store.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("OrderService.Place: %w", err)
	}
	return order, nil
}

// GenerateReference produces the customer-facing order identifier: a fixed
// prefix and a zero-padded value derived from the wall clock. Known
// limitation: two orders placed within the same second (or 100000 seconds
// apart) share a reference, so it must not be used as a database key.
func (s *OrderService) GenerateReference() string {
	return fmt.Sprintf("ORD%05d", s.now().Unix()%100000)
}

// today returns midnight of the current day, so a delivery date passes only
// when it is strictly after today.
func (s *OrderService) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
