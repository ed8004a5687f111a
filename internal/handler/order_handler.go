package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/service"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/validate"
)

// OrderService is the service surface the order endpoints depend on.
type OrderService interface {
	Place(ctx context.Context, in service.PlaceOrderInput) (*model.Order, error)
}

// OrderReader provides the order lookups that bypass the service layer.
type OrderReader interface {
	FindByReference(ctx context.Context, reference string) (*model.Order, error)
	Summary(ctx context.Context) (*db.ResultSet, error)
}

// placeOrderRequest matches the order form fields. totalAmount arrives as a
// string and is parsed as a decimal by the service.
type placeOrderRequest struct {
	CustomerName   string `json:"customerName" form:"customerName"`
	CustomerEmail  string `json:"customerEmail" form:"customerEmail"`
	CustomerPhone  string `json:"customerPhone" form:"customerPhone"`
	EventType      string `json:"eventType" form:"eventType"`
	CakeSize       string `json:"cakeSize" form:"cakeSize"`
	CakeFlavor     string `json:"cakeFlavor" form:"cakeFlavor"`
	DeliveryDate   string `json:"deliveryDate" form:"deliveryDate"`
	TotalAmount    string `json:"totalAmount" form:"totalAmount"`
	SpecialMessage string `json:"specialMessage" form:"specialMessage"`
}

type OrderHandler struct {
	svc    OrderService
	orders OrderReader
}

func NewOrderHandler(svc OrderService, orders OrderReader) *OrderHandler {
	return &OrderHandler{svc: svc, orders: orders}
}

// RegisterRoutes registers:
//
//	POST /api/orders
//	GET  /api/orders/summary
//	GET  /api/orders/:reference
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.PlaceOrder)
	rg.GET("/orders/summary", h.OrderSummary)
	rg.GET("/orders/:reference", h.OrderByReference)
}

// PlaceOrder handles POST /api/orders.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		var errs validate.Errors
		errs.Add("body", "Invalid request body.")
		respondError(c, errs)
		return
	}

	order, err := h.svc.Place(c.Request.Context(), service.PlaceOrderInput{
		Name:           req.CustomerName,
		Email:          req.CustomerEmail,
		Phone:          req.CustomerPhone,
		EventType:      req.EventType,
		CakeSize:       req.CakeSize,
		CakeFlavor:     req.CakeFlavor,
		DeliveryDate:   req.DeliveryDate,
		TotalAmount:    req.TotalAmount,
		SpecialMessage: req.SpecialMessage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Thank you! Your order has been submitted successfully. We will contact you soon.", gin.H{
		"order_id":      order.Reference,
		"status":        order.Status,
		"delivery_date": order.DeliveryDate.Format("2006-01-02"),
		"total_amount":  order.TotalAmount.StringFixed(2),
	})
}

// OrderByReference handles GET /api/orders/:reference, the customer-facing
// status check. References repeat over time, so this returns the newest
// matching order.
func (h *OrderHandler) OrderByReference(c *gin.Context) {
	order, err := h.orders.FindByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		c.JSON(http.StatusNotFound, envelope{Success: false, Message: "Order not found."})
		return
	}
	respondOK(c, "Order retrieved successfully.", gin.H{
		"order_id":      order.Reference,
		"customer_name": order.CustomerName,
		"event_type":    order.EventType,
		"cake_size":     order.CakeSize,
		"cake_flavor":   order.CakeFlavor,
		"delivery_date": order.DeliveryDate.Format("2006-01-02"),
		"total_amount":  order.TotalAmount.StringFixed(2),
		"status":        order.Status,
	})
}

// OrderSummary handles GET /api/orders/summary.
func (h *OrderHandler) OrderSummary(c *gin.Context) {
	rs, err := h.orders.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Order summary retrieved successfully.", gin.H{
		"columns": rs.Columns,
		"rows":    rs.Rows,
	})
}
