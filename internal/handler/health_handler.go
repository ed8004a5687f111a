package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
)

// HealthHandler reports whether the database responds, with basic table
// counts for a quick eyeball check.
type HealthHandler struct {
	Exec *db.Executor
}

// RegisterRoutes registers GET /api/health.
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Check)
}

func (h *HealthHandler) Check(c *gin.Context) {
	const stmt = `
		SELECT
			(SELECT COUNT(*) FROM reviews) AS reviews,
			(SELECT COUNT(*) FROM orders) AS orders,
			(SELECT COUNT(*) FROM categories) AS categories
	`
	rs, err := h.Exec.Query(c.Request.Context(), stmt)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, envelope{
			Success: false,
			Message: "Database connection failed.",
		})
		return
	}

	var details any
	if len(rs.Rows) > 0 {
		details = rs.Rows[0]
	}
	respondOK(c, "Database connection successful.", details)
}
