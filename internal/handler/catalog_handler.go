package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
)

// CatalogReader is the read-only catalog surface.
type CatalogReader interface {
	ActiveCategories(ctx context.Context) ([]model.Category, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
}

type CatalogHandler struct {
	repo CatalogReader
}

func NewCatalogHandler(repo CatalogReader) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// RegisterRoutes registers:
//
//	GET /api/categories
//	GET /api/categories/:id/products
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.GET("/categories/:id/products", h.ListProducts)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.repo.ActiveCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	respondOK(c, "Categories retrieved successfully.", gin.H{"categories": categories})
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Message: "Invalid category id."})
		return
	}

	products, err := h.repo.ProductsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	respondOK(c, "Products retrieved successfully.", gin.H{"products": products})
}
