package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/repository"
)

// PhotoHandler uploads and serves category images from GridFS.
type PhotoHandler struct {
	Photos  *repository.PhotoRepository
	Catalog *repository.CatalogRepository
}

// RegisterRoutes registers:
//
//	POST /api/categories/:id/photo
//	GET  /api/categories/:id/photo
func (h *PhotoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/categories/:id/photo", h.UploadPhoto)
	rg.GET("/categories/:id/photo", h.ServePhoto)
}

func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Message: "Invalid category id."})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Message: "A file is required."})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	// uuid keeps stored names unique across re-uploads of the same file.
	filename := fmt.Sprintf("category_%d_%s_%s", categoryID, uuid.New().String(), fileHeader.Filename)
	fileID, err := h.Photos.Upload(file, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Catalog.UpdateCategoryPhoto(c.Request.Context(), categoryID, fileID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Photo uploaded successfully.", gin.H{"photo_id": fileID})
}

func (h *PhotoHandler) ServePhoto(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Message: "Invalid category id."})
		return
	}

	category, err := h.Catalog.CategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		c.JSON(http.StatusNotFound, envelope{Success: false, Message: "Category not found."})
		return
	}
	if category.PhotoFileID == "" {
		c.JSON(http.StatusNotFound, envelope{Success: false, Message: "No photo for this category."})
		return
	}

	data, err := h.Photos.Download(category.PhotoFileID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}
