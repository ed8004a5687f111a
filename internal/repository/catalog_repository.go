package repository

import (
	"context"
	"fmt"

	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/db"
	"github.com/AkalankaJayasinghe/cake-ordering-system/internal/model"
)

type CatalogRepository struct {
	exec *db.Executor
}

func NewCatalogRepository(exec *db.Executor) *CatalogRepository {
	return &CatalogRepository{exec: exec}
}

// ActiveCategories returns the visible categories in display order.
func (r *CatalogRepository) ActiveCategories(ctx context.Context) ([]model.Category, error) {
	const stmt = `
		SELECT id, name, description, photo_file_id, is_active, sort_order, created_at
		FROM categories
		WHERE is_active = TRUE
		ORDER BY sort_order ASC
	`
	var categories []model.Category
	if err := r.exec.Select(ctx, &categories, stmt); err != nil {
		return nil, fmt.Errorf("CatalogRepository.ActiveCategories: %w", err)
	}
	return categories, nil
}

// CategoryByID returns one category regardless of active flag.
func (r *CatalogRepository) CategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	const stmt = `
		SELECT id, name, description, photo_file_id, is_active, sort_order, created_at
		FROM categories
		WHERE id = $1
	`
	var category model.Category
	if err := r.exec.Get(ctx, &category, stmt, db.Integer(id)); err != nil {
		return nil, fmt.Errorf("CatalogRepository.CategoryByID: %w", err)
	}
	return &category, nil
}

// ProductsByCategory returns the active products under a category.
func (r *CatalogRepository) ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	const stmt = `
		SELECT id, category_id, name, description, price, is_active, sort_order, created_at
		FROM products
		WHERE category_id = $1 AND is_active = TRUE
		ORDER BY sort_order ASC
	`
	var products []model.Product
	if err := r.exec.Select(ctx, &products, stmt, db.Integer(categoryID)); err != nil {
		return nil, fmt.Errorf("CatalogRepository.ProductsByCategory: %w", err)
	}
	return products, nil
}

// UpdateCategoryPhoto records the GridFS file id for a category image.
func (r *CatalogRepository) UpdateCategoryPhoto(ctx context.Context, categoryID int64, fileID string) error {
	const stmt = `UPDATE categories SET photo_file_id = $1 WHERE id = $2`
	affected, err := r.exec.Exec(ctx, stmt, db.String(fileID), db.Integer(categoryID))
	if err != nil {
		return fmt.Errorf("CatalogRepository.UpdateCategoryPhoto: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("CatalogRepository.UpdateCategoryPhoto: category %d not found", categoryID)
	}
	return nil
}
