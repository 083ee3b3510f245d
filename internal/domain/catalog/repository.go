// internal/domain/catalog/repository.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the postgres-backed catalog
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// GetProductByID retrieves a single product
func (r *Repository) GetProductByID(ctx context.Context, id string) (*Product, error) {
	var prod Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&prod).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &prod, nil
}

// ListProducts retrieves the whole collection in display order
func (r *Repository) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpsertProduct creates the product or replaces every column of an existing one
func (r *Repository) UpsertProduct(ctx context.Context, p *Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// DeleteProduct soft-deletes a product
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// CountAll returns the number of products ever stored, soft-deleted included
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
