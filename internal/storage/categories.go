package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/onlyinellada/backend/internal/models"
)

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories ordered by name.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := dbFrom(ctx, s.db).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryStore) BySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := dbFrom(ctx, s.db).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &category, nil
}

func (s *CategoryStore) ByID(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := dbFrom(ctx, s.db).First(&category, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &category, nil
}
