package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
)

// Gorm is the database-backed ProductStore.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) Insert(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *Gorm) Get(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

func (s *Gorm) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Gorm) Replace(ctx context.Context, p *models.Product) error {
	result := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"in_stock":    p.InStock,
			"updated_at":  p.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	// Zero rows means the record vanished between the caller's existence
	// check and this write. The caller decides whether that is a not-found
	// or a conflict.
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

func (s *Gorm) Remove(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
