package store

import (
	"context"
	"errors"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
)

var (
	// ErrNotFound is returned when no product exists with the requested id.
	ErrNotFound = errors.New("product not found")
	// ErrConflict is returned when a write touched zero rows, meaning the
	// record changed underneath us (typically a concurrent delete).
	ErrConflict = errors.New("concurrent modification detected")
)

// ProductStore is the persistence boundary for products.
type ProductStore interface {
	// Insert persists a new product and assigns its id.
	Insert(ctx context.Context, p *models.Product) error
	Get(ctx context.Context, id uint) (models.Product, error)
	// List returns all products, newest first (created_at desc, id desc).
	List(ctx context.Context) ([]models.Product, error)
	// Replace overwrites the mutable fields of the row matching p.ID.
	Replace(ctx context.Context, p *models.Product) error
	Remove(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
