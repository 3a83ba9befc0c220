package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/store"
)

// Actions broadcast to notification listeners.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ErrIDMismatch is returned when the path id and payload id disagree.
var ErrIDMismatch = errors.New("id mismatch")

// ValidationError carries the full set of field violations for a payload.
type ValidationError struct {
	Violations []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d violation(s)", len(e.Violations))
}

// Notifier receives product lifecycle events. Delivery is best-effort and
// must never block the caller.
type Notifier interface {
	ProductChanged(action string, p models.Product)
}

// ProductService implements the product CRUD operations on top of a store.
type ProductService struct {
	store    store.ProductStore
	notifier Notifier
}

func NewProductService(st store.ProductStore, n Notifier) *ProductService {
	return &ProductService{store: st, notifier: n}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.store.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uint) (models.Product, error) {
	return s.store.Get(ctx, id)
}

func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Create validates the payload, stamps CreatedAt and persists the product.
// The stored record, including its assigned id, is returned.
func (s *ProductService) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	if violations := models.ValidateProduct(in); len(violations) > 0 {
		return models.Product{}, &ValidationError{Violations: violations}
	}
	p := in.ToProduct()
	p.ID = 0
	p.CreatedAt = time.Now().UTC()
	if err := s.store.Insert(ctx, &p); err != nil {
		return models.Product{}, err
	}
	slog.Info("product created", "id", p.ID)
	s.notify(ActionCreated, p)
	return p, nil
}

// Replace overwrites the mutable fields of an existing product and stamps
// UpdatedAt. A write that races with a concurrent delete is re-checked:
// if the record is gone the caller gets not-found, otherwise the conflict
// is surfaced as-is.
func (s *ProductService) Replace(ctx context.Context, id uint, in models.ProductInput) (models.Product, error) {
	if in.ID != id {
		return models.Product{}, ErrIDMismatch
	}
	if violations := models.ValidateProduct(in); len(violations) > 0 {
		return models.Product{}, &ValidationError{Violations: violations}
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	next := in.ToProduct()
	existing.Name = next.Name
	existing.Description = next.Description
	existing.Price = next.Price
	existing.InStock = next.InStock
	now := time.Now().UTC()
	existing.UpdatedAt = &now

	if err := s.store.Replace(ctx, &existing); err != nil {
		if errors.Is(err, store.ErrConflict) {
			if _, gerr := s.store.Get(ctx, id); errors.Is(gerr, store.ErrNotFound) {
				return models.Product{}, store.ErrNotFound
			}
			slog.Error("concurrency conflict updating product", "id", id)
			return models.Product{}, store.ErrConflict
		}
		return models.Product{}, err
	}
	slog.Info("product updated", "id", id)
	s.notify(ActionUpdated, existing)
	return existing, nil
}

// Delete removes a product permanently.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, id); err != nil {
		return err
	}
	slog.Info("product deleted", "id", id)
	s.notify(ActionDeleted, p)
	return nil
}

func (s *ProductService) notify(action string, p models.Product) {
	if s.notifier == nil {
		return
	}
	s.notifier.ProductChanged(action, p)
}
