package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
)

// Seed inserts the demo catalog when the store is empty. It runs once at
// process start and is independent of request handling.
func Seed(ctx context.Context, s ProductStore) error {
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seeds := []models.Product{
		{
			Name:        "Premium Laptop",
			Description: "High-performance laptop with latest processor",
			Price:       1299.99,
			InStock:     true,
			CreatedAt:   base,
		},
		{
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking",
			Price:       45.99,
			InStock:     true,
			CreatedAt:   base.Add(time.Second),
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "RGB mechanical keyboard with blue switches",
			Price:       129.99,
			InStock:     true,
			CreatedAt:   base.Add(2 * time.Second),
		},
	}
	for i := range seeds {
		if err := s.Insert(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	slog.Info("seeded product catalog", "count", len(seeds))
	return nil
}
