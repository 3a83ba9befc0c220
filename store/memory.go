package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/models"
)

// Memory is an in-memory ProductStore. It backs unit tests and the
// DB_DRIVER=memory mode for running the API without Postgres.
type Memory struct {
	mu    sync.RWMutex
	seq   uint
	items map[uint]models.Product
}

func NewMemory() *Memory {
	return &Memory{items: make(map[uint]models.Product)}
}

func (s *Memory) Insert(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	p.ID = s.seq
	s.items[p.ID] = *p
	return nil
}

func (s *Memory) Get(ctx context.Context, id uint) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Memory) List(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, 0, len(s.items))
	for _, p := range s.items {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})
	return products, nil
}

func (s *Memory) Replace(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[p.ID]
	if !ok {
		return ErrNotFound
	}
	cur.Name = p.Name
	cur.Description = p.Description
	cur.Price = p.Price
	cur.InStock = p.InStock
	cur.UpdatedAt = p.UpdatedAt
	s.items[p.ID] = cur
	return nil
}

func (s *Memory) Remove(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *Memory) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}
