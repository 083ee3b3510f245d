// internal/domain/catalog/memory.go
package catalog

import (
	"context"
	"sync"
)

// MemoryCatalog is an in-process catalog holding products in display order
type MemoryCatalog struct {
	mu       sync.RWMutex
	order    []string
	products map[string]Product
}

// NewMemoryCatalog creates a catalog from the given products. Products that
// fail validation are skipped.
func NewMemoryCatalog(products ...Product) *MemoryCatalog {
	m := &MemoryCatalog{
		products: make(map[string]Product, len(products)),
	}
	for i := range products {
		_ = m.UpsertProduct(context.Background(), &products[i])
	}
	return m
}

func (m *MemoryCatalog) GetProductByID(_ context.Context, id string) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prod, ok := m.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return prod.Clone(), nil
}

func (m *MemoryCatalog) ListProducts(_ context.Context) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]Product, 0, len(m.order))
	for _, id := range m.order {
		prod := m.products[id]
		products = append(products, *prod.Clone())
	}
	return products, nil
}

func (m *MemoryCatalog) UpsertProduct(_ context.Context, p *Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[p.ID]; !exists {
		m.order = append(m.order, p.ID)
	}
	m.products[p.ID] = *p.Clone()
	return nil
}

func (m *MemoryCatalog) DeleteProduct(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.products[id]; !exists {
		return ErrProductNotFound
	}
	delete(m.products, id)
	for i, candidate := range m.order {
		if candidate == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
