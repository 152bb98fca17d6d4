package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"hotel-reservation-backend/internal/model"
	"hotel-reservation-backend/internal/parse"
	"hotel-reservation-backend/internal/store"
)

var (
	ErrInvalidName  = errors.New("category name is empty")
	ErrInvalidPrice = errors.New("category base price is negative")
)

// Registry owns room categories and deduplicates them by normalized name.
type Registry struct {
	store store.Store
}

// NewRegistry creates a registry over s. Pass the transaction-scoped store
// when the lookup must commit together with other writes.
func NewRegistry(s store.Store) *Registry {
	return &Registry{store: s}
}

// Resolve returns the stored category whose key matches name, or creates one
// with name and basePrice. An existing category keeps its stored price.
func (r *Registry) Resolve(ctx context.Context, name string, basePrice decimal.Decimal) (*model.RoomCategory, error) {
	display := strings.TrimSpace(name)
	key := parse.CategoryKey(display)
	if key == "" {
		return nil, ErrInvalidName
	}
	if basePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	existing, err := r.store.FindCategoryByKey(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	category := &model.RoomCategory{LookupKey: key, Name: display, BasePrice: basePrice}
	if err := r.store.CreateCategories(ctx, category); err != nil {
		return nil, err
	}
	log.Printf("Created room category %q (id=%d, base price %s)", category.Name, category.ID, category.BasePrice)
	return category, nil
}

// CreateAll inserts categories unconditionally, assigning their ids.
func (r *Registry) CreateAll(ctx context.Context, categories ...*model.RoomCategory) error {
	for _, c := range categories {
		c.Name = strings.TrimSpace(c.Name)
		c.LookupKey = parse.CategoryKey(c.Name)
		if c.LookupKey == "" {
			return ErrInvalidName
		}
	}
	if err := r.store.CreateCategories(ctx, categories...); err != nil {
		return fmt.Errorf("failed to create default categories: %w", err)
	}
	return nil
}

// List returns every category ordered by id.
func (r *Registry) List(ctx context.Context) ([]model.RoomCategory, error) {
	return r.store.ListCategories(ctx)
}

// Count returns the number of stored categories.
func (r *Registry) Count(ctx context.Context) (int64, error) {
	return r.store.CountCategories(ctx)
}
