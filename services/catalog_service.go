package services

import (
	"fmt"

	"github.com/yuyuan12138/food-cal/models"
)

// CatalogService serves the static food catalog. The slice is loaded once
// at construction and treated as immutable; every accessor returns copies
// or read-only views in catalog order.
type CatalogService struct {
	foods []models.FoodRecord
	byID  map[string]models.FoodRecord
}

func NewCatalogService(foods []models.FoodRecord) (*CatalogService, error) {
	byID := make(map[string]models.FoodRecord, len(foods))
	for _, f := range foods {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate food id %q", f.ID)
		}
		byID[f.ID] = f
	}
	return &CatalogService{foods: foods, byID: byID}, nil
}

// All returns the catalog in load order.
func (s *CatalogService) All() []models.FoodRecord {
	return s.foods
}

func (s *CatalogService) Get(id string) (models.FoodRecord, error) {
	f, ok := s.byID[id]
	if !ok {
		return models.FoodRecord{}, fmt.Errorf("food %q: %w", id, ErrNotFound)
	}
	return f, nil
}

// Popular returns the foods tagged "popular", shown before the user has
// typed a query.
func (s *CatalogService) Popular() []models.FoodRecord {
	var out []models.FoodRecord
	for _, f := range s.foods {
		for _, t := range f.Tags {
			if t == "popular" {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

func (s *CatalogService) Len() int { return len(s.foods) }
