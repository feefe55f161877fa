package catalog

import (
	"context"
	"fmt"

	"library-admin/internal/model"
)

func (s *Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	var category model.Category
	if err := s.get(ctx, fmt.Sprintf("/categories/%d", id), &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *Service) CreateCategory(ctx context.Context, payload model.CategoryPayload) (model.Category, error) {
	var category model.Category
	if err := s.post(ctx, "/categories", payload, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, payload model.CategoryPayload) (model.Category, error) {
	var category model.Category
	if err := s.put(ctx, fmt.Sprintf("/categories/%d", id), payload, &category); err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
