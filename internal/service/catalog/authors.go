package catalog

import (
	"context"
	"fmt"

	"library-admin/internal/model"
)

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := s.get(ctx, "/authors", &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	var author model.Author
	if err := s.get(ctx, fmt.Sprintf("/authors/%d", id), &author); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (s *Service) CreateAuthor(ctx context.Context, payload model.AuthorPayload) (model.Author, error) {
	var author model.Author
	if err := s.post(ctx, "/authors", payload, &author); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, payload model.AuthorPayload) (model.Author, error) {
	var author model.Author
	if err := s.put(ctx, fmt.Sprintf("/authors/%d", id), payload, &author); err != nil {
		return model.Author{}, err
	}
	return author, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	return s.delete(ctx, fmt.Sprintf("/authors/%d", id))
}
