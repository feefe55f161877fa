package catalog

import (
	"context"
	"fmt"

	"library-admin/internal/model"
)

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := s.get(ctx, "/books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook returns a single book with its nested author, publisher and
// categories populated.
func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	if err := s.get(ctx, fmt.Sprintf("/books/%d", id), &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) CreateBook(ctx context.Context, payload model.BookPayload) (model.Book, error) {
	var book model.Book
	if err := s.post(ctx, "/books", payload, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int64, payload model.BookPayload) (model.Book, error) {
	var book model.Book
	if err := s.put(ctx, fmt.Sprintf("/books/%d", id), payload, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.delete(ctx, fmt.Sprintf("/books/%d", id))
}
