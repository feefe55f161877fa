package catalog

import (
	"context"
	"fmt"

	"library-admin/internal/model"
)

// Borrowings live under /borrows on the remote API.

func (s *Service) ListBorrowings(ctx context.Context) ([]model.Borrowing, error) {
	var borrowings []model.Borrowing
	if err := s.get(ctx, "/borrows", &borrowings); err != nil {
		return nil, err
	}
	return borrowings, nil
}

func (s *Service) GetBorrowing(ctx context.Context, id int64) (model.Borrowing, error) {
	var borrowing model.Borrowing
	if err := s.get(ctx, fmt.Sprintf("/borrows/%d", id), &borrowing); err != nil {
		return model.Borrowing{}, err
	}
	return borrowing, nil
}

func (s *Service) CreateBorrowing(ctx context.Context, payload model.CreateBorrowingPayload) (model.Borrowing, error) {
	var borrowing model.Borrowing
	if err := s.post(ctx, "/borrows", payload, &borrowing); err != nil {
		return model.Borrowing{}, err
	}
	return borrowing, nil
}

func (s *Service) UpdateBorrowing(ctx context.Context, id int64, payload model.UpdateBorrowingPayload) (model.Borrowing, error) {
	var borrowing model.Borrowing
	if err := s.put(ctx, fmt.Sprintf("/borrows/%d", id), payload, &borrowing); err != nil {
		return model.Borrowing{}, err
	}
	return borrowing, nil
}

func (s *Service) DeleteBorrowing(ctx context.Context, id int64) error {
	return s.delete(ctx, fmt.Sprintf("/borrows/%d", id))
}
