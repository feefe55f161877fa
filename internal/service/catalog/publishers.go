package catalog

import (
	"context"
	"fmt"

	"library-admin/internal/model"
)

func (s *Service) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	var publishers []model.Publisher
	if err := s.get(ctx, "/publishers", &publishers); err != nil {
		return nil, err
	}
	return publishers, nil
}

func (s *Service) GetPublisher(ctx context.Context, id int64) (model.Publisher, error) {
	var publisher model.Publisher
	if err := s.get(ctx, fmt.Sprintf("/publishers/%d", id), &publisher); err != nil {
		return model.Publisher{}, err
	}
	return publisher, nil
}

func (s *Service) CreatePublisher(ctx context.Context, payload model.PublisherPayload) (model.Publisher, error) {
	var publisher model.Publisher
	if err := s.post(ctx, "/publishers", payload, &publisher); err != nil {
		return model.Publisher{}, err
	}
	return publisher, nil
}

func (s *Service) UpdatePublisher(ctx context.Context, id int64, payload model.PublisherPayload) (model.Publisher, error) {
	var publisher model.Publisher
	if err := s.put(ctx, fmt.Sprintf("/publishers/%d", id), payload, &publisher); err != nil {
		return model.Publisher{}, err
	}
	return publisher, nil
}

func (s *Service) DeletePublisher(ctx context.Context, id int64) error {
	return s.delete(ctx, fmt.Sprintf("/publishers/%d", id))
}
