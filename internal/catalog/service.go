package catalog

import (
	"context"
	"errors"
)

var ErrServiceNotFound = errors.New("service not found")

type CatalogService interface {
	Create(ctx context.Context, req CreateServiceRequest) (*Service, error)
	GetAll(ctx context.Context) ([]Service, error)
	GetByID(ctx context.Context, id int) (*Service, error)
	Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error)
	Delete(ctx context.Context, id int) error
}

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Create(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	return s.repo.Create(ctx, req.Name, req.Type, req.Description, req.PriceCents, req.DurationMinutes)
}

func (s *catalogService) GetAll(ctx context.Context) ([]Service, error) {
	return s.repo.GetAll(ctx)
}

func (s *catalogService) GetByID(ctx context.Context, id int) (*Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id int, req UpdateServiceRequest) (*Service, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, ErrServiceNotFound
	}
	return s.repo.Update(ctx, id, req.Name, req.Type, req.Description, req.PriceCents, req.DurationMinutes)
}

func (s *catalogService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrServiceNotFound
	}
	return s.repo.Delete(ctx, id)
}
