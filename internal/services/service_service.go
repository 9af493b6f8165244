package services

import (
	"context"

	"promasterBack/internal/models"
	"promasterBack/internal/repositories"
)

type ServiceService struct {
	ServiceRepo *repositories.ServiceRepository
}

func (s *ServiceService) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	return s.ServiceRepo.CreateService(ctx, service)
}

func (s *ServiceService) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	return s.ServiceRepo.GetServiceByID(ctx, id)
}

func (s *ServiceService) GetServices(ctx context.Context, page, perPage int) (models.ServiceListResponse, error) {
	offset := (page - 1) * perPage
	services, total, err := s.ServiceRepo.GetServices(ctx, perPage, offset)
	if err != nil {
		return models.ServiceListResponse{}, err
	}
	return models.ServiceListResponse{
		Services:   services,
		Pagination: models.NewPagination(total, page, perPage),
	}, nil
}

func (s *ServiceService) UpdateService(ctx context.Context, service models.Service) error {
	return s.ServiceRepo.UpdateService(ctx, service)
}

func (s *ServiceService) DeleteService(ctx context.Context, id int) error {
	return s.ServiceRepo.DeleteService(ctx, id)
}
