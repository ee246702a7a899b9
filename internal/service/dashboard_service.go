package service

import (
	"go-invsys/internal/repository"
)

type DashboardService interface {
	GetStats() (*repository.DashboardStats, error)
}

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
}

func NewDashboardService(dashboardRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

func (s *dashboardService) GetStats() (*repository.DashboardStats, error) {
	return s.dashboardRepo.GetStats()
}
