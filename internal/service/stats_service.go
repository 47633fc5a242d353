package service

import (
	"context"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
)

// StatsService feeds the admin dashboard.
type StatsService struct {
	stats repository.StatsRepository
}

// NewStatsService constructs the service.
func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// Summary returns store wide totals.
func (s *StatsService) Summary(ctx context.Context) (*domain.AdminStats, error) {
	return s.stats.Summary(ctx)
}

// SalesByCategory returns quantity and revenue per menu category.
func (s *StatsService) SalesByCategory(ctx context.Context) ([]domain.CategorySales, error) {
	return s.stats.SalesByCategory(ctx)
}
