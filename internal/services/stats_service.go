package services

import (
	"context"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"
)

type statsService struct {
	repo storage.StatsRepository
}

// NewStatsService creates a new instance of StatsService.
func NewStatsService(repo storage.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	stats, err := s.repo.AdminStats(ctx)
	if err != nil {
		return nil, mapRepoError(err, "computing admin stats")
	}
	return stats, nil
}
