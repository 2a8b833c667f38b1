package postgres

import (
	"context"
	"fmt"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepo implements the storage.StatsRepository interface using PostgreSQL.
type StatsRepo struct {
	db Querier
}

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{db: db}
}

var _ storage.StatsRepository = (*StatsRepo)(nil)

// AdminStats computes all six counters in a single round trip.
func (r *StatsRepo) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'student'),
			(SELECT COUNT(*) FROM users WHERE role = 'recruiter'),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM applications),
			(SELECT COUNT(*) FROM recruiter_profiles WHERE approved = FALSE),
			(SELECT COUNT(*) FROM jobs WHERE status = 'active')
	`
	var s models.AdminStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalStudents,
		&s.TotalRecruiters,
		&s.TotalJobs,
		&s.TotalApplications,
		&s.PendingRecruiters,
		&s.ActiveJobs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute admin stats: %w", err)
	}
	return &s, nil
}
