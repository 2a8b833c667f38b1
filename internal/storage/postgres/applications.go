package postgres

import (
	"context"
	"fmt"
	"log"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, job_id, student_id, cover_letter, resume_url, status, created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo with the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create inserts a pending application. A second application for the same
// (job, student) pair violates the unique index and comes back as storage.ErrConflict.
func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, student_id, cover_letter, resume_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + applicationColumns

	rows, err := r.db.Query(ctx, query, uuid.New(), a.JobID, a.StudentID, a.CoverLetter, a.ResumeURL, models.ApplicationStatusPending)
	if err != nil {
		return nil, mapWriteError(err, "create application")
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error creating application (job %s, student %s): %v", a.JobID, a.StudentID, err)
		return nil, mapWriteError(err, "create application")
	}

	log.Printf("Application created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return r.getOne(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
}

// GetByJobAndStudent returns the application of studentID to jobID, or storage.ErrNotFound.
func (r *ApplicationRepo) GetByJobAndStudent(ctx context.Context, jobID, studentID uuid.UUID) (*models.Application, error) {
	return r.getOne(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND student_id = $2`, jobID, studentID)
}

// ListByStudent returns the student's applications, newest first.
func (r *ApplicationRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE student_id = $1 ORDER BY created_at DESC`, studentID)
}

// ListByJob returns the applications to a job, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at DESC`, jobID)
}

// UpdateStatus overwrites the review status.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	return r.getOne(ctx, `UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING `+applicationColumns, id, status)
}

func (r *ApplicationRepo) getOne(ctx context.Context, query string, args ...any) (*models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query application: %w", err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		return nil, mapReadError(err, "scan application")
	}
	return &a, nil
}

func (r *ApplicationRepo) list(ctx context.Context, query string, args ...any) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applications: %v", err)
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		return nil, fmt.Errorf("failed to scan applications: %w", err)
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}
