package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"
	"careerconnect/internal/transport/dto"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var jobColumnList = []string{
	"id", "recruiter_id", "title", "company", "location", "type", "category",
	"salary_min", "salary_max", "description", "requirements", "status",
	"applicants_count", "created_at", "updated_at",
}

var jobColumns = strings.Join(jobColumnList, ", ")

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo with the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting with the defaults for any omitted optional field.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	status := models.JobStatus(req.Status)
	if status == "" {
		status = models.JobStatusActive
	}

	query := `
		INSERT INTO jobs (id, recruiter_id, title, company, location, type, category, salary_min, salary_max,
			description, requirements, status, applicants_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 0, NOW(), NOW())
		RETURNING ` + jobColumns

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.RecruiterID,
		req.Title,
		req.Company,
		req.Location,
		req.Type,
		req.Category,
		req.SalaryMin,
		req.SalaryMax,
		req.Description,
		nonNilStrings(req.Requirements),
		status,
	)
	if err != nil {
		return nil, mapWriteError(err, "create job")
	}
	job, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error creating job for recruiter %s: %v", req.RecruiterID, err)
		return nil, mapWriteError(err, "create job")
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return &job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	return r.getOne(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
}

// ListActive returns active jobs matching the filter, newest first. Search matches
// title or company, location is a substring match, both case-insensitive.
// Category and type must match exactly.
func (r *JobRepo) ListActive(ctx context.Context, filter *dto.ListJobsRequest) ([]models.Job, error) {
	query, args := buildActiveJobsQuery(filter)
	return r.list(ctx, "active jobs", query, args...)
}

func buildActiveJobsQuery(filter *dto.ListJobsRequest) (string, []any) {
	b := builder()
	sel := b.Select(jobColumnList...).
		From(b.Table("jobs")).
		Where(entsql.EQ("status", string(models.JobStatusActive)))

	if filter != nil {
		if filter.Search != "" {
			sel.Where(entsql.Or(
				entsql.ContainsFold("title", filter.Search),
				entsql.ContainsFold("company", filter.Search),
			))
		}
		if filter.Location != "" {
			sel.Where(entsql.ContainsFold("location", filter.Location))
		}
		if filter.Category != "" {
			sel.Where(entsql.EQ("category", filter.Category))
		}
		if filter.Type != "" {
			sel.Where(entsql.EQ("type", filter.Type))
		}
	}

	return sel.OrderBy(entsql.Desc("created_at")).Query()
}

// ListByRecruiter returns every job owned by the recruiter regardless of status, newest first.
func (r *JobRepo) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, fmt.Sprintf("jobs of recruiter %s", recruiterID), query, recruiterID)
}

// ListByIDs loads the given jobs keyed by id. Missing ids are simply absent.
func (r *JobRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Job, error) {
	out := make(map[uuid.UUID]models.Job, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	jobs, err := r.list(ctx, "jobs by id", `SELECT `+jobColumns+` FROM jobs WHERE id = ANY($1::uuid[])`, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		out[j.ID] = j
	}
	return out, nil
}

// Update applies the non-nil fields of req. Ownership is checked by the caller.
func (r *JobRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	var requirements []string
	if req.Requirements != nil {
		requirements = nonNilStrings(*req.Requirements)
	}
	query := `
		UPDATE jobs SET
			title        = COALESCE($2, title),
			company      = COALESCE($3, company),
			location     = COALESCE($4, location),
			type         = COALESCE($5, type),
			category     = COALESCE($6, category),
			salary_min   = COALESCE($7, salary_min),
			salary_max   = COALESCE($8, salary_max),
			description  = COALESCE($9, description),
			requirements = COALESCE($10, requirements),
			status       = COALESCE($11, status),
			updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + jobColumns

	return r.getOne(ctx, query, id,
		req.Title, req.Company, req.Location, req.Type, req.Category,
		req.SalaryMin, req.SalaryMax, req.Description, requirements, req.Status,
	)
}

// Delete removes a job. Its applications go with it through the foreign key cascade.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	log.Printf("Job deleted successfully with ID: %s", id)
	return nil
}

// IncrementApplicants bumps the denormalised applicant counter by one.
func (r *JobRepo) IncrementApplicants(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE jobs SET applicants_count = applicants_count + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment applicants for job %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *JobRepo) getOne(ctx context.Context, query string, args ...any) (*models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query job: %w", err)
	}
	job, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		return nil, mapReadError(err, "scan job")
	}
	return &job, nil
}

func (r *JobRepo) list(ctx context.Context, what, query string, args ...any) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying %s: %v", what, err)
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning %s: %v", what, err)
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}
	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}
	return jobs, nil
}
