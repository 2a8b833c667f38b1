package postgres

import (
	"context"
	"fmt"
	"log"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"
	"careerconnect/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	studentProfileColumns   = `id, user_id, university, degree, graduation_year, skills, resume_url, created_at, updated_at`
	recruiterProfileColumns = `id, user_id, company, company_description, website, logo_url, approved, created_at, updated_at`
)

// ProfileRepo implements the storage.ProfileRepository interface using PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// WithTx creates a new ProfileRepo with the transaction.
func (r *ProfileRepo) WithTx(tx pgx.Tx) storage.ProfileRepository {
	return &ProfileRepo{db: tx}
}

var _ storage.ProfileRepository = (*ProfileRepo)(nil)

// CreateStudent inserts the student profile for a freshly registered user.
func (r *ProfileRepo) CreateStudent(ctx context.Context, p *models.StudentProfile) (*models.StudentProfile, error) {
	query := `
		INSERT INTO student_profiles (id, user_id, university, degree, graduation_year, skills, resume_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + studentProfileColumns

	rows, err := r.db.Query(ctx, query, uuid.New(), p.UserID, p.University, p.Degree, p.GraduationYear, nonNilStrings(p.Skills), p.ResumeURL)
	if err != nil {
		return nil, mapWriteError(err, "create student profile")
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.StudentProfile])
	if err != nil {
		log.Printf("Error creating student profile for user %s: %v", p.UserID, err)
		return nil, mapWriteError(err, "create student profile")
	}
	return &created, nil
}

// CreateRecruiter inserts the recruiter profile for a freshly registered user. New
// recruiters always start unapproved.
func (r *ProfileRepo) CreateRecruiter(ctx context.Context, p *models.RecruiterProfile) (*models.RecruiterProfile, error) {
	query := `
		INSERT INTO recruiter_profiles (id, user_id, company, company_description, website, logo_url, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		RETURNING ` + recruiterProfileColumns

	rows, err := r.db.Query(ctx, query, uuid.New(), p.UserID, p.Company, p.CompanyDescription, p.Website, p.LogoURL)
	if err != nil {
		return nil, mapWriteError(err, "create recruiter profile")
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.RecruiterProfile])
	if err != nil {
		log.Printf("Error creating recruiter profile for user %s: %v", p.UserID, err)
		return nil, mapWriteError(err, "create recruiter profile")
	}
	return &created, nil
}

// GetStudent retrieves the student profile owned by userID.
func (r *ProfileRepo) GetStudent(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	return r.oneStudent(ctx, `SELECT `+studentProfileColumns+` FROM student_profiles WHERE user_id = $1`, userID)
}

// GetRecruiter retrieves the recruiter profile owned by userID.
func (r *ProfileRepo) GetRecruiter(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error) {
	return r.oneRecruiter(ctx, `SELECT `+recruiterProfileColumns+` FROM recruiter_profiles WHERE user_id = $1`, userID)
}

// UpdateStudent applies the non-nil fields of req.
func (r *ProfileRepo) UpdateStudent(ctx context.Context, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	var skills []string
	if req.Skills != nil {
		skills = nonNilStrings(*req.Skills)
	}
	query := `
		UPDATE student_profiles SET
			university      = COALESCE($2, university),
			degree          = COALESCE($3, degree),
			graduation_year = COALESCE($4, graduation_year),
			skills          = COALESCE($5, skills),
			resume_url      = COALESCE($6, resume_url),
			updated_at      = NOW()
		WHERE user_id = $1
		RETURNING ` + studentProfileColumns
	return r.oneStudent(ctx, query, userID, req.University, req.Degree, req.GraduationYear, skills, req.ResumeURL)
}

// UpdateRecruiter applies the non-nil fields of req. Approval is not editable here.
func (r *ProfileRepo) UpdateRecruiter(ctx context.Context, userID uuid.UUID, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error) {
	query := `
		UPDATE recruiter_profiles SET
			company             = COALESCE($2, company),
			company_description = COALESCE($3, company_description),
			website             = COALESCE($4, website),
			logo_url            = COALESCE($5, logo_url),
			updated_at          = NOW()
		WHERE user_id = $1
		RETURNING ` + recruiterProfileColumns
	return r.oneRecruiter(ctx, query, userID, req.Company, req.CompanyDescription, req.Website, req.LogoURL)
}

// ApproveRecruiter marks the recruiter profile approved. Approving twice is harmless.
func (r *ProfileRepo) ApproveRecruiter(ctx context.Context, userID uuid.UUID) (*models.RecruiterProfile, error) {
	return r.oneRecruiter(ctx, `UPDATE recruiter_profiles SET approved = TRUE, updated_at = NOW() WHERE user_id = $1 RETURNING `+recruiterProfileColumns, userID)
}

// StudentsByUserIDs loads the student profiles of the given users, keyed by user id.
func (r *ProfileRepo) StudentsByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.StudentProfile, error) {
	out := make(map[uuid.UUID]models.StudentProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+studentProfileColumns+` FROM student_profiles WHERE user_id = ANY($1::uuid[])`, uuidStrings(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query student profiles: %w", err)
	}
	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StudentProfile])
	if err != nil {
		return nil, fmt.Errorf("failed to scan student profiles: %w", err)
	}
	for _, p := range profiles {
		out[p.UserID] = p
	}
	return out, nil
}

// RecruitersByUserIDs loads the recruiter profiles of the given users, keyed by user id.
func (r *ProfileRepo) RecruitersByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.RecruiterProfile, error) {
	out := make(map[uuid.UUID]models.RecruiterProfile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT `+recruiterProfileColumns+` FROM recruiter_profiles WHERE user_id = ANY($1::uuid[])`, uuidStrings(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query recruiter profiles: %w", err)
	}
	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RecruiterProfile])
	if err != nil {
		return nil, fmt.Errorf("failed to scan recruiter profiles: %w", err)
	}
	for _, p := range profiles {
		out[p.UserID] = p
	}
	return out, nil
}

func (r *ProfileRepo) oneStudent(ctx context.Context, query string, args ...any) (*models.StudentProfile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query student profile: %w", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.StudentProfile])
	if err != nil {
		return nil, mapReadError(err, "scan student profile")
	}
	return &p, nil
}

func (r *ProfileRepo) oneRecruiter(ctx context.Context, query string, args ...any) (*models.RecruiterProfile, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recruiter profile: %w", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.RecruiterProfile])
	if err != nil {
		return nil, mapReadError(err, "scan recruiter profile")
	}
	return &p, nil
}
