package postgres

import (
	"context"
	"fmt"
	"log"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password_hash, role, blocked, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo with the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

var _ storage.UserRepository = (*UserRepo)(nil)

// Create inserts a user. The caller supplies the password hash, never the password.
func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	id := user.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	query := `
		INSERT INTO users (id, name, email, password_hash, role, blocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW(), NOW())
		RETURNING ` + userColumns

	rows, err := r.db.Query(ctx, query, id, user.Name, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		return nil, mapWriteError(err, "create user")
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		log.Printf("Error creating user %s: %v", user.Email, err)
		return nil, mapWriteError(err, "create user")
	}

	log.Printf("User created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves a single user by email, compared case-insensitively.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

// UpdateName changes the display name of a user.
func (r *UserRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.User, error) {
	return r.getOne(ctx, `UPDATE users SET name = $2, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns, id, name)
}

// Block sets the blocked flag. Blocking an already blocked user is a no-op that still succeeds.
func (r *UserRepo) Block(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, `UPDATE users SET blocked = TRUE, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns, id)
}

func (r *UserRepo) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, mapReadError(err, "scan user")
	}
	return &user, nil
}

// SummariesByIDs loads name and email for the given users, keyed by id.
func (r *UserRepo) SummariesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.UserSummary, error) {
	out := make(map[uuid.UUID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id, name, email FROM users WHERE id = ANY($1::uuid[])`, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query user summaries: %w", err)
	}
	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UserSummary])
	if err != nil {
		return nil, fmt.Errorf("failed to scan user summaries: %w", err)
	}
	for _, s := range summaries {
		out[s.ID] = s
	}
	return out, nil
}

// ListWithProfiles returns every user, newest first, flattened with whichever
// profile they have.
func (r *UserRepo) ListWithProfiles(ctx context.Context) ([]models.UserListing, error) {
	b := builder()
	u := b.Table("users").As("u")
	sp := b.Table("student_profiles").As("sp")
	rp := b.Table("recruiter_profiles").As("rp")

	query, args := b.Select(
		u.C("id"), u.C("name"), u.C("email"), u.C("role"), u.C("blocked"), u.C("created_at"),
		sp.C("university"), sp.C("degree"), sp.C("graduation_year"), sp.C("skills"),
		rp.C("company"), rp.C("company_description"), rp.C("website"), rp.C("approved"),
	).
		From(u).
		LeftJoin(sp).On(u.C("id"), sp.C("user_id")).
		LeftJoin(rp).On(u.C("id"), rp.C("user_id")).
		OrderBy(entsql.Desc(u.C("created_at"))).
		Query()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying user listing: %v", err)
		return nil, fmt.Errorf("failed to query user listing: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UserListing])
	if err != nil {
		return nil, fmt.Errorf("failed to scan user listing: %w", err)
	}
	if users == nil {
		users = []models.UserListing{}
	}
	return users, nil
}
