package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, err := scanString(value, "Role")
	if err != nil {
		return err
	}
	v := Role(strVal)
	switch v {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

// Scan implements the sql.Scanner interface for JobType
func (jt *JobType) Scan(value interface{}) error {
	strVal, err := scanString(value, "JobType")
	if err != nil {
		return err
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract:
		*jt = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobType
func (jt JobType) Value() (driver.Value, error) {
	return string(jt), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, err := scanString(value, "JobStatus")
	if err != nil {
		return err
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, err := scanString(value, "ApplicationStatus")
	if err != nil {
		return err
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted, ApplicationStatusRejected:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

func scanString(value interface{}, typeName string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// --- Models ---

// User represents an account. PasswordHash never leaves the storage and service layers.
type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	Blocked      bool      `db:"blocked"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type StudentProfile struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	University     string    `db:"university"`
	Degree         string    `db:"degree"`
	GraduationYear int       `db:"graduation_year"`
	Skills         []string  `db:"skills"`
	ResumeURL      string    `db:"resume_url"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type RecruiterProfile struct {
	ID                 uuid.UUID `db:"id"`
	UserID             uuid.UUID `db:"user_id"`
	Company            string    `db:"company"`
	CompanyDescription string    `db:"company_description"`
	Website            string    `db:"website"`
	LogoURL            string    `db:"logo_url"`
	Approved           bool      `db:"approved"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Job is a posting owned by a recruiter. ApplicantsCount only ever grows.
type Job struct {
	ID              uuid.UUID `db:"id"`
	RecruiterID     uuid.UUID `db:"recruiter_id"`
	Title           string    `db:"title"`
	Company         string    `db:"company"`
	Location        string    `db:"location"`
	Type            JobType   `db:"type"`
	Category        string    `db:"category"`
	SalaryMin       float64   `db:"salary_min"`
	SalaryMax       float64   `db:"salary_max"`
	Description     string    `db:"description"`
	Requirements    []string  `db:"requirements"`
	Status          JobStatus `db:"status"`
	ApplicantsCount int       `db:"applicants_count"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Application struct {
	ID          uuid.UUID         `db:"id"`
	JobID       uuid.UUID         `db:"job_id"`
	StudentID   uuid.UUID         `db:"student_id"`
	CoverLetter string            `db:"cover_letter"`
	ResumeURL   string            `db:"resume_url"`
	Status      ApplicationStatus `db:"status"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}

// UserSummary is the name/email projection attached to jobs and applications.
type UserSummary struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
}

// UserListing is one flattened row of the admin user listing. Profile columns are nil
// when the user has no profile of that kind.
type UserListing struct {
	ID                 uuid.UUID `db:"id"`
	Name               string    `db:"name"`
	Email              string    `db:"email"`
	Role               Role      `db:"role"`
	Blocked            bool      `db:"blocked"`
	CreatedAt          time.Time `db:"created_at"`
	University         *string   `db:"university"`
	Degree             *string   `db:"degree"`
	GraduationYear     *int      `db:"graduation_year"`
	Skills             []string  `db:"skills"`
	Company            *string   `db:"company"`
	CompanyDescription *string   `db:"company_description"`
	Website            *string   `db:"website"`
	Approved           *bool     `db:"approved"`
}

// AdminStats are the dashboard counters.
type AdminStats struct {
	TotalStudents     int64
	TotalRecruiters   int64
	TotalJobs         int64
	TotalApplications int64
	PendingRecruiters int64
	ActiveJobs        int64
}

// --- Composed read models ---

// JobDetail is a job with its owning recruiter. Either part may be nil if the row is gone.
type JobDetail struct {
	Job              Job
	Recruiter        *UserSummary
	RecruiterProfile *RecruiterProfile
}

// StudentApplication is an application with the job it targets.
type StudentApplication struct {
	Application Application
	Job         *JobDetail
}

// Applicant is an application with the student who submitted it.
type Applicant struct {
	Application    Application
	Student        *UserSummary
	StudentProfile *StudentProfile
}

// UserWithProfile pairs a user with the profile matching their role. Admins have none.
type UserWithProfile struct {
	User             User
	StudentProfile   *StudentProfile
	RecruiterProfile *RecruiterProfile
}
