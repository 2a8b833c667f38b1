package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"careerconnect/internal/events"
	"careerconnect/internal/models"
	"careerconnect/internal/storage"
	"careerconnect/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	db           TxBeginner
	applications storage.ApplicationRepository
	jobs         storage.JobRepository
	users        storage.UserRepository
	profiles     storage.ProfileRepository
	publisher    events.Publisher
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(
	db TxBeginner,
	applications storage.ApplicationRepository,
	jobs storage.JobRepository,
	users storage.UserRepository,
	profiles storage.ProfileRepository,
	publisher events.Publisher,
) ApplicationService {
	return &applicationService{
		db:           db,
		applications: applications,
		jobs:         jobs,
		users:        users,
		profiles:     profiles,
		publisher:    publisher,
	}
}

// Apply submits the actor's application to jobID. The application insert and the
// applicant counter increment commit together or not at all.
func (s *applicationService) Apply(ctx context.Context, actor Actor, jobID uuid.UUID, req *dto.ApplyToJobRequest) (*models.Application, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Apply: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txApps := s.applications.WithTx(tx)
	txJobs := s.jobs.WithTx(tx)

	job, err := txJobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("job %s not found", jobID))
	}

	_, err = txApps.GetByJobAndStudent(ctx, jobID, actor.ID)
	if err == nil {
		log.Printf("Apply: student %s already applied to job %s", actor.ID, jobID)
		return nil, fmt.Errorf("%w: you have already applied to this job", ErrConflict)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking existing application")
	}

	application, err := txApps.Create(ctx, &models.Application{
		JobID:       jobID,
		StudentID:   actor.ID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			// Lost the race against a concurrent apply for the same pair.
			return nil, fmt.Errorf("%w: you have already applied to this job", ErrConflict)
		}
		return nil, mapRepoError(err, "creating application")
	}

	if err := txJobs.IncrementApplicants(ctx, jobID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("incrementing applicants of job %s", jobID))
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Apply: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	log.Printf("Apply: student %s applied to job %s (application %s)", actor.ID, jobID, application.ID)
	publish(ctx, s.publisher, events.TopicApplicationSubmitted, events.ApplicationSubmitted{
		ApplicationID: application.ID,
		JobID:         jobID,
		StudentID:     actor.ID,
		RecruiterID:   job.RecruiterID,
		OccurredAt:    time.Now().UTC(),
	})
	return application, nil
}

// ListStudentApplications returns the student's applications with each job and its
// recruiter attached. Job is left nil if its row cannot be loaded.
func (s *applicationService) ListStudentApplications(ctx context.Context, studentID uuid.UUID) ([]models.StudentApplication, error) {
	apps, err := s.applications.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications of student %s", studentID))
	}

	jobIDs := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
	}
	jobsByID, err := s.jobs.ListByIDs(ctx, uniqueIDs(jobIDs))
	if err != nil {
		return nil, mapRepoError(err, "loading application jobs")
	}

	jobs := make([]models.Job, 0, len(jobsByID))
	for _, j := range jobsByID {
		jobs = append(jobs, j)
	}
	details, err := attachRecruiters(ctx, s.users, s.profiles, jobs)
	if err != nil {
		return nil, err
	}
	detailByID := make(map[uuid.UUID]*models.JobDetail, len(details))
	for i := range details {
		detailByID[details[i].Job.ID] = &details[i]
	}

	out := make([]models.StudentApplication, 0, len(apps))
	for _, a := range apps {
		out = append(out, models.StudentApplication{Application: a, Job: detailByID[a.JobID]})
	}
	return out, nil
}

// ListJobApplicants returns the applications to a job owned by actor, each with the
// student and their profile.
func (s *applicationService) ListJobApplicants(ctx context.Context, actor Actor, jobID uuid.UUID) ([]models.Applicant, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("job %s not found", jobID))
	}
	if job.RecruiterID != actor.ID {
		log.Printf("ListJobApplicants: Forbidden attempt by user %s on job %s owned by %s", actor.ID, jobID, job.RecruiterID)
		return nil, fmt.Errorf("%w: not authorized to view applicants", ErrForbidden)
	}

	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applicants of job %s", jobID))
	}

	studentIDs := make([]uuid.UUID, 0, len(apps))
	for _, a := range apps {
		studentIDs = append(studentIDs, a.StudentID)
	}
	studentIDs = uniqueIDs(studentIDs)

	summaries, err := s.users.SummariesByIDs(ctx, studentIDs)
	if err != nil {
		return nil, mapRepoError(err, "loading applicants")
	}
	studentProfiles, err := s.profiles.StudentsByUserIDs(ctx, studentIDs)
	if err != nil {
		return nil, mapRepoError(err, "loading applicant profiles")
	}

	out := make([]models.Applicant, 0, len(apps))
	for _, a := range apps {
		applicant := models.Applicant{Application: a}
		if u, ok := summaries[a.StudentID]; ok {
			applicant.Student = &u
		}
		if p, ok := studentProfiles[a.StudentID]; ok {
			applicant.StudentProfile = &p
		}
		out = append(out, applicant)
	}
	return out, nil
}

// UpdateStatus overwrites the status of an application to a job owned by actor.
// Any status may follow any other.
func (s *applicationService) UpdateStatus(ctx context.Context, actor Actor, applicationID uuid.UUID, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("application %s not found", applicationID))
	}
	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("job %s of application %s not found", application.JobID, applicationID))
	}
	if job.RecruiterID != actor.ID {
		log.Printf("UpdateStatus: Forbidden attempt by user %s on application %s (job owner %s)", actor.ID, applicationID, job.RecruiterID)
		return nil, fmt.Errorf("%w: not authorized to update this application", ErrForbidden)
	}

	updated, err := s.applications.UpdateStatus(ctx, applicationID, models.ApplicationStatus(req.Status))
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating status of application %s", applicationID))
	}

	publish(ctx, s.publisher, events.TopicApplicationStatusChanged, events.ApplicationStatusChanged{
		ApplicationID:  updated.ID,
		JobID:          updated.JobID,
		StudentID:      updated.StudentID,
		PreviousStatus: string(application.Status),
		Status:         string(updated.Status),
		ChangedBy:      actor.ID,
		OccurredAt:     time.Now().UTC(),
	})
	return updated, nil
}
