package services

import (
	"context"
	"fmt"
	"log"

	"careerconnect/internal/models"
	"careerconnect/internal/storage"
	"careerconnect/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobs     storage.JobRepository
	users    storage.UserRepository
	profiles storage.ProfileRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobs storage.JobRepository, users storage.UserRepository, profiles storage.ProfileRepository) JobService {
	return &jobService{
		jobs:     jobs,
		users:    users,
		profiles: profiles,
	}
}

// ListJobs returns active jobs matching filter, each with its recruiter attached.
func (s *jobService) ListJobs(ctx context.Context, filter *dto.ListJobsRequest) ([]models.JobDetail, error) {
	jobs, err := s.jobs.ListActive(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}
	return attachRecruiters(ctx, s.users, s.profiles, jobs)
}

// GetJob returns one job with its recruiter attached, whatever its status.
func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*models.JobDetail, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("job %s not found", id))
	}
	details, err := attachRecruiters(ctx, s.users, s.profiles, []models.Job{*job})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// CreateJob stores a posting owned by req.RecruiterID.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobs.Create(ctx, req)
	if err != nil {
		log.Printf("CreateJob: Error creating job for recruiter %s: %v", req.RecruiterID, err)
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

// UpdateJob applies req to a job owned by actor.
func (s *jobService) UpdateJob(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	if _, err := s.ownedJob(ctx, actor, id, "update"); err != nil {
		return nil, err
	}
	job, err := s.jobs.Update(ctx, id, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", id))
	}
	return job, nil
}

// DeleteJob removes a job owned by actor together with its applications.
func (s *jobService) DeleteJob(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.ownedJob(ctx, actor, id, "delete"); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %s", id))
	}
	return nil
}

// ListRecruiterJobs returns every job owned by recruiterID, any status.
func (s *jobService) ListRecruiterJobs(ctx context.Context, recruiterID uuid.UUID) ([]models.Job, error) {
	jobs, err := s.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing jobs of recruiter %s", recruiterID))
	}
	return jobs, nil
}

// ownedJob loads a job and checks actor owns it. Existence is checked first so a
// missing job is a 404 for everyone.
func (s *jobService) ownedJob(ctx context.Context, actor Actor, id uuid.UUID, action string) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("job %s not found", id))
	}
	if job.RecruiterID != actor.ID {
		log.Printf("%sJob: Forbidden attempt by user %s on job %s owned by %s", action, actor.ID, id, job.RecruiterID)
		return nil, fmt.Errorf("%w: not authorized to %s this job", ErrForbidden, action)
	}
	return job, nil
}

// attachRecruiters batch-loads the recruiter summary and profile of every job.
func attachRecruiters(ctx context.Context, users storage.UserRepository, profiles storage.ProfileRepository, jobs []models.Job) ([]models.JobDetail, error) {
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.RecruiterID)
	}
	ids = uniqueIDs(ids)

	summaries, err := users.SummariesByIDs(ctx, ids)
	if err != nil {
		return nil, mapRepoError(err, "loading job recruiters")
	}
	recruiterProfiles, err := profiles.RecruitersByUserIDs(ctx, ids)
	if err != nil {
		return nil, mapRepoError(err, "loading recruiter profiles")
	}

	details := make([]models.JobDetail, 0, len(jobs))
	for _, j := range jobs {
		d := models.JobDetail{Job: j}
		if u, ok := summaries[j.RecruiterID]; ok {
			d.Recruiter = &u
		}
		if p, ok := recruiterProfiles[j.RecruiterID]; ok {
			d.RecruiterProfile = &p
		}
		details = append(details, d)
	}
	return details, nil
}
