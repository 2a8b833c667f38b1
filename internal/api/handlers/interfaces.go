package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
	Logout(c *gin.Context)
}

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	GetUsers(c *gin.Context)
	ExportUsers(c *gin.Context)
	UpdateUser(c *gin.Context)
	UpdateStudentProfile(c *gin.Context)
	UpdateRecruiterProfile(c *gin.Context)
	ApproveRecruiter(c *gin.Context)
	BlockUser(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
	ListRecruiterJobs(c *gin.Context)
	ListMyJobs(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	ApplyToJob(c *gin.Context)
	ListStudentApplications(c *gin.Context)
	ListJobApplicants(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
}

type StatsHandlerInterface interface {
	AdminStats(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ StatsHandlerInterface = (*StatsHandler)(nil)
