package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"careerconnect/internal/api/handlers"
	"careerconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsHandler_AdminStats(t *testing.T) {
	svc := new(MockStatsService)
	svc.On("AdminStats", mock.Anything).Return(&models.AdminStats{
		TotalStudents: 3, TotalRecruiters: 2, TotalJobs: 4, TotalApplications: 5, PendingRecruiters: 1, ActiveJobs: 3,
	}, nil)

	router := newRouter()
	router.GET("/stats/admin", handlers.NewStatsHandler(svc).AdminStats)
	w := perform(router, http.MethodGet, "/stats/admin", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalStudents":3,"totalRecruiters":2,"totalJobs":4,"totalApplications":5,"pendingRecruiters":1,"activeJobs":3}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("refused") }

	router := newRouter()
	router.GET("/healthy", handlers.HealthCheck(map[string]handlers.Pinger{"database": ok, "redis": ok}))
	router.GET("/degraded", handlers.HealthCheck(map[string]handlers.Pinger{"database": ok, "redis": down}))

	w := perform(router, http.MethodGet, "/healthy", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok","redis":"ok"}`, w.Body.String())

	w = perform(router, http.MethodGet, "/degraded", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"ok","redis":"down"}`, w.Body.String())
}
