package handlers

import (
	"net/http"

	"careerconnect/internal/services"
	"careerconnect/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	service services.StatsService
}

func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// AdminStats godoc
// @Summary      Admin dashboard counters
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      403  {object}  dto.MessageResponse
// @Router       /stats/admin [get]
// @Security     BearerAuth
func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.service.AdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "AdminStats", nil)
		return
	}
	c.JSON(http.StatusOK, dto.AdminStatsResponse{
		TotalStudents:     stats.TotalStudents,
		TotalRecruiters:   stats.TotalRecruiters,
		TotalJobs:         stats.TotalJobs,
		TotalApplications: stats.TotalApplications,
		PendingRecruiters: stats.PendingRecruiters,
		ActiveJobs:        stats.ActiveJobs,
	})
}
