package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/hr-directory/internal/dto"
	"github.com/ignatzorin/hr-directory/internal/repository"
)

// StatsHandler отдаёт сводную статистику каталога.
type StatsHandler struct {
	repo *repository.EmployeeRepository
}

// NewStatsHandler создаёт хэндлер.
func NewStatsHandler(repo *repository.EmployeeRepository) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// Stats обрабатывает GET /api/stats.
func (h *StatsHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	total, err := h.repo.Count(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	activeContracts, err := h.repo.CountActiveContracts(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	byDepartment, err := h.repo.CountByDepartment(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalEmployees:  total,
		ActiveContracts: activeContracts,
		ByDepartment:    byDepartment,
	})
}
