package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/hr-directory/internal/dto"
	"github.com/ignatzorin/hr-directory/internal/http/handlers/common"
	"github.com/ignatzorin/hr-directory/internal/service"
)

// SeedHandler наполняет базу тестовыми данными. Доступен только в development.
type SeedHandler struct {
	seed *service.SeedService
}

// NewSeedHandler создаёт хэндлер.
func NewSeedHandler(seed *service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed обрабатывает POST /api/seed.
func (h *SeedHandler) Seed(c *gin.Context) {
	var req dto.SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Тело опционально, по умолчанию генерируем 50 сотрудников.
		req.NumEmployees = 0
	}

	if req.NumEmployees <= 0 {
		req.NumEmployees = 50
	}
	if req.NumEmployees > 1000 {
		common.RespondBadRequest(c, "максимум 1000 сотрудников за один запрос")
		return
	}

	if err := h.seed.SeedData(c.Request.Context(), req.NumEmployees); err != nil {
		c.Error(err)
		return
	}

	common.RespondSuccess(c, http.StatusOK, "тестовые данные сгенерированы", gin.H{
		"num_employees": req.NumEmployees,
	})
}
