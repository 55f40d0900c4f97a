package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/hr-directory/internal/dto"
	"github.com/ignatzorin/hr-directory/internal/http/handlers/common"
	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/repository"
)

// DictionaryHandler предоставляет HTTP слой справочников
// (отделы, компании, типы контрактов, должности, навыки).
type DictionaryHandler struct {
	repo *repository.DictionaryRepository
}

// NewDictionaryHandler создаёт хэндлер.
func NewDictionaryHandler(repo *repository.DictionaryRepository) *DictionaryHandler {
	return &DictionaryHandler{repo: repo}
}

// List обрабатывает GET /api/dictionaries/:type.
func (h *DictionaryHandler) List(c *gin.Context) {
	dictType := c.Param("type")
	if !models.IsValidDictionaryType(dictType) {
		common.RespondBadRequest(c, "неизвестный тип справочника: "+dictType)
		return
	}

	values, err := h.repo.ListByType(c.Request.Context(), dictType)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"values": values})
}

// Create обрабатывает POST /api/dictionaries/:type. Только для администраторов.
func (h *DictionaryHandler) Create(c *gin.Context) {
	dictType := c.Param("type")
	if !models.IsValidDictionaryType(dictType) {
		common.RespondBadRequest(c, "неизвестный тип справочника: "+dictType)
		return
	}

	var req dto.DictionaryValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	value := &models.DictionaryValue{
		ID:        uuid.New(),
		Type:      dictType,
		Value:     req.Value,
		SortOrder: req.SortOrder,
	}

	if err := h.repo.Create(c.Request.Context(), value); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, value)
}

// Update обрабатывает PUT /api/dictionaries/:type/:id. Только для администраторов.
func (h *DictionaryHandler) Update(c *gin.Context) {
	dictType := c.Param("type")
	if !models.IsValidDictionaryType(dictType) {
		common.RespondBadRequest(c, "неизвестный тип справочника: "+dictType)
		return
	}

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.DictionaryValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	value := &models.DictionaryValue{
		ID:        id,
		Type:      dictType,
		Value:     req.Value,
		SortOrder: req.SortOrder,
	}

	if err := h.repo.Update(c.Request.Context(), value); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, value)
}

// Delete обрабатывает DELETE /api/dictionaries/:type/:id. Только для администраторов.
func (h *DictionaryHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	common.RespondSuccess(c, http.StatusOK, "значение справочника удалено", nil)
}
