package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/hr-directory/internal/dto"
	"github.com/ignatzorin/hr-directory/internal/search"
	"github.com/ignatzorin/hr-directory/internal/service"
)

// Максимальное количество условий в одном запросе.
const maxSearchConditions = 20

// SearchHandler предоставляет HTTP слой расширенного поиска сотрудников.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler создаёт хэндлер.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{search: searchService}
}

// Search обрабатывает POST /api/search/employees.
// Принимает цепочку условий и возвращает ранжированный список совпадений.
func (h *SearchHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса: " + err.Error()})
		return
	}

	if len(req.Conditions) > maxSearchConditions {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("слишком много условий: максимум %d", maxSearchConditions),
		})
		return
	}

	// Неизвестное поле или оператор — отклоняем весь запрос.
	for i, cond := range req.Conditions {
		if cond.Field == "" || cond.Operator == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("условие %d: поле и оператор обязательны", i+1),
			})
			return
		}
		if !search.Supported(cond.Field, cond.Operator) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("условие %d: оператор %q не поддерживается для поля %q", i+1, cond.Operator, cond.Field),
			})
			return
		}
	}

	result, err := h.search.Search(c.Request.Context(), req.Conditions)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Fields обрабатывает GET /api/search/fields.
// Возвращает таксономию поиска: поля и операторы, которые клиент может использовать.
func (h *SearchHandler) Fields(c *gin.Context) {
	fields := make(map[string][]string)
	for _, f := range search.Fields() {
		ops := search.OperatorsFor(f)
		names := make([]string, 0, len(ops))
		for _, op := range ops {
			names = append(names, string(op))
		}
		fields[string(f)] = names
	}

	c.JSON(http.StatusOK, dto.SearchFieldsResponse{Fields: fields})
}
