package dto

import (
	"github.com/ignatzorin/hr-directory/internal/models"
)

// ErrorResponse — стандартная форма ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse — стандартная форма успешного ответа с данными.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// EmployeeListResponse — страница списка сотрудников.
type EmployeeListResponse struct {
	Employees []models.Employee `json:"employees"`
	Total     int               `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// StatsResponse — сводка по каталогу.
type StatsResponse struct {
	TotalEmployees  int            `json:"total_employees"`
	ActiveContracts int            `json:"active_contracts"`
	ByDepartment    map[string]int `json:"by_department"`
}

// SearchFieldsResponse — описание таксономии поиска для клиента:
// поля и допустимые операторы каждого поля.
type SearchFieldsResponse struct {
	Fields map[string][]string `json:"fields"`
}
