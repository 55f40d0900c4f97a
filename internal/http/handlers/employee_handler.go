package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/hr-directory/internal/dto"
	"github.com/ignatzorin/hr-directory/internal/http/handlers/common"
	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/repository"
	"github.com/ignatzorin/hr-directory/internal/validation"
)

// EmployeeHandler предоставляет HTTP слой CRUD операций над сотрудниками.
type EmployeeHandler struct {
	repo *repository.EmployeeRepository
}

// NewEmployeeHandler создаёт хэндлер.
func NewEmployeeHandler(repo *repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

// List обрабатывает GET /api/employees - постраничный список.
func (h *EmployeeHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	employees, err := h.repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	total, err := h.repo.Count(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.EmployeeListResponse{
		Employees: employees,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// Get обрабатывает GET /api/employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	employee, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Create обрабатывает POST /api/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	employee := employeeFromRequest(req)
	if err := validation.ValidateEmployee(employee); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.repo.Create(c.Request.Context(), employee); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// Update обрабатывает PUT /api/employees/:id.
// Дочерние коллекции (контракты, навыки, дипломы) заменяются целиком.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	employee := employeeFromRequest(req)
	employee.ID = id
	if err := validation.ValidateEmployee(employee); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.repo.Update(c.Request.Context(), employee); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Delete обрабатывает DELETE /api/employees/:id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	common.RespondSuccess(c, http.StatusOK, "сотрудник удалён", nil)
}

// employeeFromRequest собирает модель сотрудника из тела запроса.
func employeeFromRequest(req dto.EmployeeRequest) *models.Employee {
	employee := &models.Employee{
		ID:                     uuid.New(),
		Name:                   req.Name,
		Email:                  req.Email,
		Department:             req.Department,
		Company:                req.Company,
		ContractType:           req.ContractType,
		GeneralExperienceStart: req.GeneralExperienceStart,
	}

	for _, ct := range req.Contracts {
		employee.Contracts = append(employee.Contracts, models.Contract{
			ID:          uuid.New(),
			EmployeeID:  employee.ID,
			Position:    ct.Position,
			Location:    ct.Location,
			Beneficiary: ct.Beneficiary,
			StartDate:   ct.StartDate,
			EndDate:     ct.EndDate,
		})
	}

	for _, sk := range req.Skills {
		employee.Skills = append(employee.Skills, models.Skill{
			ID:         uuid.New(),
			EmployeeID: employee.ID,
			Name:       sk.Name,
			Level:      sk.Level,
		})
	}

	for _, d := range req.Diplomas {
		employee.Diplomas = append(employee.Diplomas, models.Diploma{
			ID:         uuid.New(),
			EmployeeID: employee.ID,
			Name:       d.Name,
			Issuer:     d.Issuer,
			IssueDate:  d.IssueDate,
		})
	}

	return employee
}
