package dto

import (
	"time"

	"github.com/ignatzorin/hr-directory/internal/search"
)

// LoginRequest — данные для входа.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest — обмен refresh токена на новую пару.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SearchRequest — запрос расширенного поиска: цепочка условий.
type SearchRequest struct {
	Conditions []search.Condition `json:"conditions"`
}

// ContractPayload — контракт в запросе создания/обновления сотрудника.
type ContractPayload struct {
	Position    *string    `json:"position,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Beneficiary *string    `json:"beneficiary,omitempty"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// SkillPayload — навык в запросе создания/обновления сотрудника.
type SkillPayload struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level" binding:"required"`
}

// DiplomaPayload — диплом в запросе создания/обновления сотрудника.
type DiplomaPayload struct {
	Name      string    `json:"name" binding:"required"`
	Issuer    string    `json:"issuer" binding:"required"`
	IssueDate time.Time `json:"issue_date" binding:"required"`
}

// EmployeeRequest — запрос создания или обновления профиля сотрудника.
type EmployeeRequest struct {
	Name                   string            `json:"name" binding:"required"`
	Email                  string            `json:"email" binding:"required"`
	Department             *string           `json:"department,omitempty"`
	Company                *string           `json:"company,omitempty"`
	ContractType           *string           `json:"contract_type,omitempty"`
	GeneralExperienceStart *time.Time        `json:"general_experience_start,omitempty"`
	Contracts              []ContractPayload `json:"contracts"`
	Skills                 []SkillPayload    `json:"skills"`
	Diplomas               []DiplomaPayload  `json:"diplomas"`
}

// DictionaryValueRequest — запрос добавления/изменения значения справочника.
type DictionaryValueRequest struct {
	Value     string `json:"value" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// SeedRequest — параметры генерации тестовых данных.
type SeedRequest struct {
	NumEmployees int `json:"num_employees"`
}
