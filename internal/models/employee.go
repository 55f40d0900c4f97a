package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee описывает сотрудника каталога вместе с вложенными коллекциями.
// Контракты, навыки и дипломы загружаются одним снимком перед поиском.
type Employee struct {
	ID                     uuid.UUID  `db:"id" json:"id"`
	Name                   string     `db:"name" json:"name"`
	Email                  string     `db:"email" json:"email"`
	Department             *string    `db:"department" json:"department,omitempty"`
	Company                *string    `db:"company" json:"company,omitempty"`
	ContractType           *string    `db:"contract_type" json:"contract_type,omitempty"`
	GeneralExperienceStart *time.Time `db:"general_experience_start" json:"general_experience_start,omitempty"`
	CreatedAt              time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updated_at"`

	Contracts []Contract `db:"-" json:"contracts,omitempty"`
	Skills    []Skill    `db:"-" json:"skills,omitempty"`
	Diplomas  []Diploma  `db:"-" json:"diplomas,omitempty"`
}

// Contract описывает контракт сотрудника. EndDate == nil означает действующий контракт.
type Contract struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	EmployeeID  uuid.UUID  `db:"employee_id" json:"employee_id"`
	Position    *string    `db:"position" json:"position,omitempty"`
	Location    *string    `db:"location" json:"location,omitempty"`
	Beneficiary *string    `db:"beneficiary" json:"beneficiary,omitempty"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
}

// Active сообщает, действует ли контракт на момент now.
func (c Contract) Active(now time.Time) bool {
	return c.EndDate == nil || c.EndDate.After(now)
}

// Уровни владения навыком в порядке возрастания.
const (
	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelExpert       = "Expert"
)

// Skill описывает навык сотрудника с уровнем владения.
type Skill struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EmployeeID uuid.UUID `db:"employee_id" json:"employee_id"`
	Name       string    `db:"name" json:"name"`
	Level      string    `db:"level" json:"level"`
}

// Diploma описывает диплом или сертификат сотрудника.
type Diploma struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EmployeeID uuid.UUID `db:"employee_id" json:"employee_id"`
	Name       string    `db:"name" json:"name"`
	Issuer     string    `db:"issuer" json:"issuer"`
	IssueDate  time.Time `db:"issue_date" json:"issue_date"`
}

// Document описывает загруженный документ сотрудника (метаданные, файл лежит на диске).
type Document struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EmployeeID uuid.UUID `db:"employee_id" json:"employee_id"`
	FileName   string    `db:"file_name" json:"file_name"`
	FilePath   string    `db:"file_path" json:"-"`
	MimeType   string    `db:"mime_type" json:"mime_type"`
	SizeBytes  int64     `db:"size_bytes" json:"size_bytes"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}
