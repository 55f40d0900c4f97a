package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы справочников для выпадающих списков форм.
const (
	DictionaryDepartment   = "department"
	DictionaryCompany      = "company"
	DictionaryContractType = "contract_type"
	DictionaryPosition     = "position"
	DictionarySkill        = "skill"
)

// DictionaryTypes перечисляет допустимые типы справочников.
var DictionaryTypes = []string{
	DictionaryDepartment,
	DictionaryCompany,
	DictionaryContractType,
	DictionaryPosition,
	DictionarySkill,
}

// IsValidDictionaryType проверяет, что тип справочника известен.
func IsValidDictionaryType(t string) bool {
	for _, known := range DictionaryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DictionaryValue описывает одно значение справочника.
type DictionaryValue struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Type      string    `db:"type" json:"type"`
	Value     string    `db:"value" json:"value"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
