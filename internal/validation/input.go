package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ignatzorin/hr-directory/internal/models"
)

// Константы валидации
const (
	MinNameLength      = 2
	MaxNameLength      = 200
	MaxAttributeLength = 200
	MaxSkillLength     = 100
	MaxSkillsCount     = 100
	MaxContractsCount  = 100
	MaxDiplomasCount   = 50
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}

	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}

	emailRegex := regexp.MustCompile(`^[a-z0-9._+-]+$`)
	if !emailRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}

	domainRegex := regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateEmployeeName проверяет имя сотрудника.
func ValidateEmployeeName(name string) error {
	if err := ValidateNonEmpty("имя сотрудника", name); err != nil {
		return err
	}
	return ValidateLength("имя сотрудника", strings.TrimSpace(name), MinNameLength, MaxNameLength)
}

// ValidateAttribute проверяет необязательный строковый атрибут.
func ValidateAttribute(fieldName string, value *string) error {
	if value == nil || *value == "" {
		return nil
	}
	return ValidateLength(fieldName, strings.TrimSpace(*value), 0, MaxAttributeLength)
}

// ValidateSkillLevel проверяет уровень владения навыком.
func ValidateSkillLevel(level string) error {
	switch level {
	case models.SkillLevelBeginner, models.SkillLevelIntermediate, models.SkillLevelExpert:
		return nil
	}
	return fmt.Errorf("неизвестный уровень навыка: %s", level)
}

// ValidateSkills проверяет список навыков сотрудника.
func ValidateSkills(skills []models.Skill) error {
	if len(skills) > MaxSkillsCount {
		return fmt.Errorf("количество навыков не может превышать %d", MaxSkillsCount)
	}

	seen := make(map[string]bool)
	for _, skill := range skills {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			return fmt.Errorf("навык не может быть пустым")
		}
		if utf8.RuneCountInString(name) > MaxSkillLength {
			return fmt.Errorf("навык не может быть длиннее %d символов", MaxSkillLength)
		}

		lower := strings.ToLower(name)
		if seen[lower] {
			return fmt.Errorf("навык '%s' указан дважды", name)
		}
		seen[lower] = true

		if err := ValidateSkillLevel(skill.Level); err != nil {
			return err
		}
	}
	return nil
}

// ValidateContracts проверяет список контрактов сотрудника.
func ValidateContracts(contracts []models.Contract) error {
	if len(contracts) > MaxContractsCount {
		return fmt.Errorf("количество контрактов не может превышать %d", MaxContractsCount)
	}

	for _, contract := range contracts {
		if contract.StartDate.IsZero() {
			return fmt.Errorf("у контракта обязательна дата начала")
		}
		if contract.EndDate != nil && contract.EndDate.Before(contract.StartDate) {
			return fmt.Errorf("дата окончания контракта раньше даты начала")
		}
		if err := ValidateAttribute("должность", contract.Position); err != nil {
			return err
		}
		if err := ValidateAttribute("локация", contract.Location); err != nil {
			return err
		}
		if err := ValidateAttribute("заказчик", contract.Beneficiary); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDiplomas проверяет список дипломов сотрудника.
func ValidateDiplomas(diplomas []models.Diploma) error {
	if len(diplomas) > MaxDiplomasCount {
		return fmt.Errorf("количество дипломов не может превышать %d", MaxDiplomasCount)
	}

	for _, diploma := range diplomas {
		if err := ValidateNonEmpty("название диплома", diploma.Name); err != nil {
			return err
		}
		if err := ValidateNonEmpty("издатель диплома", diploma.Issuer); err != nil {
			return err
		}
		if diploma.IssueDate.IsZero() {
			return fmt.Errorf("у диплома обязательна дата выдачи")
		}
	}
	return nil
}

// ValidateExperienceStart проверяет дату начала общего стажа.
func ValidateExperienceStart(start *time.Time) error {
	if start == nil {
		return nil
	}
	if start.After(time.Now()) {
		return fmt.Errorf("дата начала стажа не может быть в будущем")
	}
	return nil
}

// ValidateEmployee проверяет сотрудника целиком перед сохранением.
func ValidateEmployee(e *models.Employee) error {
	if err := ValidateEmployeeName(e.Name); err != nil {
		return err
	}
	if err := ValidateEmail(e.Email); err != nil {
		return err
	}
	if err := ValidateAttribute("отдел", e.Department); err != nil {
		return err
	}
	if err := ValidateAttribute("компания", e.Company); err != nil {
		return err
	}
	if err := ValidateAttribute("тип контракта", e.ContractType); err != nil {
		return err
	}
	if err := ValidateExperienceStart(e.GeneralExperienceStart); err != nil {
		return err
	}
	if err := ValidateContracts(e.Contracts); err != nil {
		return err
	}
	if err := ValidateSkills(e.Skills); err != nil {
		return err
	}
	return ValidateDiplomas(e.Diplomas)
}
