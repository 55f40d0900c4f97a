package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/hr-directory/internal/models"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"anna@corp.ru",
		"Anna.Petrova+hr@example.com",
		"a_b-c@sub.domain.org",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"не email",
		"anna@",
		"@corp.ru",
		"anna@corp",
		"anna@@corp.ru",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), email)
	}
}

func TestValidateSkillsDuplicatesAndLevels(t *testing.T) {
	assert.NoError(t, ValidateSkills([]models.Skill{
		{Name: "Go", Level: models.SkillLevelExpert},
		{Name: "SQL", Level: models.SkillLevelBeginner},
	}))

	// Дубликат без учёта регистра.
	assert.Error(t, ValidateSkills([]models.Skill{
		{Name: "Go", Level: models.SkillLevelExpert},
		{Name: "go", Level: models.SkillLevelBeginner},
	}))

	assert.Error(t, ValidateSkills([]models.Skill{
		{Name: "Go", Level: "Guru"},
	}))

	assert.Error(t, ValidateSkills([]models.Skill{
		{Name: "  ", Level: models.SkillLevelExpert},
	}))
}

func TestValidateContractsDates(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	badEnd := start.AddDate(-1, 0, 0)

	assert.NoError(t, ValidateContracts([]models.Contract{
		{StartDate: start, EndDate: &end},
		{StartDate: start},
	}))

	assert.Error(t, ValidateContracts([]models.Contract{
		{StartDate: time.Time{}},
	}))

	assert.Error(t, ValidateContracts([]models.Contract{
		{StartDate: start, EndDate: &badEnd},
	}))
}

func TestValidateEmployee(t *testing.T) {
	e := &models.Employee{
		Name:  "Анна Петрова",
		Email: "anna@corp.ru",
		Skills: []models.Skill{
			{Name: "Go", Level: models.SkillLevelExpert},
		},
	}
	assert.NoError(t, ValidateEmployee(e))

	e.Name = "А"
	assert.Error(t, ValidateEmployee(e))

	e.Name = "Анна Петрова"
	future := time.Now().AddDate(1, 0, 0)
	e.GeneralExperienceStart = &future
	assert.Error(t, ValidateEmployee(e))
}
