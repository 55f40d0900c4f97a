package search_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/search"
)

func cond(f search.Field, op search.Operator, value string) search.Condition {
	return search.Condition{Field: f, Operator: op, Value: search.NewValue(value)}
}

func TestMatchesUnknownPairIsFalse(t *testing.T) {
	e := makeEmployee("anna", nil, nil)

	assert.False(t, search.Matches(e, cond(search.FieldSkills, search.OpBetween, "1-2"), testNow))
	assert.False(t, search.Matches(e, cond("unknown_field", search.OpIs, "x"), testNow))
}

func TestMatchNameMatchesNameOrEmail(t *testing.T) {
	e := makeEmployee("Анна Петрова", nil, nil)
	e.Email = "anna.petrova@corp.ru"

	assert.True(t, search.Matches(e, cond(search.FieldName, search.OpContains, "петро"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldName, search.OpContains, "CORP.RU"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldName, search.OpStartsWith, "анна"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldName, search.OpEndsWith, "@corp.ru"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldName, search.OpExact, "анна"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldName, search.OpExact, "анна петрова"), testNow))
}

func TestMatchSkillsHasAnyVsHasAll(t *testing.T) {
	e := makeEmployee("anna", []models.Skill{
		{Name: "React Native", Level: models.SkillLevelExpert},
		{Name: "Go", Level: models.SkillLevelIntermediate},
	}, nil)

	// Подстрочное сопоставление: "react" находит "React Native".
	assert.True(t, search.Matches(e, cond(search.FieldSkills, search.OpHasAny, "react,python"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldSkills, search.OpHasAll, "react,python"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldSkills, search.OpHasAll, "react,go"), testNow))

	assert.False(t, search.Matches(e, cond(search.FieldSkills, search.OpNotHas, "go"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldSkills, search.OpNotHas, "python"), testNow))
}

func TestMatchSkillLevelAtLeast(t *testing.T) {
	e := makeEmployee("anna", []models.Skill{
		{Name: "Go", Level: models.SkillLevelIntermediate},
	}, nil)

	assert.True(t, search.Matches(e, cond(search.FieldSkillLevel, search.OpIs, "Intermediate"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldSkillLevel, search.OpIs, "Expert"), testNow))

	assert.True(t, search.Matches(e, cond(search.FieldSkillLevel, search.OpAtLeast, "Beginner"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldSkillLevel, search.OpAtLeast, "Intermediate"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldSkillLevel, search.OpAtLeast, "Expert"), testNow))

	// Неизвестный запрошенный уровень не совпадает ни с кем.
	assert.False(t, search.Matches(e, cond(search.FieldSkillLevel, search.OpAtLeast, "Guru"), testNow))
}

func TestMatchAttributeNilNeverMatches(t *testing.T) {
	e := makeEmployee("anna", nil, nil)
	e.Department = nil

	assert.False(t, search.Matches(e, cond(search.FieldDepartment, search.OpIs, "IT"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldDepartment, search.OpIsNot, "IT"), testNow))

	e.Department = strPtr("IT")
	assert.True(t, search.Matches(e, cond(search.FieldDepartment, search.OpIs, "IT"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldDepartment, search.OpIsNot, "IT"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldDepartment, search.OpIsNot, "Sales"), testNow))
	assert.True(t, search.Matches(e, search.Condition{
		Field:    search.FieldDepartment,
		Operator: search.OpIn,
		Value:    search.NewListValue("Sales", "IT"),
	}, testNow))
}

func TestMatchContractFieldLiftsToEmployee(t *testing.T) {
	e := makeEmployee("anna", nil, []models.Contract{
		activeContract("Frontend Developer"),
		closedContract("QA Engineer"),
	})

	// Совпадение по любому контракту, в том числе завершённому.
	assert.True(t, search.Matches(e, cond(search.FieldPosition, search.OpIs, "QA Engineer"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldPosition, search.OpContains, "developer"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldPosition, search.OpIs, "Designer"), testNow))

	empty := makeEmployee("boris", nil, nil)
	assert.False(t, search.Matches(empty, cond(search.FieldPosition, search.OpContains, "developer"), testNow))
}

func TestMatchContractsCount(t *testing.T) {
	e := makeEmployee("anna", nil, []models.Contract{
		activeContract("A"), closedContract("B"), closedContract("C"),
	})

	assert.True(t, search.Matches(e, cond(search.FieldContractsCount, search.OpEquals, "3"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldContractsCount, search.OpGreaterThan, "2"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldContractsCount, search.OpLessThan, "3"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldContractsCount, search.OpBetween, "2-5"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldContractsCount, search.OpBetween, "4-5"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldContractsCount, search.OpEquals, "не число"), testNow))
}

func TestMatchActiveContractsNullEndDateIsActive(t *testing.T) {
	open := makeEmployee("anna", nil, []models.Contract{
		{ID: uuid.New(), StartDate: testNow.AddDate(-2, 0, 0)},
	})
	closed := makeEmployee("boris", nil, []models.Contract{closedContract("X")})

	assert.True(t, search.Matches(open, cond(search.FieldActiveContracts, search.OpHas, ""), testNow))
	assert.False(t, search.Matches(open, cond(search.FieldActiveContracts, search.OpNo, ""), testNow))
	assert.True(t, search.Matches(closed, cond(search.FieldActiveContracts, search.OpNo, ""), testNow))
	assert.True(t, search.Matches(open, cond(search.FieldActiveContracts, search.OpCount, "1"), testNow))
	assert.False(t, search.Matches(open, cond(search.FieldActiveContracts, search.OpCount, "2"), testNow))
}

func TestMatchExperienceYearsFloorEquals(t *testing.T) {
	e := makeEmployee("anna", nil, nil)
	// 3.8 года стажа: equals сравнивает целую часть.
	start := testNow.Add(-time.Duration(3.8 * 365 * 24 * float64(time.Hour)))
	e.GeneralExperienceStart = &start

	assert.True(t, search.Matches(e, cond(search.FieldExperienceYears, search.OpEquals, "3"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldExperienceYears, search.OpEquals, "4"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldExperienceYears, search.OpGreaterThan, "3.5"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldExperienceYears, search.OpLessThan, "4"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldExperienceYears, search.OpBetween, "3-4"), testNow))

	// Без даты начала стажа ни одно сравнение не проходит.
	e.GeneralExperienceStart = nil
	assert.False(t, search.Matches(e, cond(search.FieldExperienceYears, search.OpGreaterThan, "0"), testNow))
}

func TestMatchContractDateWindows(t *testing.T) {
	e := makeEmployee("anna", nil, []models.Contract{
		{
			ID:        uuid.New(),
			StartDate: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   timePtr(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)),
		},
	})

	assert.True(t, search.Matches(e, cond(search.FieldContractDate, search.OpActiveIn, "2023-01-01,2023-12-31"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldContractDate, search.OpStartedIn, "2023-01-01,2023-06-30"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldContractDate, search.OpStartedIn, "2023-06-01,2023-12-31"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldContractDate, search.OpEndedIn, "2023-06-01,2023-12-31"), testNow))

	// Историческая форма с шестью токенами через дефис.
	assert.True(t, search.Matches(e, cond(search.FieldContractDate, search.OpActiveIn, "2023-01-01-2023-12-31"), testNow))

	// Нечитаемое окно - fail closed.
	assert.False(t, search.Matches(e, cond(search.FieldContractDate, search.OpActiveIn, "когда-нибудь"), testNow))

	// Контракт без даты окончания активен в любом окне после старта.
	open := makeEmployee("boris", nil, []models.Contract{
		{ID: uuid.New(), StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	assert.True(t, search.Matches(open, cond(search.FieldContractDate, search.OpActiveIn, "2024-01-01,2024-12-31"), testNow))
	assert.False(t, search.Matches(open, cond(search.FieldContractDate, search.OpEndedIn, "2024-01-01,2024-12-31"), testNow))
}

func TestMatchDiplomaNotHasVacuouslyTrue(t *testing.T) {
	without := makeEmployee("anna", nil, nil)
	assert.True(t, search.Matches(without, cond(search.FieldDiploma, search.OpNotHas, "PhD"), testNow))
	assert.False(t, search.Matches(without, cond(search.FieldDiploma, search.OpHas, "PhD"), testNow))
	assert.False(t, search.Matches(without, cond(search.FieldDiploma, search.OpContains, "ph"), testNow))

	with := makeEmployee("boris", nil, nil)
	with.Diplomas = []models.Diploma{
		{ID: uuid.New(), Name: "PhD Computer Science", Issuer: "MSU", IssueDate: testNow.AddDate(-2, 0, 0)},
	}
	assert.True(t, search.Matches(with, cond(search.FieldDiploma, search.OpContains, "phd"), testNow))
	assert.False(t, search.Matches(with, cond(search.FieldDiploma, search.OpHas, "PhD"), testNow))
	assert.True(t, search.Matches(with, cond(search.FieldDiploma, search.OpHas, "phd computer science"), testNow))
	assert.False(t, search.Matches(with, cond(search.FieldDiploma, search.OpNotHas, "phd computer science"), testNow))
}

func TestMatchDiplomaIssuer(t *testing.T) {
	e := makeEmployee("anna", nil, nil)
	e.Diplomas = []models.Diploma{
		{ID: uuid.New(), Name: "MSc", Issuer: "Bauman University", IssueDate: testNow.AddDate(-4, 0, 0)},
	}

	assert.True(t, search.Matches(e, cond(search.FieldDiplomaIssuer, search.OpIs, "Bauman University"), testNow))
	assert.True(t, search.Matches(e, cond(search.FieldDiplomaIssuer, search.OpContains, "bauman"), testNow))
	assert.False(t, search.Matches(e, cond(search.FieldDiplomaIssuer, search.OpIs, "MSU"), testNow))
	assert.True(t, search.Matches(e, search.Condition{
		Field:    search.FieldDiplomaIssuer,
		Operator: search.OpIn,
		Value:    search.NewListValue("MSU", "Bauman University"),
	}, testNow))
}
