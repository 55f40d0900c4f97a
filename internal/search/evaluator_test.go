package search_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/search"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// makeEmployee собирает сотрудника для тестов.
func makeEmployee(name string, skills []models.Skill, contracts []models.Contract) models.Employee {
	id := uuid.New()
	for i := range skills {
		skills[i].EmployeeID = id
	}
	for i := range contracts {
		contracts[i].EmployeeID = id
	}
	return models.Employee{
		ID:        id,
		Name:      name,
		Email:     name + "@example.com",
		Skills:    skills,
		Contracts: contracts,
	}
}

func activeContract(position string) models.Contract {
	return models.Contract{
		ID:        uuid.New(),
		Position:  strPtr(position),
		StartDate: testNow.AddDate(-1, 0, 0),
	}
}

func closedContract(position string) models.Contract {
	return models.Contract{
		ID:        uuid.New(),
		Position:  strPtr(position),
		StartDate: testNow.AddDate(-3, 0, 0),
		EndDate:   timePtr(testNow.AddDate(-1, 0, 0)),
	}
}

func names(result search.Result) []string {
	out := make([]string, 0, len(result.Employees))
	for _, e := range result.Employees {
		out = append(out, e.Name)
	}
	return out
}

func TestEvaluateNoConditionsReturnsEverything(t *testing.T) {
	snapshot := []models.Employee{
		makeEmployee("anna", nil, nil),
		makeEmployee("boris", nil, nil),
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate(snapshot, nil)

	assert.Equal(t, 2, result.Total)
}

func TestEvaluateSkipsEmptyConditions(t *testing.T) {
	snapshot := []models.Employee{
		makeEmployee("anna", []models.Skill{{Name: "Go", Level: models.SkillLevelExpert}}, nil),
		makeEmployee("boris", nil, nil),
	}

	conditions := []search.Condition{
		{Field: search.FieldName, Operator: search.OpContains, Value: search.NewValue("")},
		{Field: search.FieldSkills, Operator: search.OpHasAny, Value: search.NewValue("   ")},
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate(snapshot, conditions)

	// Оба условия пустые - фильтрация не применяется.
	assert.Equal(t, 2, result.Total)
}

func TestEvaluateAndIntersection(t *testing.T) {
	snapshot := []models.Employee{
		makeEmployee("anna", []models.Skill{{Name: "Go", Level: models.SkillLevelExpert}}, []models.Contract{activeContract("Developer")}),
		makeEmployee("boris", []models.Skill{{Name: "Go", Level: models.SkillLevelBeginner}}, nil),
		makeEmployee("vera", []models.Skill{{Name: "Java", Level: models.SkillLevelExpert}}, []models.Contract{activeContract("Developer")}),
	}

	conditions := []search.Condition{
		{Field: search.FieldSkills, Operator: search.OpHasAny, Value: search.NewValue("Go")},
		{Field: search.FieldActiveContracts, Operator: search.OpHas, LogicalOperator: search.LogicalAnd},
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate(snapshot, conditions)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "anna", result.Employees[0].Name)
}

func TestEvaluateOrReintroducesExcluded(t *testing.T) {
	snapshot := []models.Employee{
		makeEmployee("anna", []models.Skill{{Name: "Go", Level: models.SkillLevelExpert}}, nil),
		makeEmployee("boris", []models.Skill{{Name: "Java", Level: models.SkillLevelExpert}}, nil),
	}

	// Первое условие исключает boris, но OR по Java возвращает его обратно:
	// каждое условие вычисляется против полного снимка.
	conditions := []search.Condition{
		{Field: search.FieldSkills, Operator: search.OpHasAny, Value: search.NewValue("Go")},
		{Field: search.FieldSkills, Operator: search.OpHasAny, Value: search.NewValue("Java"), LogicalOperator: search.LogicalOr},
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate(snapshot, conditions)

	assert.Equal(t, 2, result.Total)
	assert.ElementsMatch(t, []string{"anna", "boris"}, names(result))
}

func TestEvaluateRankingPrefersRicherProfiles(t *testing.T) {
	rich := makeEmployee("rich", []models.Skill{
		{Name: "Go", Level: models.SkillLevelExpert},
		{Name: "SQL", Level: models.SkillLevelIntermediate},
	}, []models.Contract{activeContract("Developer"), activeContract("Consultant")})

	poor := makeEmployee("poor", []models.Skill{
		{Name: "Go", Level: models.SkillLevelBeginner},
	}, nil)

	snapshot := []models.Employee{poor, rich}

	conditions := []search.Condition{
		{Field: search.FieldSkills, Operator: search.OpHasAny, Value: search.NewValue("Go")},
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate(snapshot, conditions)

	require.Equal(t, 2, result.Total)
	assert.Equal(t, "rich", result.Employees[0].Name)
	assert.Equal(t, "poor", result.Employees[1].Name)
}

func TestEvaluateStableOrderOnEqualScores(t *testing.T) {
	first := makeEmployee("first", nil, nil)
	second := makeEmployee("second", nil, nil)
	third := makeEmployee("third", nil, nil)
	snapshot := []models.Employee{first, second, third}

	conditions := []search.Condition{
		{Field: search.FieldName, Operator: search.OpContains, Value: search.NewValue("ir")},
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate(snapshot, conditions)

	// Оценки равны - порядок снимка сохраняется.
	require.Equal(t, 2, result.Total)
	assert.Equal(t, []string{"first", "third"}, names(result))
}

func TestEvaluateProjectionCaps(t *testing.T) {
	contracts := []models.Contract{
		activeContract("A"), activeContract("B"), activeContract("C"),
		activeContract("D"), closedContract("old"),
	}
	e := makeEmployee("anna", nil, contracts)
	e.Diplomas = []models.Diploma{
		{ID: uuid.New(), EmployeeID: e.ID, Name: "PhD", Issuer: "MSU", IssueDate: testNow.AddDate(-1, 0, 0)},
		{ID: uuid.New(), EmployeeID: e.ID, Name: "MSc", Issuer: "MSU", IssueDate: testNow.AddDate(-3, 0, 0)},
		{ID: uuid.New(), EmployeeID: e.ID, Name: "BSc", Issuer: "MSU", IssueDate: testNow.AddDate(-5, 0, 0)},
	}

	conditions := []search.Condition{
		{Field: search.FieldActiveContracts, Operator: search.OpHas},
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate([]models.Employee{e}, conditions)

	require.Equal(t, 1, result.Total)
	p := result.Employees[0]
	assert.Equal(t, 5, p.ContractsCount)
	assert.Equal(t, 4, p.ActiveContractsCount)
	assert.Len(t, p.ActiveContracts, 3)
	assert.Equal(t, 3, p.DiplomasCount)
	require.Len(t, p.Diplomas, 2)
	assert.Equal(t, "PhD", p.Diplomas[0].Name)
	assert.Equal(t, "MSc", p.Diplomas[1].Name)
}

func TestEvaluateEndToEndScenario(t *testing.T) {
	dev := makeEmployee("dev", []models.Skill{
		{Name: "React", Level: models.SkillLevelExpert},
		{Name: "TypeScript", Level: models.SkillLevelIntermediate},
	}, []models.Contract{activeContract("Frontend Developer")})

	veteran := makeEmployee("veteran", []models.Skill{
		{Name: "React", Level: models.SkillLevelIntermediate},
	}, []models.Contract{closedContract("Frontend Developer")})

	backend := makeEmployee("backend", []models.Skill{
		{Name: "Go", Level: models.SkillLevelExpert},
	}, []models.Contract{activeContract("Backend Developer")})

	snapshot := []models.Employee{dev, veteran, backend}

	// react AND действующий контракт, затем OR возвращает всех с Go.
	conditions := []search.Condition{
		{Field: search.FieldSkills, Operator: search.OpHasAny, Value: search.NewValue("react")},
		{Field: search.FieldActiveContracts, Operator: search.OpHas, Value: search.NewValue(""), LogicalOperator: search.LogicalAnd},
		{Field: search.FieldSkills, Operator: search.OpHasAny, Value: search.NewValue("Go"), LogicalOperator: search.LogicalOr},
	}

	ev := search.NewEvaluatorAt(testNow)
	result := ev.Evaluate(snapshot, conditions)

	assert.Equal(t, 2, result.Total)
	assert.ElementsMatch(t, []string{"dev", "backend"}, names(result))
	assert.Len(t, result.QuerySummary, 3)
}
