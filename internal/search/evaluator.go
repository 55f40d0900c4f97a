package search

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/hr-directory/internal/models"
)

// Лимиты проекции результата.
const (
	maxProjectedContracts = 3
	maxProjectedDiplomas  = 2
)

// ContractSummary — краткая проекция действующего контракта в ответе.
type ContractSummary struct {
	Position    *string    `json:"position,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Beneficiary *string    `json:"beneficiary,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// DiplomaSummary — краткая проекция диплома в ответе.
type DiplomaSummary struct {
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	IssueDate time.Time `json:"issue_date"`
}

// ProjectedEmployee — форма сотрудника в результате поиска.
type ProjectedEmployee struct {
	ID                   uuid.UUID         `json:"id"`
	Name                 string            `json:"name"`
	Email                string            `json:"email"`
	Department           *string           `json:"department,omitempty"`
	Company              *string           `json:"company,omitempty"`
	ContractType         *string           `json:"contract_type,omitempty"`
	ContractsCount       int               `json:"contracts_count"`
	ActiveContractsCount int               `json:"active_contracts_count"`
	ActiveContracts      []ContractSummary `json:"active_contracts"`
	Skills               []models.Skill    `json:"skills"`
	DiplomasCount        int               `json:"diplomas_count"`
	Diplomas             []DiplomaSummary  `json:"diplomas"`
}

// Result — итог вычисления запроса.
type Result struct {
	Employees    []ProjectedEmployee `json:"employees"`
	Total        int                 `json:"total"`
	QuerySummary []Condition         `json:"query_summary"`
}

// Evaluator вычисляет цепочку условий над снимком сотрудников.
// Состояния между запросами нет: каждый вызов работает со свежим снимком.
type Evaluator struct {
	now func() time.Time
}

// NewEvaluator создаёт вычислитель с системными часами.
func NewEvaluator() *Evaluator {
	return &Evaluator{now: time.Now}
}

// NewEvaluatorAt создаёт вычислитель с фиксированным "сейчас" (для тестов).
func NewEvaluatorAt(now time.Time) *Evaluator {
	return &Evaluator{now: func() time.Time { return now }}
}

// Evaluate выполняет поиск: каждое условие вычисляется независимо против
// ПОЛНОГО снимка, после чего множества совпадений сворачиваются слева
// направо связками AND (пересечение) и OR (объединение). Пересчёт против
// полного снимка вместо последовательной фильтрации — осознанное решение:
// OR-условие может вернуть сотрудников, исключённых более ранним AND.
func (ev *Evaluator) Evaluate(employees []models.Employee, conditions []Condition) Result {
	now := ev.now()

	applied := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		if c.Skip() {
			continue
		}
		applied = append(applied, c.Normalize())
	}

	// Без действующих условий фильтрация не применяется: весь снимок.
	var matched map[uuid.UUID]bool
	if len(applied) == 0 {
		matched = make(map[uuid.UUID]bool, len(employees))
		for _, e := range employees {
			matched[e.ID] = true
		}
	} else {
		matched = ev.fold(employees, applied, now)
	}

	// Членство материализуем проходом по снимку в исходном порядке:
	// это даёт детерминированный порядок при равных оценках.
	result := make([]ProjectedEmployee, 0, len(matched))
	scores := make(map[uuid.UUID]int, len(matched))
	for _, e := range employees {
		if !matched[e.ID] {
			continue
		}
		projected := project(e, now)
		scores[e.ID] = relevanceScore(projected)
		result = append(result, projected)
	}

	// Больше данных и больше действующих контрактов — выше в выдаче.
	sort.SliceStable(result, func(i, j int) bool {
		return scores[result[i].ID] > scores[result[j].ID]
	})

	return Result{
		Employees:    result,
		Total:        len(result),
		QuerySummary: conditions,
	}
}

// fold сворачивает множества совпадений условий слева направо.
func (ev *Evaluator) fold(employees []models.Employee, conditions []Condition, now time.Time) map[uuid.UUID]bool {
	acc := ev.matchSet(employees, conditions[0], now)

	for _, c := range conditions[1:] {
		set := ev.matchSet(employees, c, now)
		if c.LogicalOperator == LogicalOr {
			for id := range set {
				acc[id] = true
			}
			continue
		}
		for id := range acc {
			if !set[id] {
				delete(acc, id)
			}
		}
	}

	return acc
}

// matchSet вычисляет одно условие против полного снимка.
func (ev *Evaluator) matchSet(employees []models.Employee, c Condition, now time.Time) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool)
	for _, e := range employees {
		if Matches(e, c, now) {
			set[e.ID] = true
		}
	}
	return set
}

// relevanceScore — эвристика ранжирования результата.
func relevanceScore(p ProjectedEmployee) int {
	return p.ContractsCount + len(p.Skills) + 2*p.ActiveContractsCount
}

// project собирает ответную форму сотрудника: счётчики, до трёх действующих
// контрактов и до двух последних дипломов. Дипломы в снимке уже отсортированы
// по дате выдачи по убыванию.
func project(e models.Employee, now time.Time) ProjectedEmployee {
	p := ProjectedEmployee{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Department:     e.Department,
		Company:        e.Company,
		ContractType:   e.ContractType,
		ContractsCount: len(e.Contracts),
		Skills:         e.Skills,
		DiplomasCount:  len(e.Diplomas),
	}

	for _, contract := range e.Contracts {
		if !contract.Active(now) {
			continue
		}
		p.ActiveContractsCount++
		if len(p.ActiveContracts) < maxProjectedContracts {
			p.ActiveContracts = append(p.ActiveContracts, ContractSummary{
				Position:    contract.Position,
				Location:    contract.Location,
				Beneficiary: contract.Beneficiary,
				StartDate:   contract.StartDate,
				EndDate:     contract.EndDate,
			})
		}
	}

	for i, diploma := range e.Diplomas {
		if i >= maxProjectedDiplomas {
			break
		}
		p.Diplomas = append(p.Diplomas, DiplomaSummary{
			Name:      diploma.Name,
			Issuer:    diploma.Issuer,
			IssueDate: diploma.IssueDate,
		})
	}

	return p
}
