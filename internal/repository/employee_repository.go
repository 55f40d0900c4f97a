package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/hr-directory/internal/models"
)

// ErrEmployeeNotFound возвращается, когда запись сотрудника не найдена.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository отвечает за таблицы employees, contracts, skills и diplomas.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository создаёт экземпляр репозитория.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// LoadSnapshot читает полный снимок каталога: всех сотрудников вместе с
// контрактами, навыками и дипломами. Снимок потребляет поисковый вычислитель,
// поэтому дипломы сразу отсортированы по дате выдачи по убыванию.
func (r *EmployeeRepository) LoadSnapshot(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	query := `
		SELECT id, name, email, department, company, contract_type, general_experience_start, created_at, updated_at
		FROM employees
		ORDER BY created_at, id
	`
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось загрузить снимок: %w", err)
	}

	if len(employees) == 0 {
		return employees, nil
	}

	index := make(map[uuid.UUID]int, len(employees))
	for i := range employees {
		index[employees[i].ID] = i
	}

	var contracts []models.Contract
	query = `
		SELECT id, employee_id, position, location, beneficiary, start_date, end_date
		FROM contracts
		ORDER BY employee_id, start_date
	`
	if err := r.db.SelectContext(ctx, &contracts, query); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось загрузить контракты: %w", err)
	}
	for _, contract := range contracts {
		if i, ok := index[contract.EmployeeID]; ok {
			employees[i].Contracts = append(employees[i].Contracts, contract)
		}
	}

	var skills []models.Skill
	query = `
		SELECT id, employee_id, name, level
		FROM skills
		ORDER BY employee_id, name
	`
	if err := r.db.SelectContext(ctx, &skills, query); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось загрузить навыки: %w", err)
	}
	for _, skill := range skills {
		if i, ok := index[skill.EmployeeID]; ok {
			employees[i].Skills = append(employees[i].Skills, skill)
		}
	}

	var diplomas []models.Diploma
	query = `
		SELECT id, employee_id, name, issuer, issue_date
		FROM diplomas
		ORDER BY employee_id, issue_date DESC
	`
	if err := r.db.SelectContext(ctx, &diplomas, query); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось загрузить дипломы: %w", err)
	}
	for _, diploma := range diplomas {
		if i, ok := index[diploma.EmployeeID]; ok {
			employees[i].Diplomas = append(employees[i].Diplomas, diploma)
		}
	}

	return employees, nil
}

// List возвращает страницу сотрудников без вложенных коллекций.
func (r *EmployeeRepository) List(ctx context.Context, limit, offset int) ([]models.Employee, error) {
	var employees []models.Employee
	query := `
		SELECT id, name, email, department, company, contract_type, general_experience_start, created_at, updated_at
		FROM employees
		ORDER BY name
		LIMIT $1 OFFSET $2
	`
	if err := r.db.SelectContext(ctx, &employees, query, limit, offset); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось получить список: %w", err)
	}
	return employees, nil
}

// Count возвращает количество сотрудников в каталоге.
func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM employees`); err != nil {
		return 0, fmt.Errorf("employee repository: не удалось посчитать записи: %w", err)
	}
	return count, nil
}

// GetByID возвращает сотрудника со всеми вложенными коллекциями.
func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	query := `
		SELECT id, name, email, department, company, contract_type, general_experience_start, created_at, updated_at
		FROM employees
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &employee, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("employee repository: не удалось получить запись: %w", err)
	}

	query = `
		SELECT id, employee_id, position, location, beneficiary, start_date, end_date
		FROM contracts WHERE employee_id = $1 ORDER BY start_date
	`
	if err := r.db.SelectContext(ctx, &employee.Contracts, query, id); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось получить контракты: %w", err)
	}

	query = `SELECT id, employee_id, name, level FROM skills WHERE employee_id = $1 ORDER BY name`
	if err := r.db.SelectContext(ctx, &employee.Skills, query, id); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось получить навыки: %w", err)
	}

	query = `
		SELECT id, employee_id, name, issuer, issue_date
		FROM diplomas WHERE employee_id = $1 ORDER BY issue_date DESC
	`
	if err := r.db.SelectContext(ctx, &employee.Diplomas, query, id); err != nil {
		return nil, fmt.Errorf("employee repository: не удалось получить дипломы: %w", err)
	}

	return &employee, nil
}

// Create создаёт сотрудника вместе с вложенными коллекциями в одной транзакции.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("employee repository: не удалось начать транзакцию: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO employees (name, email, department, company, contract_type, general_experience_start)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRowxContext(
		ctx, query,
		employee.Name, employee.Email, employee.Department, employee.Company,
		employee.ContractType, employee.GeneralExperienceStart,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt); err != nil {
		return fmt.Errorf("employee repository: не удалось создать запись: %w", err)
	}

	if err := r.insertChildren(ctx, tx, employee); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("employee repository: не удалось зафиксировать транзакцию: %w", err)
	}
	return nil
}

// Update обновляет сотрудника и полностью перезаписывает вложенные коллекции.
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("employee repository: не удалось начать транзакцию: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE employees
		SET name = $2, email = $3, department = $4, company = $5, contract_type = $6,
			general_experience_start = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	if err := tx.QueryRowxContext(
		ctx, query,
		employee.ID, employee.Name, employee.Email, employee.Department,
		employee.Company, employee.ContractType, employee.GeneralExperienceStart,
	).Scan(&employee.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("employee repository: не удалось обновить запись: %w", err)
	}

	for _, table := range []string{"contracts", "skills", "diplomas"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE employee_id = $1`, table), employee.ID); err != nil {
			return fmt.Errorf("employee repository: не удалось очистить %s: %w", table, err)
		}
	}

	if err := r.insertChildren(ctx, tx, employee); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("employee repository: не удалось зафиксировать транзакцию: %w", err)
	}
	return nil
}

// Delete удаляет сотрудника; вложенные записи удаляются каскадом.
func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("employee repository: не удалось удалить запись: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("employee repository: не удалось получить число удалённых строк: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// CountByDepartment возвращает численность по подразделениям.
func (r *EmployeeRepository) CountByDepartment(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT COALESCE(department, '') AS department, COUNT(*) AS total
		FROM employees
		GROUP BY department
	`)
	if err != nil {
		return nil, fmt.Errorf("employee repository: не удалось посчитать по отделам: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var department string
		var total int
		if err := rows.Scan(&department, &total); err != nil {
			return nil, fmt.Errorf("employee repository: не удалось прочитать строку статистики: %w", err)
		}
		counts[department] = total
	}
	return counts, rows.Err()
}

// CountActiveContracts возвращает число действующих контрактов в каталоге.
func (r *EmployeeRepository) CountActiveContracts(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM contracts WHERE end_date IS NULL OR end_date > NOW()`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("employee repository: не удалось посчитать действующие контракты: %w", err)
	}
	return count, nil
}

// insertChildren вставляет вложенные коллекции сотрудника.
func (r *EmployeeRepository) insertChildren(ctx context.Context, tx *sqlx.Tx, employee *models.Employee) error {
	for i := range employee.Contracts {
		contract := &employee.Contracts[i]
		contract.EmployeeID = employee.ID
		query := `
			INSERT INTO contracts (employee_id, position, location, beneficiary, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		if err := tx.QueryRowxContext(
			ctx, query,
			contract.EmployeeID, contract.Position, contract.Location,
			contract.Beneficiary, contract.StartDate, contract.EndDate,
		).Scan(&contract.ID); err != nil {
			return fmt.Errorf("employee repository: не удалось вставить контракт: %w", err)
		}
	}

	for i := range employee.Skills {
		skill := &employee.Skills[i]
		skill.EmployeeID = employee.ID
		query := `INSERT INTO skills (employee_id, name, level) VALUES ($1, $2, $3) RETURNING id`
		if err := tx.QueryRowxContext(ctx, query, skill.EmployeeID, skill.Name, skill.Level).Scan(&skill.ID); err != nil {
			return fmt.Errorf("employee repository: не удалось вставить навык: %w", err)
		}
	}

	for i := range employee.Diplomas {
		diploma := &employee.Diplomas[i]
		diploma.EmployeeID = employee.ID
		query := `INSERT INTO diplomas (employee_id, name, issuer, issue_date) VALUES ($1, $2, $3, $4) RETURNING id`
		if err := tx.QueryRowxContext(ctx, query, diploma.EmployeeID, diploma.Name, diploma.Issuer, diploma.IssueDate).Scan(&diploma.ID); err != nil {
			return fmt.Errorf("employee repository: не удалось вставить диплом: %w", err)
		}
	}

	return nil
}
