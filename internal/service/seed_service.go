package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/repository"
)

// SeedService генерирует тестовый каталог сотрудников для разработки.
type SeedService struct {
	employeeRepo *repository.EmployeeRepository
	userRepo     *repository.UserRepository
	dictRepo     *repository.DictionaryRepository
}

// NewSeedService создаёт сервис генерации данных.
func NewSeedService(employeeRepo *repository.EmployeeRepository, userRepo *repository.UserRepository, dictRepo *repository.DictionaryRepository) *SeedService {
	return &SeedService{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		dictRepo:     dictRepo,
	}
}

var (
	seedFirstNames = []string{
		"Александр", "Дмитрий", "Максим", "Сергей", "Андрей", "Алексей", "Артём", "Илья",
		"Анна", "Мария", "Елена", "Ольга", "Татьяна", "Наталья", "Ирина", "Светлана",
	}
	seedLastNames = []string{
		"Иванов", "Петров", "Смирнов", "Козлов", "Соколов", "Попов", "Лебедев", "Новиков",
		"Морозов", "Волков", "Васильев", "Зайцев", "Павлов", "Семёнов", "Фёдоров", "Белов",
	}
	seedDepartments = []string{"Разработка", "Тестирование", "Аналитика", "Продажи", "Кадры"}
	seedCompanies   = []string{"ГлавИТ", "ТехноСофт", "ДатаЛаб"}
	seedTypes       = []string{"Штатный", "Подряд", "Стажировка"}
	seedPositions   = []string{"Инженер", "Старший инженер", "Аналитик", "Тимлид", "Консультант"}
	seedLocations   = []string{"Москва", "Санкт-Петербург", "Казань", "Новосибирск", "Удалённо"}
	seedClients     = []string{"Банк Восход", "СтройХолдинг", "РитейлГрупп", "ГосЗаказ"}
	seedSkills      = []string{
		"Go", "PostgreSQL", "React", "TypeScript", "Docker", "Kubernetes",
		"Python", "SQL", "Kafka", "Linux", "CI/CD", "REST API",
	}
	seedLevels   = []string{models.SkillLevelBeginner, models.SkillLevelIntermediate, models.SkillLevelExpert}
	seedDiplomas = []struct{ name, issuer string }{
		{"Бакалавр прикладной информатики", "МГУ"},
		{"Магистр программной инженерии", "СПбГУ"},
		{"MBA", "ВШЭ"},
		{"Сертификат AWS Solutions Architect", "Amazon"},
		{"Сертификат CKA", "CNCF"},
	}
)

// SeedData генерирует справочники, администратора и сотрудников.
func (s *SeedService) SeedData(ctx context.Context, numEmployees int) error {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := s.seedDictionaries(ctx); err != nil {
		return fmt.Errorf("seed service: справочники: %w", err)
	}

	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed service: администратор: %w", err)
	}

	for i := 0; i < numEmployees; i++ {
		employee := s.generateEmployee(rnd, i)
		if err := s.employeeRepo.Create(ctx, employee); err != nil {
			return fmt.Errorf("seed service: сотрудник %d: %w", i, err)
		}
	}

	return nil
}

// seedDictionaries наполняет справочники выпадающих списков.
func (s *SeedService) seedDictionaries(ctx context.Context) error {
	sets := map[string][]string{
		models.DictionaryDepartment:   seedDepartments,
		models.DictionaryCompany:      seedCompanies,
		models.DictionaryContractType: seedTypes,
		models.DictionaryPosition:     seedPositions,
		models.DictionarySkill:        seedSkills,
	}

	for dictType, values := range sets {
		existing, err := s.dictRepo.ListByType(ctx, dictType)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		for i, value := range values {
			dv := &models.DictionaryValue{Type: dictType, Value: value, SortOrder: i}
			if err := s.dictRepo.Create(ctx, dv); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedAdmin создаёт администратора по умолчанию, если его ещё нет.
func (s *SeedService) seedAdmin(ctx context.Context) error {
	if _, err := s.userRepo.GetByEmail(ctx, "admin@example.com"); err == nil {
		return nil
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        "admin@example.com",
		Username:     "admin",
		PasswordHash: string(passHash),
		Role:         models.RoleAdmin,
	}
	return s.userRepo.Create(ctx, admin)
}

// generateEmployee собирает случайного сотрудника с контрактами,
// навыками и дипломами.
func (s *SeedService) generateEmployee(rnd *rand.Rand, i int) *models.Employee {
	name := fmt.Sprintf("%s %s", seedFirstNames[rnd.Intn(len(seedFirstNames))], seedLastNames[rnd.Intn(len(seedLastNames))])
	email := fmt.Sprintf("employee%d@example.com", i)

	department := seedDepartments[rnd.Intn(len(seedDepartments))]
	company := seedCompanies[rnd.Intn(len(seedCompanies))]
	contractType := seedTypes[rnd.Intn(len(seedTypes))]
	expStart := time.Now().AddDate(-1-rnd.Intn(15), -rnd.Intn(12), 0)

	employee := &models.Employee{
		Name:                   name,
		Email:                  email,
		Department:             &department,
		Company:                &company,
		ContractType:           &contractType,
		GeneralExperienceStart: &expStart,
	}

	numContracts := rnd.Intn(4)
	for c := 0; c < numContracts; c++ {
		position := seedPositions[rnd.Intn(len(seedPositions))]
		location := seedLocations[rnd.Intn(len(seedLocations))]
		beneficiary := seedClients[rnd.Intn(len(seedClients))]
		start := time.Now().AddDate(0, -rnd.Intn(48), 0)

		contract := models.Contract{
			Position:    &position,
			Location:    &location,
			Beneficiary: &beneficiary,
			StartDate:   start,
		}
		// Примерно половина контрактов уже завершена.
		if rnd.Intn(2) == 0 {
			end := start.AddDate(0, 6+rnd.Intn(18), 0)
			contract.EndDate = &end
		}
		employee.Contracts = append(employee.Contracts, contract)
	}

	numSkills := 1 + rnd.Intn(6)
	used := make(map[string]bool)
	for len(employee.Skills) < numSkills {
		skillName := seedSkills[rnd.Intn(len(seedSkills))]
		if used[skillName] {
			continue
		}
		used[skillName] = true
		employee.Skills = append(employee.Skills, models.Skill{
			Name:  skillName,
			Level: seedLevels[rnd.Intn(len(seedLevels))],
		})
	}

	numDiplomas := rnd.Intn(3)
	for d := 0; d < numDiplomas; d++ {
		diploma := seedDiplomas[rnd.Intn(len(seedDiplomas))]
		employee.Diplomas = append(employee.Diplomas, models.Diploma{
			Name:      diploma.name,
			Issuer:    diploma.issuer,
			IssueDate: time.Now().AddDate(-rnd.Intn(10), 0, 0),
		})
	}

	return employee
}
