package search

import (
	"math"
	"strings"
	"time"

	"github.com/ignatzorin/hr-directory/internal/models"
)

// experienceYearDays — длина года для расчёта стажа в дробных годах.
const experienceYearDays = 365

// Matches вычисляет одно условие для одного сотрудника.
// Предикат чистый: не зависит от других условий и ничего не мутирует.
// Неизвестные комбинации (поле, оператор) и нечитаемые значения дают false,
// чтобы одно битое условие не обрушило весь многоусловный запрос.
func Matches(e models.Employee, c Condition, now time.Time) bool {
	if !Supported(c.Field, c.Operator) {
		return false
	}

	switch c.Field {
	case FieldName:
		return matchName(e, c)
	case FieldSkills:
		return matchSkills(e, c)
	case FieldSkillLevel:
		return matchSkillLevel(e, c)
	case FieldDepartment:
		return matchAttribute(e.Department, c)
	case FieldCompany:
		return matchAttribute(e.Company, c)
	case FieldPosition:
		return matchContractField(e, c, func(ct models.Contract) *string { return ct.Position })
	case FieldLocation:
		return matchContractField(e, c, func(ct models.Contract) *string { return ct.Location })
	case FieldBeneficiary:
		return matchContractField(e, c, func(ct models.Contract) *string { return ct.Beneficiary })
	case FieldContractType:
		return matchAttribute(e.ContractType, c)
	case FieldContractsCount:
		return matchNumeric(float64(len(e.Contracts)), c, false)
	case FieldActiveContracts:
		return matchActiveContracts(e, c, now)
	case FieldExperienceYears:
		return matchExperienceYears(e, c, now)
	case FieldContractDate:
		return matchContractDate(e, c)
	case FieldDiploma:
		return matchDiploma(e, c)
	case FieldDiplomaIssuer:
		return matchDiplomaIssuer(e, c)
	}

	return false
}

// matchName сравнивает значение с именем ИЛИ почтой без учёта регистра.
func matchName(e models.Employee, c Condition) bool {
	needle := strings.ToLower(c.Value.String())
	name := strings.ToLower(e.Name)
	email := strings.ToLower(e.Email)

	switch c.Operator {
	case OpContains:
		return strings.Contains(name, needle) || strings.Contains(email, needle)
	case OpExact:
		return name == needle || email == needle
	case OpStartsWith:
		return strings.HasPrefix(name, needle) || strings.HasPrefix(email, needle)
	case OpEndsWith:
		return strings.HasSuffix(name, needle) || strings.HasSuffix(email, needle)
	}
	return false
}

// matchSkills сравнивает запрошенные навыки с навыками сотрудника.
// Сопоставление — вхождение подстроки в имя навыка без учёта регистра:
// запрос "react" находит и "React", и "React Native".
func matchSkills(e models.Employee, c Condition) bool {
	wanted := c.Value.List()
	if len(wanted) == 0 {
		return false
	}

	hasSkill := func(want string) bool {
		want = strings.ToLower(want)
		for _, skill := range e.Skills {
			if strings.Contains(strings.ToLower(skill.Name), want) {
				return true
			}
		}
		return false
	}

	switch c.Operator {
	case OpHasAny, OpNotHas:
		any := false
		for _, want := range wanted {
			if hasSkill(want) {
				any = true
				break
			}
		}
		if c.Operator == OpNotHas {
			return !any
		}
		return any
	case OpHasAll:
		for _, want := range wanted {
			if !hasSkill(want) {
				return false
			}
		}
		return true
	}
	return false
}

// skillLevelOrdinal переводит уровень навыка в порядковый номер.
// Неизвестный уровень получает 0 и не проходит ни одно сравнение at_least.
func skillLevelOrdinal(level string) int {
	switch level {
	case models.SkillLevelBeginner:
		return 1
	case models.SkillLevelIntermediate:
		return 2
	case models.SkillLevelExpert:
		return 3
	}
	return 0
}

// matchSkillLevel сравнивает уровни навыков сотрудника с запрошенным.
func matchSkillLevel(e models.Employee, c Condition) bool {
	requested := c.Value.String()

	switch c.Operator {
	case OpIs:
		for _, skill := range e.Skills {
			if skill.Level == requested {
				return true
			}
		}
		return false
	case OpAtLeast:
		want := skillLevelOrdinal(requested)
		if want == 0 {
			return false
		}
		for _, skill := range e.Skills {
			if skillLevelOrdinal(skill.Level) >= want {
				return true
			}
		}
		return false
	}
	return false
}

// matchAttribute сравнивает одиночный nullable атрибут сотрудника.
// Отсутствующее значение не совпадает ни с одним оператором, включая is_not.
func matchAttribute(attr *string, c Condition) bool {
	if attr == nil {
		return false
	}

	switch c.Operator {
	case OpIs:
		return *attr == c.Value.String()
	case OpIsNot:
		return *attr != c.Value.String()
	case OpIn:
		for _, want := range c.Value.List() {
			if *attr == want {
				return true
			}
		}
		return false
	}
	return false
}

// matchContractField поднимает поле контракта на уровень сотрудника:
// совпадение есть, если хотя бы один контракт несёт подходящее значение.
// Пустой список контрактов или сплошные NULL — нет совпадения.
func matchContractField(e models.Employee, c Condition, pick func(models.Contract) *string) bool {
	values := make([]string, 0, len(e.Contracts))
	for _, contract := range e.Contracts {
		if v := pick(contract); v != nil {
			values = append(values, *v)
		}
	}
	if len(values) == 0 {
		return false
	}

	switch c.Operator {
	case OpIs:
		want := c.Value.String()
		for _, v := range values {
			if v == want {
				return true
			}
		}
	case OpContains:
		want := strings.ToLower(c.Value.String())
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), want) {
				return true
			}
		}
	case OpIn:
		wanted := c.Value.List()
		for _, v := range values {
			for _, want := range wanted {
				if v == want {
					return true
				}
			}
		}
	}
	return false
}

// matchNumeric сравнивает числовую характеристику с закодированным значением.
// При floorEquals сравнение equals берёт целую часть характеристики —
// так исторически считается стаж.
func matchNumeric(actual float64, c Condition, floorEquals bool) bool {
	switch c.Operator {
	case OpEquals:
		target, ok := parseInt(c.Value.String())
		if !ok {
			return false
		}
		if floorEquals {
			return int(math.Floor(actual)) == target
		}
		return actual == float64(target)
	case OpGreaterThan:
		target, ok := parseNumber(c.Value.String())
		return ok && actual > target
	case OpLessThan:
		target, ok := parseNumber(c.Value.String())
		return ok && actual < target
	case OpBetween:
		min, max, ok := parseNumberRange(c.Value.String())
		return ok && actual >= min && actual <= max
	}
	return false
}

// matchActiveContracts проверяет действующие контракты.
// Контракт без даты окончания считается действующим.
func matchActiveContracts(e models.Employee, c Condition, now time.Time) bool {
	active := 0
	for _, contract := range e.Contracts {
		if contract.Active(now) {
			active++
		}
	}

	switch c.Operator {
	case OpHas:
		return active > 0
	case OpNo:
		return active == 0
	case OpCount:
		target, ok := parseInt(c.Value.String())
		return ok && active == target
	}
	return false
}

// matchExperienceYears сравнивает стаж сотрудника с условием.
// Стаж дробный и не округляется; только equals сравнивает целую часть.
func matchExperienceYears(e models.Employee, c Condition, now time.Time) bool {
	if e.GeneralExperienceStart == nil {
		return false
	}

	years := now.Sub(*e.GeneralExperienceStart).Hours() / (24 * experienceYearDays)
	return matchNumeric(years, c, true)
}

// matchContractDate проверяет попадание контрактов в запрошенное окно дат.
// Нечитаемое окно — нет совпадений.
func matchContractDate(e models.Employee, c Condition) bool {
	from, to, ok := parseDateWindow(c.Value.String())
	if !ok {
		return false
	}

	for _, contract := range e.Contracts {
		switch c.Operator {
		case OpActiveIn:
			// Интервал контракта [start, end ?? +inf] пересекается с окном.
			if !contract.StartDate.After(to) && (contract.EndDate == nil || !contract.EndDate.Before(from)) {
				return true
			}
		case OpStartedIn:
			if !contract.StartDate.Before(from) && !contract.StartDate.After(to) {
				return true
			}
		case OpEndedIn:
			if contract.EndDate != nil && !contract.EndDate.Before(from) && !contract.EndDate.After(to) {
				return true
			}
		}
	}
	return false
}

// matchDiploma сравнивает названия дипломов.
// У сотрудника без дипломов not_has тривиально истинно, остальное ложно.
func matchDiploma(e models.Employee, c Condition) bool {
	want := strings.ToLower(c.Value.String())

	has := false
	for _, diploma := range e.Diplomas {
		if strings.ToLower(diploma.Name) == want {
			has = true
			break
		}
	}

	switch c.Operator {
	case OpHas:
		return has
	case OpNotHas:
		return !has
	case OpContains:
		for _, diploma := range e.Diplomas {
			if strings.Contains(strings.ToLower(diploma.Name), want) {
				return true
			}
		}
		return false
	}
	return false
}

// matchDiplomaIssuer сравнивает издателей дипломов.
func matchDiplomaIssuer(e models.Employee, c Condition) bool {
	switch c.Operator {
	case OpIs:
		want := c.Value.String()
		for _, diploma := range e.Diplomas {
			if diploma.Issuer == want {
				return true
			}
		}
	case OpContains:
		want := strings.ToLower(c.Value.String())
		for _, diploma := range e.Diplomas {
			if strings.Contains(strings.ToLower(diploma.Issuer), want) {
				return true
			}
		}
	case OpIn:
		wanted := c.Value.List()
		for _, diploma := range e.Diplomas {
			for _, want := range wanted {
				if diploma.Issuer == want {
					return true
				}
			}
		}
	}
	return false
}
