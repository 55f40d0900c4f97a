package search

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field перечисляет поддерживаемые поля условий поиска.
type Field string

const (
	FieldName            Field = "name"
	FieldSkills          Field = "skills"
	FieldSkillLevel      Field = "skill_level"
	FieldDepartment      Field = "department"
	FieldCompany         Field = "company"
	FieldPosition        Field = "position"
	FieldLocation        Field = "location"
	FieldBeneficiary     Field = "beneficiary"
	FieldContractType    Field = "contract_type"
	FieldContractsCount  Field = "contracts_count"
	FieldActiveContracts Field = "active_contracts"
	FieldExperienceYears Field = "experience_years"
	FieldContractDate    Field = "contract_date"
	FieldDiploma         Field = "diploma"
	FieldDiplomaIssuer   Field = "diploma_issuer"
)

// Operator перечисляет операторы условий. Допустимый набор зависит от поля.
type Operator string

const (
	OpContains    Operator = "contains"
	OpExact       Operator = "exact"
	OpStartsWith  Operator = "starts_with"
	OpEndsWith    Operator = "ends_with"
	OpHasAny      Operator = "has_any"
	OpHasAll      Operator = "has_all"
	OpNotHas      Operator = "not_has"
	OpIs          Operator = "is"
	OpIsNot       Operator = "is_not"
	OpIn          Operator = "in"
	OpAtLeast     Operator = "at_least"
	OpEquals      Operator = "equals"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	OpBetween     Operator = "between"
	OpHas         Operator = "has"
	OpNo          Operator = "no"
	OpCount       Operator = "count"
	OpActiveIn    Operator = "active_in"
	OpStartedIn   Operator = "started_in"
	OpEndedIn     Operator = "ended_in"
)

// Логические связки условий.
const (
	LogicalAnd = "AND"
	LogicalOr  = "OR"
)

// fieldOperators задаёт допустимые операторы для каждого поля.
// Первый оператор списка считается оператором по умолчанию для поля.
var fieldOperators = map[Field][]Operator{
	FieldName:            {OpContains, OpExact, OpStartsWith, OpEndsWith},
	FieldSkills:          {OpHasAny, OpHasAll, OpNotHas},
	FieldSkillLevel:      {OpIs, OpAtLeast},
	FieldDepartment:      {OpIs, OpIsNot, OpIn},
	FieldCompany:         {OpIs, OpIsNot, OpIn},
	FieldPosition:        {OpIs, OpContains, OpIn},
	FieldLocation:        {OpIs, OpContains, OpIn},
	FieldBeneficiary:     {OpIs, OpContains, OpIn},
	FieldContractType:    {OpIs, OpIn},
	FieldContractsCount:  {OpEquals, OpGreaterThan, OpLessThan, OpBetween},
	FieldActiveContracts: {OpHas, OpNo, OpCount},
	FieldExperienceYears: {OpEquals, OpGreaterThan, OpLessThan, OpBetween},
	FieldContractDate:    {OpActiveIn, OpStartedIn, OpEndedIn},
	FieldDiploma:         {OpHas, OpNotHas, OpContains},
	FieldDiplomaIssuer:   {OpIs, OpContains, OpIn},
}

// Fields возвращает список поддерживаемых полей.
func Fields() []Field {
	fields := make([]Field, 0, len(fieldOperators))
	for f := range fieldOperators {
		fields = append(fields, f)
	}
	return fields
}

// OperatorsFor возвращает допустимые операторы поля. Для неизвестного поля — nil.
func OperatorsFor(f Field) []Operator {
	return fieldOperators[f]
}

// Supported сообщает, реализована ли пара (поле, оператор).
// Неизвестные комбинации не считаются ошибкой: при вычислении они дают
// "нет совпадений", чтобы устаревшее состояние клиента не ломало весь запрос.
func Supported(f Field, op Operator) bool {
	for _, known := range fieldOperators[f] {
		if op == known {
			return true
		}
	}
	return false
}

// Value хранит значение условия: либо одна строка, либо список строк.
// Формы пишут обе разновидности, поэтому разбираем JSON вручную.
type Value struct {
	single string
	list   []string
	isList bool
}

// NewValue создаёт одиночное значение.
func NewValue(s string) Value {
	return Value{single: s}
}

// NewListValue создаёт значение-список.
func NewListValue(items ...string) Value {
	return Value{list: items, isList: true}
}

// UnmarshalJSON принимает строку или массив строк.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{single: s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*v = Value{list: list, isList: true}
		return nil
	}

	return fmt.Errorf("search: значение условия должно быть строкой или списком строк")
}

// MarshalJSON сериализует значение в исходную форму.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.single)
}

// IsEmpty сообщает, что значение отсутствует: пустая строка или пустой список.
// Непустой список из одних пустых строк тоже считается отсутствующим.
func (v Value) IsEmpty() bool {
	if v.isList {
		for _, item := range v.list {
			if strings.TrimSpace(item) != "" {
				return false
			}
		}
		return true
	}
	return strings.TrimSpace(v.single) == ""
}

// String возвращает одиночное значение. Для списка — первый непустой элемент.
func (v Value) String() string {
	if !v.isList {
		return strings.TrimSpace(v.single)
	}
	for _, item := range v.list {
		if s := strings.TrimSpace(item); s != "" {
			return s
		}
	}
	return ""
}

// List возвращает значение как список строк. Одиночная строка с запятыми
// разбивается по запятой — так формы кодируют мультивыбор.
func (v Value) List() []string {
	var raw []string
	if v.isList {
		raw = v.list
	} else {
		raw = strings.Split(v.single, ",")
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Condition описывает одно условие поиска, добавленное пользователем.
// LogicalOperator определяет, как условие сворачивается с накопленным
// результатом предыдущих условий; для первого условия он игнорируется.
type Condition struct {
	Field           Field    `json:"field"`
	Operator        Operator `json:"operator"`
	Value           Value    `json:"value"`
	LogicalOperator string   `json:"logicalOperator"`
}

// Skip сообщает, что условие не участвует в фильтрации (пустое значение).
// Исключение — active_contracts: операторы has/no значения не требуют.
func (c Condition) Skip() bool {
	if c.Field == FieldActiveContracts && (c.Operator == OpHas || c.Operator == OpNo) {
		return false
	}
	return c.Value.IsEmpty()
}

// Normalize приводит связку к AND/OR, по умолчанию AND.
func (c Condition) Normalize() Condition {
	switch strings.ToUpper(strings.TrimSpace(c.LogicalOperator)) {
	case LogicalOr:
		c.LogicalOperator = LogicalOr
	default:
		c.LogicalOperator = LogicalAnd
	}
	return c
}
