package search

import (
	"strconv"
	"strings"
	"time"
)

// parseNumber разбирает число из строки условия.
func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseInt разбирает целое из строки условия.
func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseNumberRange разбирает диапазон вида "min-max", унаследованный от
// кодирования формы. Обе границы обязательны, диапазон включительный.
func parseNumberRange(raw string) (min, max float64, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	min, okMin := parseNumber(parts[0])
	max, okMax := parseNumber(parts[1])
	if !okMin || !okMax {
		return 0, 0, false
	}
	return min, max, true
}

// parseDateWindow разбирает окно дат условия contract_date.
//
// Основной формат — две ISO даты через запятую: "2023-01-01,2023-12-31".
// Историческое кодирование склеивало даты дефисом, что неоднозначно,
// потому что ISO дата сама содержит два дефиса. Такую форму принимаем
// только когда она распадается ровно на шесть токенов: первые три — начало
// окна, последние три — конец. Всё остальное считаем нечитаемым: условие
// тогда не совпадает ни с кем (fail closed).
func parseDateWindow(raw string) (from, to time.Time, ok bool) {
	raw = strings.TrimSpace(raw)

	var first, second string
	if strings.Contains(raw, ",") {
		parts := strings.SplitN(raw, ",", 2)
		first, second = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	} else {
		tokens := strings.Split(raw, "-")
		if len(tokens) != 6 {
			return time.Time{}, time.Time{}, false
		}
		first = strings.Join(tokens[:3], "-")
		second = strings.Join(tokens[3:], "-")
	}

	from, errFrom := time.Parse("2006-01-02", first)
	to, errTo := time.Parse("2006-01-02", second)
	if errFrom != nil || errTo != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
