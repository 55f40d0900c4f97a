package service

import (
	"context"
	"fmt"

	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/search"
)

// SnapshotLoader описывает зависимость поиска от слоя хранилища:
// один массовый запрос, возвращающий всех сотрудников с вложенными коллекциями.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) ([]models.Employee, error)
}

// SearchService выполняет поисковые запросы каталога сотрудников.
// Каждый вызов загружает свежий снимок и отбрасывает его после ответа —
// кэша между запросами нет.
type SearchService struct {
	repo      SnapshotLoader
	evaluator *search.Evaluator
}

// NewSearchService создаёт поисковый сервис.
func NewSearchService(repo SnapshotLoader) *SearchService {
	return &SearchService{
		repo:      repo,
		evaluator: search.NewEvaluator(),
	}
}

// Search вычисляет цепочку условий над каталогом.
// Пустой список условий — пустой результат без обращения к хранилищу.
func (s *SearchService) Search(ctx context.Context, conditions []search.Condition) (*search.Result, error) {
	if len(conditions) == 0 {
		return &search.Result{
			Employees:    []search.ProjectedEmployee{},
			QuerySummary: []search.Condition{},
		}, nil
	}

	snapshot, err := s.repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("search service: не удалось загрузить снимок каталога: %w", err)
	}

	result := s.evaluator.Evaluate(snapshot, conditions)
	return &result, nil
}
