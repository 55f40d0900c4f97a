package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/search"
	"github.com/ignatzorin/hr-directory/internal/service"
)

type mockSnapshotLoader struct {
	snapshot []models.Employee
	err      error
	calls    int
}

func (m *mockSnapshotLoader) LoadSnapshot(ctx context.Context) ([]models.Employee, error) {
	m.calls++
	return m.snapshot, m.err
}

func TestSearchEmptyConditionsSkipsRepository(t *testing.T) {
	loader := &mockSnapshotLoader{}
	svc := service.NewSearchService(loader)

	result, err := svc.Search(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Employees)
	assert.Empty(t, result.QuerySummary)
	assert.Equal(t, 0, loader.calls, "снимок не должен загружаться без условий")
}

func TestSearchLoadsFreshSnapshotPerCall(t *testing.T) {
	loader := &mockSnapshotLoader{
		snapshot: []models.Employee{
			{ID: uuid.New(), Name: "Анна", Email: "anna@corp.ru"},
			{ID: uuid.New(), Name: "Борис", Email: "boris@corp.ru"},
		},
	}
	svc := service.NewSearchService(loader)

	conditions := []search.Condition{
		{Field: search.FieldName, Operator: search.OpContains, Value: search.NewValue("анна")},
	}

	result, err := svc.Search(context.Background(), conditions)
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Анна", result.Employees[0].Name)

	_, err = svc.Search(context.Background(), conditions)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls)
}

func TestSearchPropagatesLoaderError(t *testing.T) {
	loader := &mockSnapshotLoader{err: errors.New("база недоступна")}
	svc := service.NewSearchService(loader)

	conditions := []search.Condition{
		{Field: search.FieldName, Operator: search.OpContains, Value: search.NewValue("анна")},
	}

	_, err := svc.Search(context.Background(), conditions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "база недоступна")
}
