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

// ErrDictionaryValueNotFound возвращается, когда значение справочника не найдено.
var ErrDictionaryValueNotFound = errors.New("dictionary value not found")

// DictionaryRepository отвечает за таблицу dictionary_values —
// значения выпадающих списков форм (отделы, компании, типы контрактов и т.д.).
type DictionaryRepository struct {
	db *sqlx.DB
}

// NewDictionaryRepository создаёт экземпляр репозитория.
func NewDictionaryRepository(db *sqlx.DB) *DictionaryRepository {
	return &DictionaryRepository{db: db}
}

// ListByType возвращает значения справочника указанного типа.
func (r *DictionaryRepository) ListByType(ctx context.Context, dictType string) ([]models.DictionaryValue, error) {
	var values []models.DictionaryValue
	query := `
		SELECT id, type, value, sort_order, created_at, updated_at
		FROM dictionary_values
		WHERE type = $1
		ORDER BY sort_order, value
	`
	if err := r.db.SelectContext(ctx, &values, query, dictType); err != nil {
		return nil, fmt.Errorf("dictionary repository: не удалось получить значения: %w", err)
	}
	return values, nil
}

// Create добавляет значение в справочник.
func (r *DictionaryRepository) Create(ctx context.Context, value *models.DictionaryValue) error {
	query := `
		INSERT INTO dictionary_values (type, value, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	if err := r.db.QueryRowxContext(
		ctx, query,
		value.Type, value.Value, value.SortOrder,
	).Scan(&value.ID, &value.CreatedAt, &value.UpdatedAt); err != nil {
		return fmt.Errorf("dictionary repository: не удалось создать запись: %w", err)
	}
	return nil
}

// Update изменяет значение справочника.
func (r *DictionaryRepository) Update(ctx context.Context, value *models.DictionaryValue) error {
	query := `
		UPDATE dictionary_values
		SET value = $2, sort_order = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	if err := r.db.QueryRowxContext(ctx, query, value.ID, value.Value, value.SortOrder).Scan(&value.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDictionaryValueNotFound
		}
		return fmt.Errorf("dictionary repository: не удалось обновить запись: %w", err)
	}
	return nil
}

// Delete удаляет значение справочника.
func (r *DictionaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dictionary_values WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("dictionary repository: не удалось удалить запись: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("dictionary repository: не удалось получить число удалённых строк: %w", err)
	}
	if affected == 0 {
		return ErrDictionaryValueNotFound
	}
	return nil
}
