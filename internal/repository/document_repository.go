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

// ErrDocumentNotFound возвращается, когда документ не найден.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository отвечает за метаданные загруженных документов сотрудников.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository создаёт экземпляр репозитория.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create сохраняет метаданные документа.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (employee_id, file_name, file_path, mime_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, uploaded_at
	`
	if err := r.db.QueryRowxContext(
		ctx, query,
		doc.EmployeeID, doc.FileName, doc.FilePath, doc.MimeType, doc.SizeBytes,
	).Scan(&doc.ID, &doc.UploadedAt); err != nil {
		return fmt.Errorf("document repository: не удалось создать запись: %w", err)
	}
	return nil
}

// GetByID возвращает документ по идентификатору.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	query := `
		SELECT id, employee_id, file_name, file_path, mime_type, size_bytes, uploaded_at
		FROM documents
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("document repository: не удалось получить запись: %w", err)
	}
	return &doc, nil
}

// ListByEmployee возвращает документы сотрудника.
func (r *DocumentRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	query := `
		SELECT id, employee_id, file_name, file_path, mime_type, size_bytes, uploaded_at
		FROM documents
		WHERE employee_id = $1
		ORDER BY uploaded_at DESC
	`
	if err := r.db.SelectContext(ctx, &docs, query, employeeID); err != nil {
		return nil, fmt.Errorf("document repository: не удалось получить документы: %w", err)
	}
	return docs, nil
}

// Delete удаляет метаданные документа.
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("document repository: не удалось удалить запись: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("document repository: не удалось получить число удалённых строк: %w", err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
