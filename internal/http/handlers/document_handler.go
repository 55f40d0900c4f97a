package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/hr-directory/internal/http/handlers/common"
	"github.com/ignatzorin/hr-directory/internal/models"
	"github.com/ignatzorin/hr-directory/internal/repository"
	"github.com/ignatzorin/hr-directory/internal/storage"
)

// DocumentHandler предоставляет HTTP слой документов сотрудников
// (сканы дипломов, контрактов и прочие файлы).
type DocumentHandler struct {
	docs        *repository.DocumentRepository
	employees   *repository.EmployeeRepository
	fileStorage *storage.DocumentStorage
}

// NewDocumentHandler создаёт хэндлер.
func NewDocumentHandler(docs *repository.DocumentRepository, employees *repository.EmployeeRepository, fileStorage *storage.DocumentStorage) *DocumentHandler {
	return &DocumentHandler{
		docs:        docs,
		employees:   employees,
		fileStorage: fileStorage,
	}
}

// Upload обрабатывает POST /api/employees/:id/documents.
// Принимает multipart/form-data с полем file.
func (h *DocumentHandler) Upload(c *gin.Context) {
	employeeID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	// Сотрудник должен существовать до записи файла на диск.
	if _, err := h.employees.GetByID(c.Request.Context(), employeeID); err != nil {
		c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.RespondBadRequest(c, "файл обязателен")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.RespondInternalError(c, "не удалось открыть загруженный файл")
		return
	}
	defer file.Close()

	relativePath, mimeType, size, err := h.fileStorage.Save(c.Request.Context(), employeeID, fileHeader.Filename, file)
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	doc := &models.Document{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		FileName:   fileHeader.Filename,
		FilePath:   relativePath,
		MimeType:   mimeType,
		SizeBytes:  size,
	}

	if err := h.docs.Create(c.Request.Context(), doc); err != nil {
		// Метаданные не записались - убираем файл, чтобы не копить сирот.
		_ = h.fileStorage.Delete(c.Request.Context(), relativePath)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// List обрабатывает GET /api/employees/:id/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	employeeID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	docs, err := h.docs.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// Download обрабатывает GET /api/documents/:id - отдаёт файл.
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	doc, err := h.docs.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	reader, err := h.fileStorage.Open(doc.FilePath)
	if err != nil {
		common.RespondNotFound(c, "файл не найден в хранилище")
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Type", doc.MimeType)
	_, _ = io.Copy(c.Writer, reader)
}

// Delete обрабатывает DELETE /api/documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	doc, err := h.docs.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.docs.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	if err := h.fileStorage.Delete(c.Request.Context(), doc.FilePath); err != nil {
		// Метаданные уже удалены, файл подчистим позже вручную.
		c.JSON(http.StatusOK, gin.H{"message": "документ удалён, файл не найден на диске"})
		return
	}

	common.RespondSuccess(c, http.StatusOK, "документ удалён", nil)
}
