package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"billkit/internal/domain"
	"billkit/internal/export"
	"billkit/internal/service"
)

// ExportHandler handles document export downloads.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CSV handles GET /api/v1/exports/csv
// @Summary Export documents as CSV
// @Description Download all saved documents (optionally one type) as a UTF-8 BOM CSV
// @Tags exports
// @Produce text/csv
// @Param type query string false "Filter by document type"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponseBody "Invalid document type"
// @Security BearerAuth
// @Router /exports/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	docType, ok := exportTypeFilter(c)
	if !ok {
		return
	}

	filename := export.BuildFilename(exportName(docType), "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.exportService.WriteCSV(c.Request.Context(), c.Writer, docType); err != nil {
		// Headers are already out; the truncated body signals failure.
		c.Abort()
	}
}

// XLSX handles GET /api/v1/exports/xlsx
// @Summary Export documents as XLSX
// @Description Download all saved documents (optionally one type) as an Excel workbook with a line item detail sheet
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param type query string false "Filter by document type"
// @Success 200 {string} string "XLSX file"
// @Failure 400 {object} ErrorResponseBody "Invalid document type"
// @Security BearerAuth
// @Router /exports/xlsx [get]
func (h *ExportHandler) XLSX(c *gin.Context) {
	docType, ok := exportTypeFilter(c)
	if !ok {
		return
	}

	f, err := h.exportService.BuildXLSX(c.Request.Context(), docType)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(exportName(docType), "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		c.Abort()
	}
}

func exportTypeFilter(c *gin.Context) (domain.DocumentType, bool) {
	docType := domain.DocumentType(c.Query("type"))
	if docType != "" && !domain.ValidDocumentType(docType) {
		RespondError(c, http.StatusBadRequest, "INVALID_DOCUMENT_TYPE", "invalid document type")
		return "", false
	}
	return docType, true
}

func exportName(docType domain.DocumentType) string {
	if docType == "" {
		return "documents"
	}
	return string(docType)
}
