package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billkit/internal/domain"
	"billkit/internal/service"
)

// ReportHandler handles reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseFilters extracts the shared report filters from query parameters.
func parseFilters(c *gin.Context) (*domain.ReportFilters, bool) {
	filters := &domain.ReportFilters{
		FromDate: c.Query("from"),
		ToDate:   c.Query("to"),
		Type:     domain.DocumentType(c.Query("type")),
	}
	if filters.Type != "" && !domain.ValidDocumentType(filters.Type) {
		RespondError(c, http.StatusBadRequest, "INVALID_DOCUMENT_TYPE", "invalid document type")
		return nil, false
	}
	return filters, true
}

// TaxSummary handles GET /api/v1/reports/tax-summary
// @Summary Tax summary by GST rate
// @Description Aggregate taxable value and CGST/SGST/IGST over all line items, grouped by GST rate slab
// @Tags reports
// @Produce json
// @Param from query string false "From date (yyyy-mm-dd)"
// @Param to query string false "To date (yyyy-mm-dd)"
// @Param type query string false "Filter by document type"
// @Success 200 {object} Response{data=[]domain.TaxSummaryRow} "Rows per GST rate"
// @Security BearerAuth
// @Router /reports/tax-summary [get]
func (h *ReportHandler) TaxSummary(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.TaxSummary(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// ClientLedger handles GET /api/v1/reports/clients/:id/ledger
// @Summary Per-client document ledger
// @Tags reports
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param from query string false "From date (yyyy-mm-dd)"
// @Param to query string false "To date (yyyy-mm-dd)"
// @Param type query string false "Filter by document type"
// @Success 200 {object} Response{data=[]domain.ClientLedgerRow} "Ledger rows"
// @Security BearerAuth
// @Router /reports/clients/{id}/ledger [get]
func (h *ReportHandler) ClientLedger(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid client ID")
		return
	}

	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.ClientLedger(c.Request.Context(), clientID, filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// MonthlySummary handles GET /api/v1/reports/monthly
// @Summary Monthly financial summary
// @Tags reports
// @Produce json
// @Param from query string false "From date (yyyy-mm-dd)"
// @Param to query string false "To date (yyyy-mm-dd)"
// @Param type query string false "Filter by document type"
// @Success 200 {object} Response{data=[]domain.MonthlySummaryRow} "Rows per month"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.MonthlySummary(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}

// TypeOverview handles GET /api/v1/reports/types
// @Summary Document type overview
// @Tags reports
// @Produce json
// @Param from query string false "From date (yyyy-mm-dd)"
// @Param to query string false "To date (yyyy-mm-dd)"
// @Success 200 {object} Response{data=[]domain.TypeOverviewRow} "Rows per document type"
// @Security BearerAuth
// @Router /reports/types [get]
func (h *ReportHandler) TypeOverview(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	rows, err := h.reportService.TypeOverview(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rows)
}
