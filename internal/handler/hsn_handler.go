package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billkit/internal/service"
)

// HSNHandler handles HSN/SAC master lookup endpoints.
type HSNHandler struct {
	hsnService service.HSNService
}

// NewHSNHandler creates a new HSNHandler.
func NewHSNHandler(hsnService service.HSNService) *HSNHandler {
	return &HSNHandler{hsnService: hsnService}
}

// Search handles GET /api/v1/hsn?q=...
// @Summary Search HSN/SAC codes
// @Description Search the HSN/SAC master list by code or description (minimum 2 characters)
// @Tags hsn
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results (default 20, max 50)"
// @Success 200 {object} Response{data=[]port.HSNEntry} "Matching entries"
// @Security BearerAuth
// @Router /hsn [get]
func (h *HSNHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "q query parameter is required")
		return
	}

	entries, err := h.hsnService.Search(c.Request.Context(), query, intQuery(c, "limit", 20))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}

// GetByCode handles GET /api/v1/hsn/:code
// @Summary Get an HSN/SAC code
// @Tags hsn
// @Produce json
// @Param code path string true "HSN/SAC code"
// @Success 200 {object} Response{data=port.HSNEntry} "Entry"
// @Failure 404 {object} ErrorResponseBody "Code not found"
// @Security BearerAuth
// @Router /hsn/{code} [get]
func (h *HSNHandler) GetByCode(c *gin.Context) {
	entry, err := h.hsnService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entry)
}
