package handler

import (
	"github.com/gin-gonic/gin"

	"billkit/internal/domain"
)

// MetaHandler serves the fixed vocabularies the front-end builds its pickers
// from.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// DocumentTypes handles GET /api/v1/meta/document-types
// @Summary List document types
// @Description List every document type with its capability flags and category
// @Tags meta
// @Produce json
// @Success 200 {object} Response{data=[]domain.DocumentTypeConfig} "Document types"
// @Security BearerAuth
// @Router /meta/document-types [get]
func (h *MetaHandler) DocumentTypes(c *gin.Context) {
	RespondOK(c, domain.DocumentTypes)
}

// Vocabularies handles GET /api/v1/meta/vocabularies
// @Summary List fixed vocabularies
// @Description GST rates, Indian states, payment terms and modes, currencies, and template styles
// @Tags meta
// @Produce json
// @Success 200 {object} Response "Vocabularies"
// @Security BearerAuth
// @Router /meta/vocabularies [get]
func (h *MetaHandler) Vocabularies(c *gin.Context) {
	RespondOK(c, gin.H{
		"gst_rates":     domain.GSTRates,
		"states":        domain.IndianStates,
		"payment_terms": domain.PaymentTerms,
		"payment_modes": domain.PaymentModes,
		"currencies": []domain.CurrencyCode{
			domain.CurrencyINR, domain.CurrencyUSD, domain.CurrencyEUR,
			domain.CurrencyGBP, domain.CurrencyAED, domain.CurrencySAR,
			domain.CurrencyAUD, domain.CurrencyCAD, domain.CurrencySGD,
			domain.CurrencyJPY,
		},
		"templates": []domain.TemplateStyle{
			domain.TemplateMinimal, domain.TemplateCorporate, domain.TemplateModern,
			domain.TemplateTraditional, domain.TemplateService, domain.TemplateElegant,
			domain.TemplateCompact, domain.TemplateDetailed,
		},
	})
}
