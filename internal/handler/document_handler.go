package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billkit/internal/domain"
	"billkit/internal/service"
)

// DocumentHandler handles document editing and persistence endpoints. The
// editor endpoints operate on the single current document owned by the
// DocumentService.
type DocumentHandler struct {
	documentService service.DocumentService
	mailerService   service.MailerService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService, mailerService service.MailerService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, mailerService: mailerService}
}

// CreateNew handles POST /api/v1/editor/new
// @Summary Start editing a new document
// @Description Create a fresh document of the given type with defaults from company settings and make it the current document
// @Tags editor
// @Accept json
// @Produce json
// @Param request body NewDocumentRequest true "Document type"
// @Success 201 {object} Response{data=domain.Document} "New current document"
// @Failure 400 {object} ErrorResponseBody "Invalid document type"
// @Security BearerAuth
// @Router /editor/new [post]
func (h *DocumentHandler) CreateNew(c *gin.Context) {
	var req struct {
		Type domain.DocumentType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "type is required")
		return
	}

	doc, err := h.documentService.CreateNew(c.Request.Context(), req.Type)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// Current handles GET /api/v1/editor
// @Summary Get the current document
// @Tags editor
// @Produce json
// @Success 200 {object} Response{data=domain.Document} "Current document"
// @Failure 404 {object} ErrorResponseBody "No document is being edited"
// @Security BearerAuth
// @Router /editor [get]
func (h *DocumentHandler) Current(c *gin.Context) {
	doc := h.documentService.Current()
	if doc == nil {
		RespondError(c, http.StatusNotFound, "NO_CURRENT_DOCUMENT", "no document is being edited")
		return
	}
	RespondOK(c, doc)
}

// AddLineItem handles POST /api/v1/editor/items
// @Summary Add a line item
// @Description Append an empty line item (quantity 1, rate 0, default GST rate) and re-fold totals
// @Tags editor
// @Produce json
// @Success 200 {object} Response{data=domain.Document} "Updated document"
// @Failure 409 {object} ErrorResponseBody "No document is being edited"
// @Security BearerAuth
// @Router /editor/items [post]
func (h *DocumentHandler) AddLineItem(c *gin.Context) {
	doc, err := h.documentService.AddLineItem(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// UpdateLineItem handles PATCH /api/v1/editor/items/:id
// @Summary Update a line item
// @Description Patch a line item's fields; numeric edits re-run the line calculation and totals fold
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Line item ID (UUID)"
// @Param request body service.LineItemPatch true "Fields to change"
// @Success 200 {object} Response{data=domain.Document} "Updated document"
// @Failure 404 {object} ErrorResponseBody "Line item not found"
// @Security BearerAuth
// @Router /editor/items/{id} [patch]
func (h *DocumentHandler) UpdateLineItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid line item ID")
		return
	}

	var patch service.LineItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doc, err := h.documentService.UpdateLineItem(c.Request.Context(), itemID, patch)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// RemoveLineItem handles DELETE /api/v1/editor/items/:id
// @Summary Remove a line item
// @Tags editor
// @Produce json
// @Param id path string true "Line item ID (UUID)"
// @Success 200 {object} Response{data=domain.Document} "Updated document"
// @Failure 404 {object} ErrorResponseBody "Line item not found"
// @Security BearerAuth
// @Router /editor/items/{id} [delete]
func (h *DocumentHandler) RemoveLineItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid line item ID")
		return
	}

	doc, err := h.documentService.RemoveLineItem(c.Request.Context(), itemID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// UpdateDiscount handles PUT /api/v1/editor/discount
// @Summary Set the document discount
// @Tags editor
// @Accept json
// @Produce json
// @Param request body service.DiscountInput true "Discount type and value"
// @Success 200 {object} Response{data=domain.Document} "Updated document"
// @Failure 400 {object} ErrorResponseBody "Invalid discount type"
// @Security BearerAuth
// @Router /editor/discount [put]
func (h *DocumentHandler) UpdateDiscount(c *gin.Context) {
	var input service.DiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doc, err := h.documentService.UpdateDiscount(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// UpdateShipping handles PUT /api/v1/editor/shipping
// @Summary Set the shipping charges
// @Tags editor
// @Accept json
// @Produce json
// @Param request body service.ShippingInput true "Shipping charges"
// @Success 200 {object} Response{data=domain.Document} "Updated document"
// @Security BearerAuth
// @Router /editor/shipping [put]
func (h *DocumentHandler) UpdateShipping(c *gin.Context) {
	var input service.ShippingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doc, err := h.documentService.UpdateShipping(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// ApplyField handles PUT /api/v1/editor/field
// @Summary Update one document field
// @Description Apply a single tagged field update; place-of-supply and client changes re-split every line's tax
// @Tags editor
// @Accept json
// @Produce json
// @Param request body service.FieldCommand true "Field op and value"
// @Success 200 {object} Response{data=domain.Document} "Updated document"
// @Failure 400 {object} ErrorResponseBody "Unknown field op"
// @Security BearerAuth
// @Router /editor/field [put]
func (h *DocumentHandler) ApplyField(c *gin.Context) {
	var cmd service.FieldCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doc, err := h.documentService.ApplyField(c.Request.Context(), cmd)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Validate handles GET /api/v1/editor/validate
// @Summary Validate the current document
// @Tags editor
// @Produce json
// @Success 200 {object} Response{data=ValidationResponse} "Validation issues (empty when saveable)"
// @Security BearerAuth
// @Router /editor/validate [get]
func (h *DocumentHandler) Validate(c *gin.Context) {
	issues := h.documentService.Validate()
	RespondOK(c, gin.H{"valid": len(issues) == 0, "issues": issues})
}

// Save handles POST /api/v1/editor/save
// @Summary Save the current document
// @Description Persist the current document; the type counter advances only on the first save
// @Tags editor
// @Produce json
// @Success 200 {object} Response{data=domain.Document} "Saved document"
// @Failure 409 {object} ErrorResponseBody "No document is being edited"
// @Failure 422 {object} ErrorResponseBody "Document failed validation"
// @Security BearerAuth
// @Router /editor/save [post]
func (h *DocumentHandler) Save(c *gin.Context) {
	doc, err := h.documentService.Save(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Load handles POST /api/v1/editor/load/:id
// @Summary Load a saved document into the editor
// @Tags editor
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.Document} "Loaded document"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /editor/load/{id} [post]
func (h *DocumentHandler) Load(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.Load(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Discard handles POST /api/v1/editor/discard
// @Summary Discard the current document
// @Tags editor
// @Produce json
// @Success 200 {object} Response{data=MessageResponse} "Discarded"
// @Security BearerAuth
// @Router /editor/discard [post]
func (h *DocumentHandler) Discard(c *gin.Context) {
	h.documentService.Discard()
	RespondOK(c, gin.H{"message": "document discarded"})
}

// List handles GET /api/v1/documents
// @Summary List saved documents
// @Tags documents
// @Produce json
// @Param type query string false "Filter by document type"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} Response{data=[]domain.Document} "Documents"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	docType := domain.DocumentType(c.Query("type"))
	if docType != "" && !domain.ValidDocumentType(docType) {
		RespondError(c, http.StatusBadRequest, "INVALID_DOCUMENT_TYPE", "invalid document type")
		return
	}
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", 20)

	docs, total, err := h.documentService.List(c.Request.Context(), docType, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Page: page, PageSize: pageSize})
}

// GetByID handles GET /api/v1/documents/:id
// @Summary Get a saved document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.Document} "Document"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.documentService.Get(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// Delete handles DELETE /api/v1/documents/:id
// @Summary Delete a saved document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), docID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "document deleted"})
}

// Email handles POST /api/v1/documents/:id/email
// @Summary Email a saved document
// @Description Send a summary of the document to the client's email (or an override address)
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body service.EmailDocumentInput false "Optional recipient override"
// @Success 200 {object} Response{data=MessageResponse} "Sent"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 422 {object} ErrorResponseBody "Client has no email address"
// @Security BearerAuth
// @Router /documents/{id}/email [post]
func (h *DocumentHandler) Email(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var input service.EmailDocumentInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
	}

	if err := h.mailerService.EmailDocument(c.Request.Context(), docID, input); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "document emailed"})
}
