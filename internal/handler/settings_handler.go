package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billkit/internal/service"
)

// SettingsHandler handles company settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/v1/settings
// @Summary Get company settings
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=domain.CompanySettings} "Company settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// Update handles PUT /api/v1/settings
// @Summary Update company settings
// @Description Update the seller profile; prefix changes merge over stored numbering state
// @Tags settings
// @Accept json
// @Produce json
// @Param request body service.SettingsInput true "Company details"
// @Success 200 {object} Response{data=domain.CompanySettings} "Updated settings"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Security BearerAuth
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var input service.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// UploadAsset handles POST /api/v1/settings/assets/:kind
// @Summary Upload the company logo or signature
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Asset kind: logo or signature"
// @Param file formData file true "Image file (png, jpg, webp)"
// @Success 200 {object} Response{data=domain.CompanySettings} "Updated settings"
// @Failure 400 {object} ErrorResponseBody "Unsupported image type"
// @Failure 413 {object} ErrorResponseBody "Image too large"
// @Security BearerAuth
// @Router /settings/assets/{kind} [post]
func (h *SettingsHandler) UploadAsset(c *gin.Context) {
	kind := service.AssetKind(c.Param("kind"))
	if kind != service.AssetLogo && kind != service.AssetSignature {
		RespondError(c, http.StatusBadRequest, "INVALID_ASSET_KIND", "asset kind must be logo or signature")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file form field is required")
		return
	}
	defer file.Close()

	settings, err := h.settingsService.UploadAsset(c.Request.Context(), service.AssetUploadInput{
		Kind:   kind,
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// AssetURL handles GET /api/v1/settings/assets/:kind
// @Summary Get a presigned URL for the company logo or signature
// @Tags settings
// @Produce json
// @Param kind path string true "Asset kind: logo or signature"
// @Success 200 {object} Response{data=AssetURLResponse} "Presigned URL"
// @Failure 404 {object} ErrorResponseBody "Asset not uploaded"
// @Security BearerAuth
// @Router /settings/assets/{kind} [get]
func (h *SettingsHandler) AssetURL(c *gin.Context) {
	kind := service.AssetKind(c.Param("kind"))
	if kind != service.AssetLogo && kind != service.AssetSignature {
		RespondError(c, http.StatusBadRequest, "INVALID_ASSET_KIND", "asset kind must be logo or signature")
		return
	}

	url, err := h.settingsService.AssetURL(c.Request.Context(), kind)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"url": url})
}
