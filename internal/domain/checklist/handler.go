package checklist

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brrrrleads/internal/pkg/response"
	"brrrrleads/internal/pkg/validator"
)

// Handler handles document-checklist HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Unlock handles POST /api/v1/checklist/unlock (public)
// @Summary Trade contact details for the checklist download
// @Description Captures the visitor's contact block, notifies the contact webhook and unlocks the download for this visitor
// @Tags Checklist
// @Accept json
// @Produce json
// @Param X-Visitor-ID header string false "Visitor ID from a previous unlock"
// @Param download query string false "Asset URL override"
// @Param request body UnlockRequest true "Contact details"
// @Success 200 {object} UnlockResponse
// @Failure 422 {object} map[string]any
// @Router /checklist/unlock [post]
func (h *Handler) Unlock(c *gin.Context) {
	var req UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	if req.Source == "" {
		req.Source = c.GetHeader("Referer")
	}

	visitorID := strings.TrimSpace(c.GetHeader("X-Visitor-ID"))
	res, err := h.service.Unlock(
		c.Request.Context(), &req, visitorID, c.Request.UserAgent(), c.Query("download"),
	)
	if err != nil {
		if errors.Is(err, ErrInvalidContact) {
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_CONTACT",
				"All fields are required and phone must have 10 digits")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Download handles GET /api/v1/checklist/download (public)
// @Summary Resolve the checklist asset URL
// @Description Returns the download URL for unlocked visitors; locked visitors must unlock first
// @Tags Checklist
// @Produce json
// @Param X-Visitor-ID header string true "Visitor ID from unlock"
// @Param download query string false "Asset URL override"
// @Success 200 {object} DownloadResponse
// @Failure 403 {object} map[string]any
// @Router /checklist/download [get]
func (h *Handler) Download(c *gin.Context) {
	visitorID := strings.TrimSpace(c.GetHeader("X-Visitor-ID"))

	url, err := h.service.DownloadURL(c.Request.Context(), visitorID, c.Query("download"))
	if err != nil {
		if errors.Is(err, ErrContactRequired) {
			response.Error(c, http.StatusForbidden, "CONTACT_REQUIRED",
				"Provide contact details to unlock the download")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, DownloadResponse{URL: url})
}

// UnlockCount handles GET /api/v1/admin/checklist/unlocks
// @Summary Count unlocked visitors
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router /admin/checklist/unlocks [get]
func (h *Handler) UnlockCount(c *gin.Context) {
	total, err := h.service.UnlockCount(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"total": total})
}
