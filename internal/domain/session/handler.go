package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brrrrleads/internal/pkg/response"
)

// Handler handles the personal-info modal confirmation.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ConfirmPersonal handles POST /api/v1/session/personal (public)
// @Summary Confirm personal info
// @Description Stores the visitor's contact block and returns a session token for submissions
// @Tags Session
// @Accept json
// @Produce json
// @Param request body PersonalInfo true "Personal info"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /session/personal [post]
func (h *Handler) ConfirmPersonal(c *gin.Context) {
	var info PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	_, token, err := h.service.Confirm(c.Request.Context(), info)
	if err != nil {
		if err == ErrInvalidPersonalInfo {
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_PERSONAL_INFO",
				"All fields are required and phone must have 10 digits")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
