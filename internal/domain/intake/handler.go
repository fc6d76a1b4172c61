package intake

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brrrrleads/internal/domain/session"
	"brrrrleads/internal/pkg/response"
)

// Handler handles loan-intake HTTP requests.
type Handler struct {
	service  *Service
	sessions *session.Service
}

func NewHandler(service *Service, sessions *session.Service) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// Submit handles POST /api/v1/intake/submit (public)
// @Summary Submit loan intake for instant pricing
// @Description Validates the conditional required-field set, posts the normalized payload to the pricing webhook and returns the classified verdict
// @Tags Intake
// @Accept json
// @Produce json
// @Param X-Session-Token header string false "Visitor session token"
// @Param request body SubmitRequest true "Form field values"
// @Success 200 {object} PricingVerdict
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Failure 428 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /intake/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	sessionID := c.GetString("session_id")
	issuedToken := ""

	var personal session.PersonalInfo
	if req.Personal != nil && req.Personal.Trimmed().Valid() {
		// Inline contact block: the modal was just confirmed. Remember
		// it for the rest of the session.
		personal = req.Personal.Trimmed()
		if sessionID == "" {
			id, token, err := h.sessions.Confirm(c.Request.Context(), personal)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
				return
			}
			sessionID = id
			issuedToken = token
		} else {
			h.sessions.Remember(c.Request.Context(), sessionID, personal)
		}
	} else {
		stored, ok := h.sessions.Resolve(c.Request.Context(), sessionID)
		if !ok {
			response.Error(c, http.StatusPreconditionRequired, "PERSONAL_INFO_REQUIRED",
				"Confirm personal info before requesting pricing")
			return
		}
		personal = stored
	}

	verdict, err := h.service.Submit(
		c.Request.Context(), sessionID, &req, personal, c.ClientIP(), c.Request.UserAgent(),
	)
	if err != nil {
		var missing *MissingFieldsError
		switch {
		case errors.As(err, &missing):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "MISSING_REQUIRED_FIELDS",
				"Required fields are blank for this loan/transaction combination",
				gin.H{"fields": missing.Fields})
		case errors.Is(err, ErrSubmitInFlight):
			response.Error(c, http.StatusConflict, "SUBMIT_IN_FLIGHT", "A submission is already in progress")
		case errors.Is(err, ErrPricingUnavailable):
			response.Error(c, http.StatusBadGateway, "PRICING_UNAVAILABLE", "Pricing service did not respond; please retry")
		case errors.Is(err, ErrInvalidLoanType), errors.Is(err, ErrInvalidTransactionType):
			response.Error(c, http.StatusBadRequest, "INVALID_SELECTION", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	data := gin.H{"verdict": verdict}
	if issuedToken != "" {
		data["sessionToken"] = issuedToken
	}
	response.Success(c, http.StatusOK, data)
}

// State handles GET /api/v1/intake/state (public)
// @Summary Submit-button state for the current session
// @Tags Intake
// @Produce json
// @Param X-Session-Token header string false "Visitor session token"
// @Success 200 {object} StateResponse
// @Router /intake/state [get]
func (h *Handler) State(c *gin.Context) {
	sessionID := c.GetString("session_id")
	response.Success(c, http.StatusOK, StateResponse{State: h.service.State(sessionID)})
}

// ListSubmissions handles GET /api/v1/admin/submissions
// @Summary List stored submissions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param loan-type query string false "Filter by loan type" Enums(DSCR, Fix & Flip)
// @Param validated query bool false "Filter by pricing outcome"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} SubmissionListResponse
// @Router /admin/submissions [get]
func (h *Handler) ListSubmissions(c *gin.Context) {
	var filter ListFilter
	if v := c.Query("loan-type"); v != "" {
		lt := LoanType(v)
		if !lt.Valid() {
			response.Error(c, http.StatusBadRequest, "INVALID_SELECTION", "Unknown loan type")
			return
		}
		filter.LoanType = &lt
	}
	if v := c.Query("validated"); v != "" {
		validated, err := strconv.ParseBool(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_SELECTION", "validated must be a boolean")
			return
		}
		filter.Validated = &validated
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	offset := 0
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	subs, total, err := h.service.ListSubmissions(c.Request.Context(), filter, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	list := make([]Submission, len(subs))
	for i, s := range subs {
		list[i] = *s
	}
	response.Success(c, http.StatusOK, SubmissionListResponse{Submissions: list, Total: total})
}

// GetStats handles GET /api/v1/admin/submissions/stats
// @Summary Intake volume counters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SubmissionStats
// @Router /admin/submissions/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, stats)
}
