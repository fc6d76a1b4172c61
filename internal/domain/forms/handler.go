package forms

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brrrrleads/internal/domain/intake"
	"brrrrleads/internal/pkg/response"
)

// Handler serves form descriptors.
type Handler struct {
	downloadURL string
}

func NewHandler(downloadURL string) *Handler {
	return &Handler{downloadURL: downloadURL}
}

// Describe handles GET /api/v1/forms
// @Summary Form descriptor
// @Description Returns the form to mount for a variant; the intake descriptor includes the rule table for a concrete loan/transaction selection
// @Tags Forms
// @Produce json
// @Param variant query string false "checklist (default), sow, or anything else for the intake form"
// @Param loan-type query string false "Loan type for the intake rule table"
// @Param transaction-type query string false "Transaction type for the intake rule table"
// @Param download query string false "Checklist asset URL override"
// @Success 200 {object} Descriptor
// @Router /forms [get]
func (h *Handler) Describe(c *gin.Context) {
	downloadURL := h.downloadURL
	if override := c.Query("download"); override != "" {
		downloadURL = override
	}

	d := Resolve(
		c.Query("variant"),
		downloadURL,
		intake.LoanType(c.Query("loan-type")),
		intake.TransactionType(c.Query("transaction-type")),
	)

	response.Success(c, http.StatusOK, d)
}
