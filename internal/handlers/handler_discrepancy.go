package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/middleware"
	"github.com/gin-gonic/gin"
)

// discrepancyHandler serves the discrepancy report.
type discrepancyHandler struct {
	discrepancyService portssvc.DiscrepancySvc
}

func newDiscrepancyHandler(discrepancyService portssvc.DiscrepancySvc) *discrepancyHandler {
	return &discrepancyHandler{discrepancyService: discrepancyService}
}

func registerDiscrepancyRoutes(rg *gin.RouterGroup, discrepancyService portssvc.DiscrepancySvc) {
	h := newDiscrepancyHandler(discrepancyService)

	rg.GET("/discrepancies", h.getDiscrepancies)
}

// getDiscrepancies godoc
// @Summary Get the discrepancy report
// @Description Lists unreconciled tickets, unlinked bank credits and orphan bank payments inside the window, each with count and total. Missing bounds default to the trailing window ending today.
// @Tags reporting
// @Produce  json
// @Param   from query string false "First day, YYYY-MM-DD"
// @Param   to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} dto.DiscrepancyResponse
// @Failure 400 {object} map[string]string "Invalid dates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build discrepancy report"
// @Security BearerAuth
// @Router /discrepancies [get]
func (h *discrepancyHandler) getDiscrepancies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DiscrepancyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	from, to := dayStart(params.From), dayEnd(params.To)
	report, err := h.discrepancyService.GetDiscrepancies(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to build discrepancy report")
		return
	}
	c.JSON(http.StatusOK, dto.ToDiscrepancyResponse(report))
}

// dayStart parses an already validated YYYY-MM-DD value; empty means unset.
func dayStart(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	return &t
}

// dayEnd is like dayStart but returns the last instant of that day.
func dayEnd(s string) *time.Time {
	t := dayStart(s)
	if t == nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Nanosecond)
	return &end
}
