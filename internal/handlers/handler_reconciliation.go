package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/middleware"
	"github.com/SscSPs/collections_reconciliation/internal/utils"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles match confirmations.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
	posthogClient         *utils.PosthogClientWrapper
}

func newReconciliationHandler(reconciliationService portssvc.ReconciliationSvc, posthogClient *utils.PosthogClientWrapper) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: reconciliationService,
		posthogClient:         posthogClient,
	}
}

func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newReconciliationHandler(reconciliationService, posthogClient)

	rg.POST("/reconciliations", h.confirmMatch)
}

// confirmMatch godoc
// @Summary Confirm a match
// @Description Links the ticket to the bank transaction. Both records change together or not at all.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   match body dto.ConfirmMatchRequest true "Ticket and transaction to link"
// @Success 200 {object} dto.ConfirmMatchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ticket or transaction not found"
// @Failure 409 {object} map[string]string "Ticket or transaction already reconciled"
// @Failure 500 {object} map[string]string "Failed to confirm match"
// @Security BearerAuth
// @Router /reconciliations [post]
func (h *reconciliationHandler) confirmMatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConfirmMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConfirmMatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.reconciliationService.ConfirmMatch(c.Request.Context(), req.TicketID, req.TransactionID, userID); err != nil {
		respondError(c, logger, err, "Failed to confirm match")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "match_confirmed", map[string]any{
		"ticket_id":      req.TicketID,
		"transaction_id": req.TransactionID,
	})
	c.JSON(http.StatusOK, dto.ConfirmMatchResponse{
		TicketID:      req.TicketID,
		TransactionID: req.TransactionID,
		Reconciled:    true,
	})
}
