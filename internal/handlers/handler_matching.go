package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/middleware"
	"github.com/gin-gonic/gin"
)

// matchingHandler handles match suggestion requests.
type matchingHandler struct {
	matchingService portssvc.MatchingSvc
}

func newMatchingHandler(matchingService portssvc.MatchingSvc) *matchingHandler {
	return &matchingHandler{matchingService: matchingService}
}

func registerMatchingRoutes(rg *gin.RouterGroup, matchingService portssvc.MatchingSvc) {
	h := newMatchingHandler(matchingService)

	matches := rg.Group("/matches")
	{
		matches.GET("", h.suggestMatches)
		matches.POST("/auto", h.autoReconcile)
	}
	rg.GET("/tickets/:ticketID/matches", h.suggestMatchesForTicket)
}

// suggestMatches godoc
// @Summary Suggest ticket/bank transaction matches
// @Description Runs one batch pass over the most recent unreconciled tickets and transactions. Each transaction is suggested for at most one ticket.
// @Tags matching
// @Produce  json
// @Success 200 {object} dto.ListMatchSuggestionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to suggest matches"
// @Security BearerAuth
// @Router /matches [get]
func (h *matchingHandler) suggestMatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	suggestions, err := h.matchingService.SuggestMatches(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to suggest matches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMatchSuggestionsResponse(suggestions))
}

// suggestMatchesForTicket godoc
// @Summary Suggest matches for one ticket
// @Description Lists every unreconciled transaction whose credit equals the ticket amount, best priority first
// @Tags matching
// @Produce  json
// @Param   ticketID path string true "Ticket ID"
// @Success 200 {object} dto.ListMatchSuggestionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Ticket not found"
// @Failure 500 {object} map[string]string "Failed to suggest matches"
// @Security BearerAuth
// @Router /tickets/{ticketID}/matches [get]
func (h *matchingHandler) suggestMatchesForTicket(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	suggestions, err := h.matchingService.SuggestMatchesForTicket(c.Request.Context(), c.Param("ticketID"))
	if err != nil {
		respondError(c, logger, err, "Failed to suggest matches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMatchSuggestionsResponse(suggestions))
}

// autoReconcile godoc
// @Summary Confirm strong matches automatically
// @Description Runs a batch pass and confirms every suggestion at or above the configured auto-accept priority
// @Tags matching
// @Produce  json
// @Success 200 {object} dto.AutoReconcileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to auto reconcile"
// @Security BearerAuth
// @Router /matches/auto [post]
func (h *matchingHandler) autoReconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.matchingService.AutoReconcile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to auto reconcile")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutoReconcileResponse(result))
}
