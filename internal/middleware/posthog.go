package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/collections_reconciliation/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware tracks successful state-changing API calls as PostHog events.
// Read-only requests are not tracked.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if PostHog is not initialized or the request only reads data
		if posthogClient == nil || !posthogClient.IsInitialized() || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Get user ID from context (set by auth middleware)
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			// No user ID, can't track event
			return
		}

		// Create event name from route path (e.g., "/api/v1/matches/auto" -> "api_v1_matches_auto")
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")

		// Skip if event name is empty (e.g., for 404s)
		if eventName == "" {
			return
		}

		// Prepare event properties
		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}

		// Add route parameters if any, e.g. the ticket ID of a per-ticket request
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		// Send event to PostHog
		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event from a handler, e.g. with import counts attached.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}

	// Get user ID from context
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	// Always record where the event came from
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["path"] = c.Request.URL.Path

	// Send event to PostHog
	posthogClient.Enqueue(userID, eventName, properties)
}
