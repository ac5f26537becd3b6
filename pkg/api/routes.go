package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Submission endpoints
const (
	LeadPath      = "/api/submit-lead"
	EarlyUserPath = "/api/submit-early-user"
)

// RegisterRoutes mounts the API on router. The submission endpoints accept
// every method so that anything but POST gets the JSON 405 body. Methods
// gin does not route (PROPFIND and the like) reach them through NoRoute.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	router.Any(LeadPath, h.SubmitLead)
	router.Any(EarlyUserPath, h.SubmitEarlyUser)
	router.GET("/health", h.HealthCheck)
	router.NoRoute(h.NoRoute)
}

// NoRoute sends unrouted requests for the submission endpoints to their
// handlers and answers everything else with a JSON 404.
func (h *Handlers) NoRoute(c *gin.Context) {
	switch c.Request.URL.Path {
	case LeadPath:
		h.SubmitLead(c)
	case EarlyUserPath:
		h.SubmitEarlyUser(c)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}
}
