package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/models"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/services"
)

// Error messages returned to callers. Internal error detail is only logged.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgMissingFields    = "Missing required fields"
	msgInsertFailed     = "Database insert failed"
	msgServerError      = "Server error"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.SubmissionService
	log               *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.SubmissionService, log *zap.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		log:               log,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// SubmitLead accepts a business lead and persists it
func (h *Handlers) SubmitLead(c *gin.Context) {
	fields, ok := h.readFields(c)
	if !ok {
		return
	}

	lead, err := models.ParseLead(fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
		return
	}

	h.respond(c, h.submissionService.SubmitLead(c.Request.Context(), lead))
}

// SubmitEarlyUser accepts an early access request and persists it
func (h *Handlers) SubmitEarlyUser(c *gin.Context) {
	fields, ok := h.readFields(c)
	if !ok {
		return
	}

	user, err := models.ParseEarlyUser(fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingFields})
		return
	}

	h.respond(c, h.submissionService.SubmitEarlyUser(c.Request.Context(), user))
}

// readFields gates on the method and decodes the body. It writes the
// error response itself and reports whether the handler should continue.
func (h *Handlers) readFields(c *gin.Context) (models.Fields, bool) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": msgMethodNotAllowed})
		return nil, false
	}

	body, err := c.GetRawData()
	if err != nil {
		h.serverError(c, err)
		return nil, false
	}

	fields, err := models.DecodeFields(body)
	if err != nil {
		h.serverError(c, err)
		return nil, false
	}

	return fields, true
}

func (h *Handlers) respond(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, services.ErrInsertFailed):
		// already logged with the store's error by the service
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInsertFailed})
	default:
		h.serverError(c, err)
	}
}

func (h *Handlers) serverError(c *gin.Context, err error) {
	h.log.Error("Server error", zap.Error(err), zap.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
}
