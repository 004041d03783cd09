package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"landing-forms/pkg/clients/supabase"
	"landing-forms/pkg/middleware"
	"landing-forms/pkg/models"
	"landing-forms/pkg/services"
	"landing-forms/pkg/utils"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	formService services.FormService
	configured  bool
	logger      logrus.FieldLogger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(formService services.FormService, configured bool, logger logrus.FieldLogger) *Handlers {
	return &Handlers{
		formService: formService,
		configured:  configured,
		logger:      logger,
	}
}

// RegisterRoutes wires the handlers onto router
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	api.POST("/contact", h.HandleContactSubmission)
	api.POST("/newsletter", h.HandleNewsletterSignup)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	mode := "mock"
	if h.configured {
		mode = "configured"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"supabase": mode,
	})
}

// HandleContactSubmission saves a contact form submission
func (h *Handlers) HandleContactSubmission(c *gin.Context) {
	var input models.ContactSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.requestLogger(c).WithError(err).Warn("Invalid contact submission")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid fields"})
		return
	}

	h.requestLogger(c).WithField("email_hash", utils.HashString(input.Email)).Info("Received contact submission")

	result, err := h.formService.SaveContactSubmission(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleNewsletterSignup saves a newsletter signup
func (h *Handlers) HandleNewsletterSignup(c *gin.Context) {
	var input models.NewsletterSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.requestLogger(c).WithError(err).Warn("Invalid newsletter signup")
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}

	h.requestLogger(c).WithField("email_hash", utils.HashString(input.Email)).Info("Received newsletter signup")

	result, err := h.formService.SaveNewsletterSignup(c.Request.Context(), input.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	var apiErr *supabase.Error
	switch {
	case errors.As(err, &apiErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message, "code": apiErr.Code})
	case errors.Is(err, supabase.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save submission"})
	}
}

func (h *Handlers) requestLogger(c *gin.Context) logrus.FieldLogger {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return h.logger.WithField("request_id", id)
	}
	return h.logger
}
