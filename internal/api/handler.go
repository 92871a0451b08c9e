// Package api exposes the HTTP JSON endpoints.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Skufu/aidoc/internal/apperror"
	"github.com/Skufu/aidoc/internal/chat"
	"github.com/Skufu/aidoc/internal/directory"
	"github.com/Skufu/aidoc/internal/risk"
	"github.com/Skufu/aidoc/internal/symptoms"
)

const (
	msgSymptomsRequired = "Symptoms are required"
	msgMessageRequired  = "Message is required"
	msgPatientRequired  = "Patient data is required"
	msgInvalidBody      = "Invalid request body"

	msgAnalyzeFailed = "Failed to analyze symptoms. Please try again or consult a healthcare professional. For emergencies, call 102 or 108."
)

// HealthChecker is satisfied by *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Symptoms  *symptoms.Service
	Chat      *chat.Service
	Risk      *risk.Checker
	Directory directory.Store
	// DB is nil when the database is disabled.
	DB     HealthChecker
	Logger *zap.Logger

	now func() time.Time
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter) {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
	if h.now == nil {
		h.now = time.Now
	}

	r.GET("/healthz", h.healthz)
	r.GET("/readyz", h.readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/analyze-symptoms", h.analyzeSymptoms)
	api.POST("/chat-doctor", h.chatDoctor)
	api.POST("/health-risk-assessment", h.healthRiskAssessment)
	api.GET("/doctors", h.listDoctors)
	api.GET("/doctors/specialties", h.listSpecialties)
	api.GET("/hospitals", h.listHospitals)
}

func (h *Handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) readyz(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

// bindError maps a JSON binding failure. An empty body is reported with
// emptyMessage so it reads the same as a missing field.
func bindError(err error, emptyMessage string) *apperror.Error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return apperror.TooLarge()
	case errors.Is(err, io.EOF):
		return apperror.Validation(emptyMessage)
	}
	return apperror.Validation(msgInvalidBody)
}
