package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/aidoc/internal/apperror"
	"github.com/Skufu/aidoc/internal/middleware"
	"github.com/Skufu/aidoc/internal/symptoms"
)

type analyzeRequest struct {
	Symptoms symptoms.Input `json:"symptoms"`
}

func (h *Handler) analyzeSymptoms(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, bindError(err, msgSymptomsRequired))
		return
	}

	resp, err := h.Symptoms.Analyze(c.Request.Context(), req.Symptoms)
	if err != nil {
		if errors.Is(err, symptoms.ErrSymptomsRequired) {
			apperror.Respond(c, apperror.Validation(msgSymptomsRequired))
			return
		}
		h.Logger.Error("symptom analysis failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		apperror.Respond(c, apperror.Internal(err).WithMessage(msgAnalyzeFailed))
		return
	}

	c.JSON(http.StatusOK, resp)
}
