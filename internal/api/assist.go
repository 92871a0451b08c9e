package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/aidoc/internal/apperror"
	"github.com/Skufu/aidoc/internal/chat"
	"github.com/Skufu/aidoc/internal/directory"
	"github.com/Skufu/aidoc/internal/risk"
)

func (h *Handler) chatDoctor(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, bindError(err, msgMessageRequired))
		return
	}

	reply, err := h.Chat.Reply(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, chat.ErrMessageRequired) {
			apperror.Respond(c, apperror.Validation(msgMessageRequired))
			return
		}
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *Handler) healthRiskAssessment(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		apperror.Respond(c, bindError(err, msgPatientRequired))
		return
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		apperror.Respond(c, apperror.Validation(msgPatientRequired))
		return
	}

	var patient risk.Patient
	if err := json.Unmarshal(raw, &patient); err != nil {
		apperror.Respond(c, apperror.Validation(msgInvalidBody))
		return
	}

	report := h.Risk.Report(patient, h.now())
	c.JSON(http.StatusOK, gin.H{"assessment": report})
}

func (h *Handler) listDoctors(c *gin.Context) {
	doctors, err := h.Directory.List(c.Request.Context(), directory.Filter{
		Query:     c.Query("q"),
		Specialty: c.Query("specialty"),
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "count": len(doctors)})
}

func (h *Handler) listSpecialties(c *gin.Context) {
	specialties, err := h.Directory.Specialties(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specialties": specialties})
}

func (h *Handler) listHospitals(c *gin.Context) {
	hospitals, err := h.Directory.Hospitals(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hospitals": hospitals})
}
