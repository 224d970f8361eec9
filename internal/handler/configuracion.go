package handler

import (
	"net/http"

	"kiosko/internal/dto"
	"kiosko/internal/service"

	"github.com/gin-gonic/gin"
)

type ConfiguracionHandler struct{ svc service.ConfiguracionService }

func NewConfiguracionHandler(svc service.ConfiguracionService) *ConfiguracionHandler {
	return &ConfiguracionHandler{svc: svc}
}

func (h *ConfiguracionHandler) ObtenerInversion(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ObtenerInversion(c.Request.Context()))
}

func (h *ConfiguracionHandler) GuardarInversion(c *gin.Context) {
	var req dto.GuardarInversionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GuardarInversion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
