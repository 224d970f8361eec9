package handler

import (
	"net/http"
	"path/filepath"

	"kiosko/internal/dto"
	"kiosko/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

func (h *ReportesHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) FlujoCaja(c *gin.Context) {
	var filtro dto.RangoFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	resp, err := h.svc.FlujoCaja(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) TopProductos(c *gin.Context) {
	var filtro dto.RangoFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	resp, err := h.svc.TopProductos(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) TopClientes(c *gin.Context) {
	var filtro dto.RangoFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	resp, err := h.svc.TopClientes(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) Ventas(c *gin.Context) {
	var filtro dto.VentasFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	resp, err := h.svc.ReporteVentas(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasPDF generates the sales report PDF and streams it back.
func (h *ReportesHandler) VentasPDF(c *gin.Context) {
	var filtro dto.VentasFilter
	if !bindQueryAndValidate(c, &filtro) {
		return
	}
	path, err := h.svc.GenerarPDF(c.Request.Context(), filtro)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

func (h *ReportesHandler) VentasEmail(c *gin.Context) {
	var req dto.EnviarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarPorEmail(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Reporte enviado correctamente"})
}
