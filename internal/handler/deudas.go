package handler

import (
	"net/http"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/middleware"
	"kiosko/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DeudasHandler struct{ svc service.DeudaService }

func NewDeudasHandler(svc service.DeudaService) *DeudasHandler {
	return &DeudasHandler{svc: svc}
}

// Registrar creates a sale. The operator name comes from the JWT claims, never
// from the request body.
func (h *DeudasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarDeudaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Registrar(c.Request.Context(), claims.Nombre, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DeudasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DeudasHandler) MarcarPagada(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.MarcarPagada(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DeudasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
