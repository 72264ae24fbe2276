package handler

import (
	"net/http"

	"saborpos/internal/dto"
	"saborpos/internal/service"

	"github.com/gin-gonic/gin"
)

type CocinaHandler struct{ svc service.ComandaService }

func NewCocinaHandler(svc service.ComandaService) *CocinaHandler {
	return &CocinaHandler{svc: svc}
}

// Pendientes godoc
// @Summary Cola de cocina: comandas pendientes y en preparación, FIFO
// @Tags cocina
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ComandaResponse
// @Router /api/cocina/pendientes [get]
func (h *CocinaHandler) Pendientes(c *gin.Context) {
	resp, err := h.svc.Pendientes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Completadas godoc
// @Summary Últimas comandas listas o entregadas
// @Tags cocina
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ComandaResponse
// @Router /api/cocina/completadas [get]
func (h *CocinaHandler) Completadas(c *gin.Context) {
	resp, err := h.svc.Completadas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Cambia el estado de una comanda
// @Tags cocina
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID de comanda"
// @Param body body dto.ActualizarEstadoComandaRequest true "Nuevo estado"
// @Success 200 {object} dto.ComandaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/cocina/actualizar/{id} [put]
func (h *CocinaHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEstadoComandaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
