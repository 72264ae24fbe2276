package handler

import (
	"net/http"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/service"

	"github.com/gin-gonic/gin"
)

type AsistenciaHandler struct{ svc service.AsistenciaService }

func NewAsistenciaHandler(svc service.AsistenciaService) *AsistenciaHandler {
	return &AsistenciaHandler{svc: svc}
}

// Ingreso godoc
// @Summary Registra la entrada de un empleado
// @Tags asistencia
// @Accept json
// @Produce json
// @Param body body dto.RegistrarIngresoRequest true "Empleado"
// @Success 201 {object} dto.AsistenciaResponse
// @Router /api/asistencia/ingreso [post]
func (h *AsistenciaHandler) Ingreso(c *gin.Context) {
	var req dto.RegistrarIngresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarIngreso(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Salida godoc
// @Summary Registra la salida: cierra el ingreso abierto más reciente de hoy
// @Tags asistencia
// @Accept json
// @Produce json
// @Param body body dto.RegistrarSalidaRequest true "Empleado"
// @Success 200 {object} dto.AsistenciaResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/asistencia/salida [post]
func (h *AsistenciaHandler) Salida(c *gin.Context) {
	var req dto.RegistrarSalidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarSalida(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar returns the attendance records for one date (default today).
func (h *AsistenciaHandler) Listar(c *gin.Context) {
	fecha := time.Now()
	if q := c.Query("fecha"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("fecha inválida, use YYYY-MM-DD"))
			return
		}
		fecha = parsed
	}
	resp, err := h.svc.ListarPorFecha(c.Request.Context(), fecha)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
