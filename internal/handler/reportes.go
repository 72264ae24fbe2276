package handler

import (
	"fmt"
	"net/http"

	"saborpos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Listar godoc
// @Summary Filas acumuladas del periodo (diario, semanal, mensual, anual)
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param periodo path string true "diario|semanal|mensual|anual"
// @Success 200 {object} dto.ReporteResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/reportes/{periodo} [get]
func (h *ReportesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResumenDiario godoc
// @Summary Resumen del día: total, cantidad, ticket promedio, método top
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResumenDiarioResponse
// @Router /api/reportes/resumen-diario [get]
func (h *ReportesHandler) ResumenDiario(c *gin.Context) {
	resp, err := h.svc.ResumenDiario(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Exportar streams the period as an xlsx download.
func (h *ReportesHandler) Exportar(c *gin.Context) {
	buf, nombre, err := h.svc.Exportar(c.Request.Context(), c.Param("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
