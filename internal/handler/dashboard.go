package handler

import (
	"net/http"

	"saborpos/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.ReporteService }

func NewDashboardHandler(svc service.ReporteService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen godoc
// @Summary Resumen del día para el panel: totales, split Local/Llevar, caja
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResumenResponse
// @Router /api/dashboard/resumen [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.DashboardResumen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
