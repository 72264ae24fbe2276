package handler

import (
	"net/http"

	"saborpos/internal/repository"

	"github.com/gin-gonic/gin"
)

type PagosHandler struct{ repo repository.PagoRepository }

func NewPagosHandler(repo repository.PagoRepository) *PagosHandler {
	return &PagosHandler{repo: repo}
}

// Listar returns the payment method catalog for the sale screen.
func (h *PagosHandler) Listar(c *gin.Context) {
	pagos, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, gin.H{"id": p.ID.String(), "tipo_pago": p.TipoPago})
	}
	c.JSON(http.StatusOK, out)
}
