package worker

// reporte_worker.go
// Processes sales-rollup jobs from QueueReportes: after every sale the
// service enqueues the sale total, and the worker folds it into the daily,
// weekly, monthly and yearly accumulators.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ReporteApplier folds one sale total into the rollup tables. Implemented by
// the reporte service; declared here so the worker package never depends on
// the service package.
type ReporteApplier interface {
	AplicarVenta(ctx context.Context, fecha time.Time, total decimal.Decimal) error
}

// ReporteJobPayload is the job envelope sent to QueueReportes.
type ReporteJobPayload struct {
	FechaVenta time.Time       `json:"fecha_venta"`
	Total      decimal.Decimal `json:"total"`
}

type ReporteWorker struct {
	applier ReporteApplier
}

func NewReporteWorker(applier ReporteApplier) *ReporteWorker {
	return &ReporteWorker{applier: applier}
}

func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return
	}
	if err := w.applier.AplicarVenta(ctx, payload.FechaVenta, payload.Total); err != nil {
		log.Error().Err(err).
			Time("fecha_venta", payload.FechaVenta).
			Msg("reporte_worker: failed to apply sale")
		return
	}
	log.Info().
		Str("total", payload.Total.StringFixed(2)).
		Msg("reporte_worker: sale applied to rollups")
}
