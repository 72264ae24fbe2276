package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/infra"
	"saborpos/internal/model"
	"saborpos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Report periods.
const (
	PeriodoDiario  = "diario"
	PeriodoSemanal = "semanal"
	PeriodoMensual = "mensual"
	PeriodoAnual   = "anual"
)

type ReporteService interface {
	// AplicarVenta folds one committed sale into the four rollup tables.
	AplicarVenta(ctx context.Context, fecha time.Time, total decimal.Decimal) error
	Listar(ctx context.Context, periodo string) (*dto.ReporteResponse, error)
	ResumenDiario(ctx context.Context) (*dto.ResumenDiarioResponse, error)
	// Exportar renders the period as a spreadsheet and returns the file
	// content plus a download name.
	Exportar(ctx context.Context, periodo string) (*bytes.Buffer, string, error)
	DashboardResumen(ctx context.Context) (*dto.DashboardResumenResponse, error)
}

type reporteService struct {
	repo      repository.ReporteRepository
	ventaRepo repository.VentaRepository
	cajaRepo  repository.CajaRepository
}

func NewReporteService(
	repo repository.ReporteRepository,
	ventaRepo repository.VentaRepository,
	cajaRepo repository.CajaRepository,
) ReporteService {
	return &reporteService{repo: repo, ventaRepo: ventaRepo, cajaRepo: cajaRepo}
}

// AplicarVenta applies the four upserts independently. A failure in one table
// is logged and does not block the others; the first error is returned so
// queued jobs surface it.
func (s *reporteService) AplicarVenta(ctx context.Context, fecha time.Time, total decimal.Decimal) error {
	var first error
	keep := func(tabla string, err error) {
		if err == nil {
			return
		}
		log.Error().Err(err).Str("tabla", tabla).Msg("rollup upsert failed")
		if first == nil {
			first = err
		}
	}

	keep("ventas_diarias", s.repo.SumarDiario(ctx, fecha, total))

	semana, anioISO := fecha.ISOWeek()
	keep("ventas_semanales", s.repo.SumarSemanal(ctx, semana, anioISO, total))
	keep("ventas_mensuales", s.repo.SumarMensual(ctx, int(fecha.Month()), fecha.Year(), total))
	keep("ventas_anuales", s.repo.SumarAnual(ctx, fecha.Year(), total))
	return first
}

func (s *reporteService) Listar(ctx context.Context, periodo string) (*dto.ReporteResponse, error) {
	filas, err := s.filasPorPeriodo(ctx, periodo)
	if err != nil {
		return nil, err
	}
	return &dto.ReporteResponse{Periodo: periodo, Filas: filas}, nil
}

func (s *reporteService) filasPorPeriodo(ctx context.Context, periodo string) ([]dto.ReporteFilaResponse, error) {
	switch periodo {
	case PeriodoDiario:
		rows, err := s.repo.ListDiarias(ctx)
		if err != nil {
			return nil, err
		}
		filas := make([]dto.ReporteFilaResponse, 0, len(rows))
		for _, r := range rows {
			filas = append(filas, dto.ReporteFilaResponse{
				Etiqueta:    r.Fecha.Format("02/01/2006"),
				TotalVentas: r.TotalVentas,
			})
		}
		return filas, nil
	case PeriodoSemanal:
		rows, err := s.repo.ListSemanales(ctx)
		if err != nil {
			return nil, err
		}
		filas := make([]dto.ReporteFilaResponse, 0, len(rows))
		for _, r := range rows {
			filas = append(filas, dto.ReporteFilaResponse{
				Etiqueta:    fmt.Sprintf("Semana %d - %d", r.Semana, r.Anio),
				TotalVentas: r.TotalVentas,
			})
		}
		return filas, nil
	case PeriodoMensual:
		rows, err := s.repo.ListMensuales(ctx)
		if err != nil {
			return nil, err
		}
		filas := make([]dto.ReporteFilaResponse, 0, len(rows))
		for _, r := range rows {
			filas = append(filas, dto.ReporteFilaResponse{
				Etiqueta:    fmt.Sprintf("%d/%d", r.Mes, r.Anio),
				TotalVentas: r.TotalVentas,
			})
		}
		return filas, nil
	case PeriodoAnual:
		rows, err := s.repo.ListAnuales(ctx)
		if err != nil {
			return nil, err
		}
		filas := make([]dto.ReporteFilaResponse, 0, len(rows))
		for _, r := range rows {
			filas = append(filas, dto.ReporteFilaResponse{
				Etiqueta:    fmt.Sprintf("%d", r.Anio),
				TotalVentas: r.TotalVentas,
			})
		}
		return filas, nil
	default:
		return nil, apierror.Validation(fmt.Sprintf("periodo inválido: %q", periodo))
	}
}

func (s *reporteService) ResumenDiario(ctx context.Context) (*dto.ResumenDiarioResponse, error) {
	inicio, fin := rangoHoy()
	ventas, err := s.ventaRepo.ListPorRango(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, v := range ventas {
		total = total.Add(v.Total)
	}
	promedio := decimal.Zero
	if len(ventas) > 0 {
		promedio = total.Div(decimal.NewFromInt(int64(len(ventas)))).Round(2)
	}

	top, err := s.repo.TopMetodoPago(ctx, inicio, fin)
	if err != nil {
		top = "N/A"
	}

	return &dto.ResumenDiarioResponse{
		Fecha:          inicio.Format("02/01/2006"),
		TotalVentas:    total,
		CantidadVentas: int64(len(ventas)),
		TicketPromedio: promedio,
		MetodoPagoTop:  top,
	}, nil
}

func (s *reporteService) Exportar(ctx context.Context, periodo string) (*bytes.Buffer, string, error) {
	if periodo == PeriodoDiario {
		inicio, fin := rangoHoy()
		ventas, err := s.ventaRepo.ListPorRango(ctx, inicio, fin)
		if err != nil {
			return nil, "", err
		}
		buf, err := infra.ExcelVentas("Ventas del Día", ventas)
		if err != nil {
			return nil, "", err
		}
		return buf, fmt.Sprintf("ventas_%s.xlsx", inicio.Format("2006-01-02")), nil
	}

	filas, err := s.filasPorPeriodo(ctx, periodo)
	if err != nil {
		return nil, "", err
	}
	resumen := make([]infra.FilaResumen, 0, len(filas))
	for _, f := range filas {
		resumen = append(resumen, infra.FilaResumen{Etiqueta: f.Etiqueta, Total: f.TotalVentas})
	}
	buf, err := infra.ExcelResumen("Resumen", etiquetaPeriodo(periodo), resumen)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("reporte_%s.xlsx", periodo), nil
}

func (s *reporteService) DashboardResumen(ctx context.Context) (*dto.DashboardResumenResponse, error) {
	inicio, fin := rangoHoy()
	ventas, err := s.ventaRepo.ListPorRango(ctx, inicio, fin)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	local := decimal.Zero
	llevar := decimal.Zero
	for _, v := range ventas {
		total = total.Add(v.Total)
		switch v.TipoPedido {
		case model.PedidoLocal:
			local = local.Add(v.Total)
		case model.PedidoLlevar:
			llevar = llevar.Add(v.Total)
		}
	}

	abierta := false
	if _, err := s.cajaRepo.FindAbierta(ctx); err == nil {
		abierta = true
	}

	return &dto.DashboardResumenResponse{
		VentasHoy:      total,
		CantidadVentas: len(ventas),
		TotalLocal:     local,
		TotalLlevar:    llevar,
		CajaAbierta:    abierta,
	}, nil
}

func etiquetaPeriodo(periodo string) string {
	switch periodo {
	case PeriodoSemanal:
		return "Semana"
	case PeriodoMensual:
		return "Mes"
	case PeriodoAnual:
		return "Año"
	default:
		return "Fecha"
	}
}

func rangoHoy() (time.Time, time.Time) {
	ahora := time.Now()
	inicio := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	return inicio, inicio.AddDate(0, 0, 1)
}
