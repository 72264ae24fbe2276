package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/infra"
	"saborpos/internal/model"
	"saborpos/internal/repository"
	"saborpos/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error)
	ListarTodas(ctx context.Context) ([]dto.VentaResponse, error)
	// TicketPDF renders the printable kitchen/customer ticket and returns
	// the path of the generated file.
	TicketPDF(ctx context.Context, id uuid.UUID) (string, error)
}

type ventaService struct {
	repo        repository.VentaRepository
	usuarioRepo repository.UsuarioRepository
	pagoRepo    repository.PagoRepository
	cajaRepo    repository.CajaRepository
	prodRepo    repository.ProductoRepository
	comandaRepo repository.ComandaRepository
	reportes    worker.ReporteApplier
	dispatcher  *worker.Dispatcher
	pdfPath     string
}

func NewVentaService(
	repo repository.VentaRepository,
	usuarioRepo repository.UsuarioRepository,
	pagoRepo repository.PagoRepository,
	cajaRepo repository.CajaRepository,
	prodRepo repository.ProductoRepository,
	comandaRepo repository.ComandaRepository,
	reportes worker.ReporteApplier,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) VentaService {
	return &ventaService{
		repo:        repo,
		usuarioRepo: usuarioRepo,
		pagoRepo:    pagoRepo,
		cajaRepo:    cajaRepo,
		prodRepo:    prodRepo,
		comandaRepo: comandaRepo,
		reportes:    reportes,
		dispatcher:  dispatcher,
		pdfPath:     pdfPath,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// One ACID transaction:
//   1. Merge duplicate product lines, summing quantities
//   2. Resolve tipo pedido, cajero, open caja, payment method, products
//   3. Assign the per-day ticket number
//   4. Create Venta + Detalles + Comanda together
//   5. COMMIT, then hand the total to the rollup engine (async when a
//      dispatcher is wired, inline best-effort otherwise)

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.RegistrarVentaResponse, error) {
	if len(req.Items) == 0 {
		return nil, apierror.Validation("la venta debe tener al menos un producto")
	}
	req.TipoPedido = strings.TrimSpace(req.TipoPedido)
	if req.TipoPedido != model.PedidoLocal && req.TipoPedido != model.PedidoLlevar {
		return nil, apierror.Validation(fmt.Sprintf("tipo de pedido inválido: %q", req.TipoPedido))
	}

	// Merge duplicate product lines before touching the DB.
	type linea struct {
		productoID uuid.UUID
		cantidad   int
	}
	var lineas []linea
	pos := map[uuid.UUID]int{}
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("producto_id inválido: %s", item.ProductoID))
		}
		if i, ok := pos[pid]; ok {
			lineas[i].cantidad += item.Cantidad
			continue
		}
		pos[pid] = len(lineas)
		lineas = append(lineas, linea{productoID: pid, cantidad: item.Cantidad})
	}
	for _, l := range lineas {
		if l.cantidad <= 0 {
			return nil, apierror.Validation(fmt.Sprintf("cantidad inválida para el producto %s", l.productoID))
		}
	}

	cliente := req.NombreCliente
	if cliente == "" {
		cliente = model.ClientePorDefecto
	}

	var venta model.Venta
	var comanda model.Comanda
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		cajero, err := s.usuarioRepo.FindByUsernameTx(tx, req.Cajero)
		if err != nil {
			return apierror.NotFound(fmt.Sprintf("cajero %q no encontrado", req.Cajero))
		}

		caja, err := s.cajaRepo.FindAbiertaTx(tx)
		if err != nil {
			return apierror.Conflict("no hay una caja abierta; abra caja antes de vender")
		}

		pago, err := s.pagoRepo.FindByTipoTx(tx, req.MetodoPago)
		if err != nil {
			return apierror.NotFound(fmt.Sprintf("método de pago %q no encontrado", req.MetodoPago))
		}

		// Resolve every product and price the lines before creating rows,
		// so a bad reference leaves nothing behind.
		total := decimal.Zero
		detalles := make([]model.DetalleVenta, 0, len(lineas))
		for _, l := range lineas {
			p, err := s.prodRepo.FindByIDTx(tx, l.productoID)
			if err != nil {
				return apierror.NotFound(fmt.Sprintf("producto %s no encontrado", l.productoID))
			}
			subtotal := p.Precio.Mul(decimal.NewFromInt(int64(l.cantidad)))
			total = total.Add(subtotal)
			pid := p.ID
			detalles = append(detalles, model.DetalleVenta{
				ProductoID:     &pid,
				Cantidad:       l.cantidad,
				PrecioUnitario: p.Precio,
				Subtotal:       subtotal,
			})
		}

		ahora := time.Now()
		count, err := s.repo.CountDelDiaTx(tx, ahora)
		if err != nil {
			return err
		}

		venta = model.Venta{
			NumeroTicket:  fmt.Sprintf("%s-%d", ahora.Format("02/01/06"), count+1),
			TipoPedido:    req.TipoPedido,
			NombreCliente: cliente,
			UsuarioID:     cajero.ID,
			PagoID:        pago.ID,
			CajaID:        caja.ID,
			FechaVenta:    ahora,
			Total:         total,
			Detalles:      detalles,
		}
		if err := s.repo.Create(ctx, tx, &venta); err != nil {
			return err
		}

		comanda = model.Comanda{
			VentaID:    venta.ID,
			Estado:     model.ComandaPendiente,
			FechaEnvio: ahora,
		}
		return s.comandaRepo.Create(ctx, tx, &comanda)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.aplicarRollups(ctx, &venta)

	return &dto.RegistrarVentaResponse{
		ID:            venta.ID.String(),
		NumeroTicket:  venta.NumeroTicket,
		TipoPedido:    venta.TipoPedido,
		Total:         venta.Total,
		EstadoComanda: comanda.Estado,
	}, nil
}

// aplicarRollups hands the committed sale to the rollup engine. Queued when a
// dispatcher is available; applied inline otherwise. Either way a failure is
// logged and swallowed — the sale is already committed and must not fail.
func (s *ventaService) aplicarRollups(ctx context.Context, venta *model.Venta) {
	if s.dispatcher != nil {
		err := s.dispatcher.EnqueueReporte(ctx, worker.ReporteJobPayload{
			FechaVenta: venta.FechaVenta,
			Total:      venta.Total,
		})
		if err == nil {
			return
		}
		log.Error().Err(err).Str("venta_id", venta.ID.String()).Msg("enqueue reporte failed, applying inline")
	}
	if s.reportes == nil {
		return
	}
	if err := s.reportes.AplicarVenta(ctx, venta.FechaVenta, venta.Total); err != nil {
		log.Error().Err(err).Str("venta_id", venta.ID.String()).Msg("inline rollup apply failed")
	}
}

func (s *ventaService) ListarTodas(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.ListTodas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *ventaToResponse(&ventas[i]))
	}
	return out, nil
}

func (s *ventaService) TicketPDF(ctx context.Context, id uuid.UUID) (string, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", apierror.NotFound("venta no encontrada")
	}
	path, err := infra.GenerateTicketPDF(venta, s.pdfPath)
	if err != nil {
		return "", apierror.Internal("no se pudo generar el ticket")
	}
	return path, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		nombre := ""
		if d.Producto != nil {
			nombre = d.Producto.Nombre
		}
		detalles = append(detalles, dto.DetalleVentaResponse{
			Producto:       nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	cajero := ""
	if v.Usuario != nil {
		cajero = v.Usuario.Nombre
	}
	metodo := ""
	if v.Pago != nil {
		metodo = v.Pago.TipoPago
	}
	return &dto.VentaResponse{
		ID:           v.ID.String(),
		NumeroTicket: v.NumeroTicket,
		TipoPedido:   v.TipoPedido,
		Cliente:      v.NombreCliente,
		Cajero:       cajero,
		MetodoPago:   metodo,
		FechaVenta:   v.FechaVenta.Format(time.RFC3339),
		Total:        v.Total,
		Detalles:     detalles,
	}
}
