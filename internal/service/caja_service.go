package service

import (
	"context"
	"fmt"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/model"
	"saborpos/internal/repository"
	"saborpos/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type CajaService interface {
	Abrir(ctx context.Context, req dto.AbrirCajaRequest) (*dto.AbrirCajaResponse, error)
	Cerrar(ctx context.Context) (*dto.CerrarCajaResponse, error)
	Estado(ctx context.Context) (*dto.EstadoCajaResponse, error)
}

type cajaService struct {
	repo        repository.CajaRepository
	usuarioRepo repository.UsuarioRepository
	dispatcher  *worker.Dispatcher
	resumenMail string
}

func NewCajaService(
	repo repository.CajaRepository,
	usuarioRepo repository.UsuarioRepository,
	dispatcher *worker.Dispatcher,
	resumenMail string,
) CajaService {
	return &cajaService{
		repo:        repo,
		usuarioRepo: usuarioRepo,
		dispatcher:  dispatcher,
		resumenMail: resumenMail,
	}
}

// Abrir opens the shift. At most one open caja exists at a time, system-wide;
// a second open attempt is a conflict regardless of who tries.
func (s *cajaService) Abrir(ctx context.Context, req dto.AbrirCajaRequest) (*dto.AbrirCajaResponse, error) {
	if req.MontoInicial.IsNegative() {
		return nil, apierror.Validation("el monto inicial no puede ser negativo")
	}
	usuario, err := s.usuarioRepo.FindByUsername(ctx, req.Usuario)
	if err != nil {
		return nil, apierror.NotFound(fmt.Sprintf("usuario %q no encontrado", req.Usuario))
	}
	if _, err := s.repo.FindAbierta(ctx); err == nil {
		return nil, apierror.Conflict("ya existe una caja abierta")
	}

	caja := model.Caja{
		UsuarioID:     usuario.ID,
		FechaApertura: time.Now(),
		MontoInicial:  req.MontoInicial,
		Estado:        model.CajaAbierta,
	}
	if err := s.repo.Create(ctx, &caja); err != nil {
		return nil, err
	}
	return &dto.AbrirCajaResponse{
		IDCaja:  caja.ID.String(),
		Mensaje: "Caja abierta correctamente",
	}, nil
}

// Cerrar closes the open shift. MontoFinal = MontoInicial plus every sale
// recorded since the shift opened.
func (s *cajaService) Cerrar(ctx context.Context) (*dto.CerrarCajaResponse, error) {
	caja, err := s.repo.FindAbierta(ctx)
	if err != nil {
		return nil, apierror.Conflict("no hay una caja abierta para cerrar")
	}

	vendido, err := s.repo.SumVentasDesde(ctx, caja.FechaApertura)
	if err != nil {
		return nil, err
	}
	montoFinal := caja.MontoInicial.Add(vendido)

	ahora := time.Now()
	caja.Estado = model.CajaCerrada
	caja.FechaCierre = &ahora
	caja.MontoFinal = &montoFinal
	if err := s.repo.Update(ctx, caja); err != nil {
		return nil, err
	}

	s.enviarResumen(ctx, caja, vendido)

	return &dto.CerrarCajaResponse{
		Mensaje:    "Caja cerrada correctamente",
		MontoFinal: montoFinal,
	}, nil
}

// enviarResumen queues the shift summary mail. Best effort: the close already
// happened and a mail failure must not undo it.
func (s *cajaService) enviarResumen(ctx context.Context, caja *model.Caja, vendido decimal.Decimal) {
	if s.dispatcher == nil || s.resumenMail == "" {
		return
	}
	cajero := ""
	if caja.Usuario != nil {
		cajero = caja.Usuario.Nombre
	}
	body := fmt.Sprintf(
		"Cierre de caja %s\n\nCajero: %s\nApertura: %s\nMonto inicial: %s\nTotal vendido: %s\nMonto final: %s\n",
		caja.FechaCierre.Format("02/01/2006 15:04"),
		cajero,
		caja.FechaApertura.Format("02/01/2006 15:04"),
		caja.MontoInicial.StringFixed(2),
		vendido.StringFixed(2),
		caja.MontoFinal.StringFixed(2),
	)
	err := s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: s.resumenMail,
		Subject: fmt.Sprintf("Cierre de caja %s", caja.FechaCierre.Format("02/01/2006")),
		Body:    body,
	})
	if err != nil {
		log.Error().Err(err).Msg("enqueue resumen de cierre failed")
	}
}

func (s *cajaService) Estado(ctx context.Context) (*dto.EstadoCajaResponse, error) {
	caja, err := s.repo.FindAbierta(ctx)
	if err != nil {
		return &dto.EstadoCajaResponse{
			Abierta: false,
			Mensaje: "No hay una caja abierta",
		}, nil
	}
	vendido, err := s.repo.SumVentasDesde(ctx, caja.FechaApertura)
	if err != nil {
		return nil, err
	}
	totalCaja := caja.MontoInicial.Add(vendido)
	cajero := ""
	if caja.Usuario != nil {
		cajero = caja.Usuario.Nombre
	}
	return &dto.EstadoCajaResponse{
		Abierta:      true,
		IDCaja:       caja.ID.String(),
		MontoInicial: &caja.MontoInicial,
		TotalVendido: &vendido,
		TotalCaja:    &totalCaja,
		Cajero:       cajero,
	}, nil
}
