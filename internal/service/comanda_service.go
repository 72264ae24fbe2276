package service

import (
	"context"
	"fmt"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/model"
	"saborpos/internal/repository"

	"github.com/google/uuid"
)

const completadasLimit = 50

type ComandaService interface {
	// Pendientes returns the kitchen queue, oldest ticket first.
	Pendientes(ctx context.Context) ([]dto.ComandaResponse, error)
	Completadas(ctx context.Context) ([]dto.ComandaResponse, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.ComandaResponse, error)
}

type comandaService struct {
	repo repository.ComandaRepository
}

func NewComandaService(repo repository.ComandaRepository) ComandaService {
	return &comandaService{repo: repo}
}

func (s *comandaService) Pendientes(ctx context.Context) ([]dto.ComandaResponse, error) {
	comandas, err := s.repo.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	return comandasToResponse(comandas), nil
}

func (s *comandaService) Completadas(ctx context.Context) ([]dto.ComandaResponse, error) {
	comandas, err := s.repo.ListCompletadas(ctx, completadasLimit)
	if err != nil {
		return nil, err
	}
	return comandasToResponse(comandas), nil
}

// ActualizarEstado moves a ticket to any valid estado. Reaching "Listo" or
// "Entregado" stamps FechaEntrega; moving back does not clear it.
func (s *comandaService) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.ComandaResponse, error) {
	valido := false
	for _, e := range model.EstadosComanda {
		if e == estado {
			valido = true
			break
		}
	}
	if !valido {
		return nil, apierror.Validation(fmt.Sprintf("estado de comanda inválido: %q", estado))
	}

	comanda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("comanda no encontrada")
	}

	comanda.Estado = estado
	if (estado == model.ComandaListo || estado == model.ComandaEntregado) && comanda.FechaEntrega == nil {
		ahora := time.Now()
		comanda.FechaEntrega = &ahora
	}
	if err := s.repo.Update(ctx, comanda); err != nil {
		return nil, err
	}
	resp := comandaToResponse(comanda)
	return &resp, nil
}

func comandasToResponse(comandas []model.Comanda) []dto.ComandaResponse {
	out := make([]dto.ComandaResponse, 0, len(comandas))
	for i := range comandas {
		out = append(out, comandaToResponse(&comandas[i]))
	}
	return out
}

func comandaToResponse(c *model.Comanda) dto.ComandaResponse {
	resp := dto.ComandaResponse{
		ID:           c.ID.String(),
		Estado:       c.Estado,
		FechaEnvio:   c.FechaEnvio,
		FechaEntrega: c.FechaEntrega,
		Productos:    []dto.ItemComandaResponse{},
	}
	if c.Venta != nil {
		resp.NumeroTicket = c.Venta.NumeroTicket
		resp.TipoPedido = c.Venta.TipoPedido
		resp.Cliente = c.Venta.NombreCliente
		for _, d := range c.Venta.Detalles {
			nombre := ""
			if d.Producto != nil {
				nombre = d.Producto.Nombre
			}
			resp.Productos = append(resp.Productos, dto.ItemComandaResponse{
				Producto: nombre,
				Cantidad: d.Cantidad,
			})
		}
	}
	return resp
}
