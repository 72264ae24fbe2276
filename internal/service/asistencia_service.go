package service

import (
	"context"
	"strings"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/model"
	"saborpos/internal/repository"
)

type AsistenciaService interface {
	// RegistrarIngreso always inserts a fresh record; an employee who forgot
	// to clock out simply accumulates open records and salida resolves the
	// newest one.
	RegistrarIngreso(ctx context.Context, req dto.RegistrarIngresoRequest) (*dto.AsistenciaResponse, error)
	RegistrarSalida(ctx context.Context, req dto.RegistrarSalidaRequest) (*dto.AsistenciaResponse, error)
	ListarPorFecha(ctx context.Context, fecha time.Time) ([]dto.AsistenciaResponse, error)
}

type asistenciaService struct {
	repo repository.AsistenciaRepository
}

func NewAsistenciaService(repo repository.AsistenciaRepository) AsistenciaService {
	return &asistenciaService{repo: repo}
}

func (s *asistenciaService) RegistrarIngreso(ctx context.Context, req dto.RegistrarIngresoRequest) (*dto.AsistenciaResponse, error) {
	ahora := time.Now()
	a := model.Asistencia{
		Nombre:      strings.TrimSpace(req.Nombre),
		Apellido:    strings.TrimSpace(req.Apellido),
		Fecha:       time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, time.UTC),
		HoraIngreso: ahora,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, err
	}
	resp := asistenciaToResponse(&a)
	return &resp, nil
}

func (s *asistenciaService) RegistrarSalida(ctx context.Context, req dto.RegistrarSalidaRequest) (*dto.AsistenciaResponse, error) {
	ahora := time.Now()
	a, err := s.repo.FindAbiertaHoy(ctx, req.Nombre, req.Apellido, ahora)
	if err != nil {
		return nil, apierror.NotFound("no hay un ingreso abierto para hoy")
	}
	a.HoraSalida = &ahora
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := asistenciaToResponse(a)
	return &resp, nil
}

func (s *asistenciaService) ListarPorFecha(ctx context.Context, fecha time.Time) ([]dto.AsistenciaResponse, error) {
	registros, err := s.repo.ListPorFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AsistenciaResponse, 0, len(registros))
	for i := range registros {
		out = append(out, asistenciaToResponse(&registros[i]))
	}
	return out, nil
}

func asistenciaToResponse(a *model.Asistencia) dto.AsistenciaResponse {
	return dto.AsistenciaResponse{
		ID:          a.ID.String(),
		Nombre:      a.Nombre,
		Apellido:    a.Apellido,
		Fecha:       a.Fecha.Format("2006-01-02"),
		HoraIngreso: a.HoraIngreso,
		HoraSalida:  a.HoraSalida,
	}
}
