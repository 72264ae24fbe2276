package service

import (
	"context"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/model"
	"saborpos/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	// Listar returns the catalog; soloActivos filters out deactivated items.
	Listar(ctx context.Context, soloActivos bool) ([]dto.ProductoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if !req.Precio.IsPositive() {
		return nil, apierror.Validation("el precio debe ser mayor que cero")
	}
	categoria := req.Categoria
	if categoria == "" {
		categoria = model.CategoriaPorDefecto
	}
	p := model.Producto{
		Nombre:    req.Nombre,
		Precio:    req.Precio,
		Categoria: categoria,
		Activo:    true,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	resp := productoToResponse(&p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, soloActivos bool) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, soloActivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, productoToResponse(&productos[i]))
	}
	return out, nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("producto no encontrado")
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	if !req.Precio.IsPositive() {
		return nil, apierror.Validation("el precio debe ser mayor que cero")
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("producto no encontrado")
	}
	p.Nombre = req.Nombre
	p.Precio = req.Precio
	if req.Categoria != "" {
		p.Categoria = req.Categoria
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

// Eliminar removes the product permanently. Past sales keep the captured
// price and quantity in their DetalleVenta rows; the product reference is
// cleared.
func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NotFound("producto no encontrado")
	}
	return nil
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		Categoria: p.Categoria,
	}
}
