package repository

import (
	"context"

	"saborpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComandaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Comanda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comanda, error)
	Update(ctx context.Context, c *model.Comanda) error
	// ListActivas returns Pendiente / En Preparación tickets, oldest first
	// (FIFO for kitchen staff), with sale and line items attached.
	ListActivas(ctx context.Context) ([]model.Comanda, error)
	// ListCompletadas returns Listo / Entregado tickets, most recently
	// delivered first, capped at limit.
	ListCompletadas(ctx context.Context, limit int) ([]model.Comanda, error)
}

type comandaRepo struct{ db *gorm.DB }

func NewComandaRepository(db *gorm.DB) ComandaRepository { return &comandaRepo{db: db} }

func (r *comandaRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Comanda) error {
	return tx.WithContext(ctx).Create(c).Error
}

func (r *comandaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Comanda, error) {
	var c model.Comanda
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *comandaRepo) Update(ctx context.Context, c *model.Comanda) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *comandaRepo) ListActivas(ctx context.Context) ([]model.Comanda, error) {
	var comandas []model.Comanda
	err := r.db.WithContext(ctx).
		Preload("Venta").Preload("Venta.Detalles.Producto").
		Where("estado IN ?", []string{model.ComandaPendiente, model.ComandaPreparacion}).
		Order("fecha_envio ASC").
		Find(&comandas).Error
	return comandas, err
}

func (r *comandaRepo) ListCompletadas(ctx context.Context, limit int) ([]model.Comanda, error) {
	var comandas []model.Comanda
	err := r.db.WithContext(ctx).
		Preload("Venta").Preload("Venta.Detalles.Producto").
		Where("estado IN ?", []string{model.ComandaListo, model.ComandaEntregado}).
		Order("fecha_entrega DESC").
		Limit(limit).
		Find(&comandas).Error
	return comandas, err
}
