package repository

import (
	"context"
	"time"

	"saborpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	ListTodas(ctx context.Context) ([]model.Venta, error)
	// ListPorRango returns fully-loaded sales in [desde, hasta).
	ListPorRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error)
	// CountDelDiaTx counts sales already recorded on dia's calendar day.
	// Runs inside the registration transaction so the per-day ticket
	// sequence and the insert are isolated together.
	CountDelDiaTx(tx *gorm.DB, dia time.Time) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) Create(ctx context.Context, tx *gorm.DB, v *model.Venta) error {
	return tx.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Pago").
		Preload("Detalles.Producto").Preload("Comanda").
		First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) ListTodas(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Pago").Preload("Detalles.Producto").
		Order("fecha_venta DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListPorRango(ctx context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Preload("Usuario").Preload("Pago").Preload("Detalles.Producto").
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Order("fecha_venta ASC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) CountDelDiaTx(tx *gorm.DB, dia time.Time) (int64, error) {
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	var count int64
	err := tx.Model(&model.Venta{}).
		Where("fecha_venta >= ? AND fecha_venta < ?", inicio, inicio.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}
