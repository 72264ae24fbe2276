package repository

import (
	"context"
	"time"

	"saborpos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CajaRepository interface {
	Create(ctx context.Context, c *model.Caja) error
	// FindAbierta returns the single open shift, system-wide.
	FindAbierta(ctx context.Context) (*model.Caja, error)
	FindAbiertaTx(tx *gorm.DB) (*model.Caja, error)
	Update(ctx context.Context, c *model.Caja) error
	// SumVentasDesde totals every sale recorded at or after desde — the
	// accumulated amount of the shift that opened then.
	SumVentasDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) Create(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) FindAbierta(ctx context.Context) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("estado = ?", model.CajaAbierta).
		Order("fecha_apertura DESC").
		First(&c).Error
	return &c, err
}

func (r *cajaRepo) FindAbiertaTx(tx *gorm.DB) (*model.Caja, error) {
	var c model.Caja
	err := tx.Where("estado = ?", model.CajaAbierta).
		Order("fecha_apertura DESC").
		First(&c).Error
	return &c, err
}

func (r *cajaRepo) Update(ctx context.Context, c *model.Caja) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cajaRepo) SumVentasDesde(ctx context.Context, desde time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("fecha_venta >= ?", desde).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}
