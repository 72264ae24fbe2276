package repository

import (
	"context"

	"saborpos/internal/model"

	"gorm.io/gorm"
)

type PagoRepository interface {
	List(ctx context.Context) ([]model.Pago, error)
	FindByTipo(ctx context.Context, tipo string) (*model.Pago, error)
	FindByTipoTx(tx *gorm.DB, tipo string) (*model.Pago, error)
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) List(ctx context.Context) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).Order("tipo_pago ASC").Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) FindByTipo(ctx context.Context, tipo string) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).Where("tipo_pago = ?", tipo).First(&p).Error
	return &p, err
}

func (r *pagoRepo) FindByTipoTx(tx *gorm.DB, tipo string) (*model.Pago, error) {
	var p model.Pago
	err := tx.Where("tipo_pago = ?", tipo).First(&p).Error
	return &p, err
}
