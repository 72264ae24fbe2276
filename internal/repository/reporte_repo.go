package repository

import (
	"context"
	"time"

	"saborpos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReporteRepository upserts and reads the rollup tables. Each Sumar* call is
// an independent accumulate-or-insert on one table; the engine applies the
// four of them separately so one failing table never blocks the rest.
type ReporteRepository interface {
	SumarDiario(ctx context.Context, fecha time.Time, total decimal.Decimal) error
	SumarSemanal(ctx context.Context, semana, anio int, total decimal.Decimal) error
	SumarMensual(ctx context.Context, mes, anio int, total decimal.Decimal) error
	SumarAnual(ctx context.Context, anio int, total decimal.Decimal) error

	ListDiarias(ctx context.Context) ([]model.VentasDiarias, error)
	ListSemanales(ctx context.Context) ([]model.VentasSemanales, error)
	ListMensuales(ctx context.Context) ([]model.VentasMensuales, error)
	ListAnuales(ctx context.Context) ([]model.VentasAnuales, error)

	// TopMetodoPago returns the most used payment method label in [desde, hasta).
	TopMetodoPago(ctx context.Context, desde, hasta time.Time) (string, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) SumarDiario(ctx context.Context, fecha time.Time, total decimal.Decimal) error {
	dia := fecha.Format("2006-01-02")
	res := r.db.WithContext(ctx).Model(&model.VentasDiarias{}).
		Where("fecha = ?", dia).
		Update("total_ventas", gorm.Expr("total_ventas + ?", total))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&model.VentasDiarias{
			Fecha:       time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, time.UTC),
			TotalVentas: total,
		}).Error
	}
	return nil
}

func (r *reporteRepo) SumarSemanal(ctx context.Context, semana, anio int, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.VentasSemanales{}).
		Where("semana = ? AND anio = ?", semana, anio).
		Update("total_ventas", gorm.Expr("total_ventas + ?", total))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&model.VentasSemanales{
			Semana: semana, Anio: anio, TotalVentas: total,
		}).Error
	}
	return nil
}

func (r *reporteRepo) SumarMensual(ctx context.Context, mes, anio int, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.VentasMensuales{}).
		Where("mes = ? AND anio = ?", mes, anio).
		Update("total_ventas", gorm.Expr("total_ventas + ?", total))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&model.VentasMensuales{
			Mes: mes, Anio: anio, TotalVentas: total,
		}).Error
	}
	return nil
}

func (r *reporteRepo) SumarAnual(ctx context.Context, anio int, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.VentasAnuales{}).
		Where("anio = ?", anio).
		Update("total_ventas", gorm.Expr("total_ventas + ?", total))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&model.VentasAnuales{
			Anio: anio, TotalVentas: total,
		}).Error
	}
	return nil
}

func (r *reporteRepo) ListDiarias(ctx context.Context) ([]model.VentasDiarias, error) {
	var filas []model.VentasDiarias
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&filas).Error
	return filas, err
}

func (r *reporteRepo) ListSemanales(ctx context.Context) ([]model.VentasSemanales, error) {
	var filas []model.VentasSemanales
	err := r.db.WithContext(ctx).Order("anio DESC, semana DESC").Find(&filas).Error
	return filas, err
}

func (r *reporteRepo) ListMensuales(ctx context.Context) ([]model.VentasMensuales, error) {
	var filas []model.VentasMensuales
	err := r.db.WithContext(ctx).Order("anio DESC, mes DESC").Find(&filas).Error
	return filas, err
}

func (r *reporteRepo) ListAnuales(ctx context.Context) ([]model.VentasAnuales, error) {
	var filas []model.VentasAnuales
	err := r.db.WithContext(ctx).Order("anio DESC").Find(&filas).Error
	return filas, err
}

func (r *reporteRepo) TopMetodoPago(ctx context.Context, desde, hasta time.Time) (string, error) {
	var tipo string
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Select("pagos.tipo_pago").
		Joins("JOIN pagos ON pagos.id = ventas.pago_id").
		Where("ventas.fecha_venta >= ? AND ventas.fecha_venta < ?", desde, hasta).
		Group("pagos.tipo_pago").
		Order("COUNT(*) DESC").
		Limit(1).
		Scan(&tipo).Error
	if err != nil || tipo == "" {
		return "N/A", err
	}
	return tipo, nil
}
