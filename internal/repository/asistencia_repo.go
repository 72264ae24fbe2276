package repository

import (
	"context"
	"time"

	"saborpos/internal/model"

	"gorm.io/gorm"
)

type AsistenciaRepository interface {
	Create(ctx context.Context, a *model.Asistencia) error
	// FindAbiertaHoy locates the open record (no clock-out) with the latest
	// clock-in for the given name on fecha. Name matching is trimmed and
	// case-insensitive.
	FindAbiertaHoy(ctx context.Context, nombre, apellido string, fecha time.Time) (*model.Asistencia, error)
	Update(ctx context.Context, a *model.Asistencia) error
	ListPorFecha(ctx context.Context, fecha time.Time) ([]model.Asistencia, error)
}

type asistenciaRepo struct{ db *gorm.DB }

func NewAsistenciaRepository(db *gorm.DB) AsistenciaRepository { return &asistenciaRepo{db: db} }

func (r *asistenciaRepo) Create(ctx context.Context, a *model.Asistencia) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *asistenciaRepo) FindAbiertaHoy(ctx context.Context, nombre, apellido string, fecha time.Time) (*model.Asistencia, error) {
	var a model.Asistencia
	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(nombre)) = LOWER(TRIM(?)) AND LOWER(TRIM(apellido)) = LOWER(TRIM(?))", nombre, apellido).
		Where("fecha = ? AND hora_salida IS NULL", fecha.Format("2006-01-02")).
		Order("hora_ingreso DESC").
		First(&a).Error
	return &a, err
}

func (r *asistenciaRepo) Update(ctx context.Context, a *model.Asistencia) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *asistenciaRepo) ListPorFecha(ctx context.Context, fecha time.Time) ([]model.Asistencia, error) {
	var registros []model.Asistencia
	err := r.db.WithContext(ctx).
		Where("fecha = ?", fecha.Format("2006-01-02")).
		Order("hora_ingreso ASC").
		Find(&registros).Error
	return registros, err
}
