package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rollup tables: one row per time bucket, TotalVentas accumulated on every
// committed sale. Rows are upserted, never deleted.

type VentasDiarias struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha       time.Time       `gorm:"type:date;uniqueIndex;not null"`
	TotalVentas decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

type VentasSemanales struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Semana      int             `gorm:"not null;uniqueIndex:idx_semana_anio"`
	Anio        int             `gorm:"not null;uniqueIndex:idx_semana_anio"`
	TotalVentas decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

type VentasMensuales struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Mes         int             `gorm:"not null;uniqueIndex:idx_mes_anio"`
	Anio        int             `gorm:"not null;uniqueIndex:idx_mes_anio"`
	TotalVentas decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

type VentasAnuales struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Anio        int             `gorm:"uniqueIndex;not null"`
	TotalVentas decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
