package infra

import (
	"fmt"

	"saborpos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx. Callers run
// RunMigrations themselves before serving.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests against a
// throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Producto{},
		&model.Pago{},
		&model.Caja{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.Comanda{},
		&model.VentasDiarias{},
		&model.VentasSemanales{},
		&model.VentasMensuales{},
		&model.VentasAnuales{},
		&model.Asistencia{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// The partial unique index allows any number of "Cerrada" rows but at most one
// "Abierta" row, closing the query-then-insert race on concurrent opens.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uni_cajas_abierta
		     ON cajas (estado)
		     WHERE estado = 'Abierta'`,
		// The kitchen queue filters by estado and orders by fecha_envio
		`CREATE INDEX IF NOT EXISTS idx_comandas_estado
		     ON comandas (estado, fecha_envio)`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
