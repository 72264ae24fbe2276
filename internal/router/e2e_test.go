//go:build integration

package router_test

// End-to-end tests against a real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v
//
// Covered flows:
//   - login → abrir caja → registrar venta → cola de cocina → cerrar caja
//   - venta rechazada sin caja abierta
//   - rollups alimentados tras la venta (aplicación inline, sin Redis)

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"saborpos/internal/config"
	"saborpos/internal/infra"
	"saborpos/internal/model"
	"saborpos/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Setup ────────────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:15-alpine",
		tcPostgres.WithDatabase("saborpos_test"),
		tcPostgres.WithUsername("saborpos"),
		tcPostgres.WithPassword("saborpos"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`
		INSERT INTO usuarios (nombre, usuario, password_hash, rol)
		VALUES ('Admin E2E', 'admin', ?, 'Administrador')
		ON CONFLICT (usuario) DO NOTHING
	`, string(hash)).Error)
	require.NoError(t, db.Exec(`INSERT INTO pagos (tipo_pago) VALUES ('Efectivo') ON CONFLICT DO NOTHING`).Error)

	// No Redis: rollups apply inline.
	r, _ := router.New(cfg, db, nil)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	var login struct {
		AccessToken string `json:"access_token"`
	}
	resp := do(t, srv, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"usuario": "admin", "password": "admin123"}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)

	return &testEnv{server: srv, db: db, token: login.AccessToken}
}

func (env *testEnv) crearProducto(t *testing.T, nombre string, precio float64) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/productos",
		jsonBody(t, map[string]any{"nombre": nombre, "precio": precio}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &p)
	return p.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CicloCompletoDeVenta(t *testing.T) {
	env := setupTestEnv(t)
	productoID := env.crearProducto(t, "Salchipapa", 13.00)

	// Abrir caja
	resp := do(t, env.server, "POST", "/api/caja/abrir",
		jsonBody(t, map[string]any{"usuario": "admin", "monto_inicial": 100}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Registrar venta
	resp = do(t, env.server, "POST", "/api/ventas/registrar", jsonBody(t, map[string]any{
		"cajero":      "admin",
		"metodo_pago": "Efectivo",
		"tipo_pedido": "Local",
		"items": []map[string]any{
			{"producto_id": productoID, "cantidad": 2},
		},
	}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var venta struct {
		NumeroTicket  string `json:"numero_ticket"`
		Total         string `json:"total"`
		EstadoComanda string `json:"estado_comanda"`
	}
	decodeJSON(t, resp, &venta)
	assert.Equal(t, "26", venta.Total)
	assert.Equal(t, model.ComandaPendiente, venta.EstadoComanda)
	assert.Regexp(t, `^\d{2}/\d{2}/\d{2}-1$`, venta.NumeroTicket)

	// La comanda aparece en la cola de cocina
	resp = do(t, env.server, "GET", "/api/cocina/pendientes", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cola []struct {
		NumeroTicket string `json:"numero_ticket"`
	}
	decodeJSON(t, resp, &cola)
	require.Len(t, cola, 1)
	assert.Equal(t, venta.NumeroTicket, cola[0].NumeroTicket)

	// El rollup diario acumuló la venta
	resp = do(t, env.server, "GET", "/api/reportes/diario", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reporte struct {
		Filas []struct {
			TotalVentas string `json:"total_ventas"`
		} `json:"filas"`
	}
	decodeJSON(t, resp, &reporte)
	require.Len(t, reporte.Filas, 1)
	assert.Equal(t, "26", reporte.Filas[0].TotalVentas)

	// Cerrar caja: 100 inicial + 26 vendido
	resp = do(t, env.server, "POST", "/api/caja/cerrar", nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cierre struct {
		MontoFinal string `json:"monto_final"`
	}
	decodeJSON(t, resp, &cierre)
	assert.Equal(t, "126", cierre.MontoFinal)
}

func TestE2E_VentaSinCajaAbierta(t *testing.T) {
	env := setupTestEnv(t)
	productoID := env.crearProducto(t, "Papas Fritas", 8.00)

	resp := do(t, env.server, "POST", "/api/ventas/registrar", jsonBody(t, map[string]any{
		"cajero":      "admin",
		"metodo_pago": "Efectivo",
		"tipo_pedido": "Llevar",
		"items": []map[string]any{
			{"producto_id": productoID, "cantidad": 1},
		},
	}), env.token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	var count int64
	require.NoError(t, env.db.Table("ventas").Count(&count).Error)
	assert.Zero(t, count, "rejected sale leaves no rows")
}

func TestE2E_DobleAperturaDeCaja(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/api/caja/abrir",
		jsonBody(t, map[string]any{"usuario": "admin", "monto_inicial": 50}), env.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "POST", "/api/caja/abrir",
		jsonBody(t, map[string]any{"usuario": "admin", "monto_inicial": 50}), env.token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_RutasProtegidas(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/api/ventas/todas", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "GET", "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
