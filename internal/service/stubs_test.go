package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"saborpos/internal/model"
	"saborpos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errNotFound = errors.New("not found")

// stubUsuarioRepo is an in-memory UsuarioRepository.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) seed(login, nombre, rol string) *model.Usuario {
	u := &model.Usuario{ID: uuid.New(), Nombre: nombre, Usuario: login, Rol: rol, Activo: true}
	r.usuarios[u.ID] = u
	return u
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) findByUsername(login string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Usuario == login && u.Activo {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, login string) (*model.Usuario, error) {
	return r.findByUsername(login)
}

func (r *stubUsuarioRepo) FindByUsernameTx(_ *gorm.DB, login string) (*model.Usuario, error) {
	return r.findByUsername(login)
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errNotFound
	}
	u.Activo = false
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubProductoRepo is an in-memory ProductoRepository.
type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) seed(nombre string, precio float64) *model.Producto {
	p := &model.Producto{
		ID:        uuid.New(),
		Nombre:    nombre,
		Precio:    decimal.NewFromFloat(precio),
		Categoria: model.CategoriaPorDefecto,
		Activo:    true,
	}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, soloActivos bool) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		if soloActivos && !p.Activo {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := r.productos[p.ID]; !ok {
		return errNotFound
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.productos[id]; !ok {
		return 0, nil
	}
	delete(r.productos, id)
	return 1, nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubPagoRepo serves a fixed payment method catalog.
type stubPagoRepo struct {
	pagos map[string]*model.Pago
}

func newStubPagoRepo(tipos ...string) *stubPagoRepo {
	r := &stubPagoRepo{pagos: make(map[string]*model.Pago)}
	for _, t := range tipos {
		r.pagos[t] = &model.Pago{ID: uuid.New(), TipoPago: t}
	}
	return r
}

func (r *stubPagoRepo) List(_ context.Context) ([]model.Pago, error) {
	out := make([]model.Pago, 0, len(r.pagos))
	for _, p := range r.pagos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPagoRepo) FindByTipo(_ context.Context, tipo string) (*model.Pago, error) {
	p, ok := r.pagos[tipo]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPagoRepo) FindByTipoTx(_ *gorm.DB, tipo string) (*model.Pago, error) {
	p, ok := r.pagos[tipo]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

// stubCajaRepo tracks one shift, mirroring the single-open-drawer invariant.
type stubCajaRepo struct {
	cajas     map[uuid.UUID]*model.Caja
	sumVentas decimal.Decimal
	sumDesde  time.Time
	sumCalled bool
}

func newStubCajaRepo() *stubCajaRepo {
	return &stubCajaRepo{cajas: make(map[uuid.UUID]*model.Caja), sumVentas: decimal.Zero}
}

func (r *stubCajaRepo) Create(_ context.Context, c *model.Caja) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cajas[c.ID] = c
	return nil
}

func (r *stubCajaRepo) findAbierta() (*model.Caja, error) {
	for _, c := range r.cajas {
		if c.Estado == model.CajaAbierta {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCajaRepo) FindAbierta(_ context.Context) (*model.Caja, error) { return r.findAbierta() }
func (r *stubCajaRepo) FindAbiertaTx(_ *gorm.DB) (*model.Caja, error)      { return r.findAbierta() }

func (r *stubCajaRepo) Update(_ context.Context, c *model.Caja) error {
	r.cajas[c.ID] = c
	return nil
}

func (r *stubCajaRepo) SumVentasDesde(_ context.Context, desde time.Time) (decimal.Decimal, error) {
	r.sumCalled = true
	r.sumDesde = desde
	return r.sumVentas, nil
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// stubVentaRepo is an in-memory VentaRepository.
type stubVentaRepo struct {
	ventas []*model.Venta
}

func newStubVentaRepo() *stubVentaRepo { return &stubVentaRepo{} }

func (r *stubVentaRepo) Create(_ context.Context, _ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas = append(r.ventas, v)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errNotFound
}

func (r *stubVentaRepo) ListTodas(_ context.Context) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for i := len(r.ventas) - 1; i >= 0; i-- {
		out = append(out, *r.ventas[i])
	}
	return out, nil
}

func (r *stubVentaRepo) ListPorRango(_ context.Context, desde, hasta time.Time) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if !v.FechaVenta.Before(desde) && v.FechaVenta.Before(hasta) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) CountDelDiaTx(_ *gorm.DB, dia time.Time) (int64, error) {
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	fin := inicio.AddDate(0, 0, 1)
	var count int64
	for _, v := range r.ventas {
		if !v.FechaVenta.Before(inicio) && v.FechaVenta.Before(fin) {
			count++
		}
	}
	return count, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubComandaRepo is an in-memory ComandaRepository.
type stubComandaRepo struct {
	comandas []*model.Comanda
}

func newStubComandaRepo() *stubComandaRepo { return &stubComandaRepo{} }

func (r *stubComandaRepo) Create(_ context.Context, _ *gorm.DB, c *model.Comanda) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.comandas = append(r.comandas, c)
	return nil
}

func (r *stubComandaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Comanda, error) {
	for _, c := range r.comandas {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubComandaRepo) Update(_ context.Context, c *model.Comanda) error {
	for i, existing := range r.comandas {
		if existing.ID == c.ID {
			r.comandas[i] = c
			return nil
		}
	}
	return errNotFound
}

func (r *stubComandaRepo) ListActivas(_ context.Context) ([]model.Comanda, error) {
	var out []model.Comanda
	for _, c := range r.comandas {
		if c.Estado == model.ComandaPendiente || c.Estado == model.ComandaPreparacion {
			out = append(out, *c)
		}
	}
	// FIFO as the real repo orders by fecha_envio
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].FechaEnvio.Before(out[i].FechaEnvio) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *stubComandaRepo) ListCompletadas(_ context.Context, limit int) ([]model.Comanda, error) {
	var out []model.Comanda
	for _, c := range r.comandas {
		if c.Estado == model.ComandaListo || c.Estado == model.ComandaEntregado {
			out = append(out, *c)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repository.ComandaRepository = (*stubComandaRepo)(nil)

// stubReporteRepo accumulates the rollup buckets in memory.
type stubReporteRepo struct {
	diario    map[string]decimal.Decimal
	semanal   map[[2]int]decimal.Decimal
	mensual   map[[2]int]decimal.Decimal
	anual     map[int]decimal.Decimal
	failTabla string // when set, the matching Sumar* returns an error
	topPago   string
}

func newStubReporteRepo() *stubReporteRepo {
	return &stubReporteRepo{
		diario:  make(map[string]decimal.Decimal),
		semanal: make(map[[2]int]decimal.Decimal),
		mensual: make(map[[2]int]decimal.Decimal),
		anual:   make(map[int]decimal.Decimal),
		topPago: "N/A",
	}
}

func (r *stubReporteRepo) SumarDiario(_ context.Context, fecha time.Time, total decimal.Decimal) error {
	if r.failTabla == "diario" {
		return errors.New("diario failed")
	}
	key := fecha.Format("2006-01-02")
	r.diario[key] = r.diario[key].Add(total)
	return nil
}

func (r *stubReporteRepo) SumarSemanal(_ context.Context, semana, anio int, total decimal.Decimal) error {
	if r.failTabla == "semanal" {
		return errors.New("semanal failed")
	}
	key := [2]int{semana, anio}
	r.semanal[key] = r.semanal[key].Add(total)
	return nil
}

func (r *stubReporteRepo) SumarMensual(_ context.Context, mes, anio int, total decimal.Decimal) error {
	if r.failTabla == "mensual" {
		return errors.New("mensual failed")
	}
	key := [2]int{mes, anio}
	r.mensual[key] = r.mensual[key].Add(total)
	return nil
}

func (r *stubReporteRepo) SumarAnual(_ context.Context, anio int, total decimal.Decimal) error {
	if r.failTabla == "anual" {
		return errors.New("anual failed")
	}
	r.anual[anio] = r.anual[anio].Add(total)
	return nil
}

func (r *stubReporteRepo) ListDiarias(_ context.Context) ([]model.VentasDiarias, error) {
	var out []model.VentasDiarias
	for k, v := range r.diario {
		fecha, _ := time.Parse("2006-01-02", k)
		out = append(out, model.VentasDiarias{Fecha: fecha, TotalVentas: v})
	}
	return out, nil
}

func (r *stubReporteRepo) ListSemanales(_ context.Context) ([]model.VentasSemanales, error) {
	var out []model.VentasSemanales
	for k, v := range r.semanal {
		out = append(out, model.VentasSemanales{Semana: k[0], Anio: k[1], TotalVentas: v})
	}
	return out, nil
}

func (r *stubReporteRepo) ListMensuales(_ context.Context) ([]model.VentasMensuales, error) {
	var out []model.VentasMensuales
	for k, v := range r.mensual {
		out = append(out, model.VentasMensuales{Mes: k[0], Anio: k[1], TotalVentas: v})
	}
	return out, nil
}

func (r *stubReporteRepo) ListAnuales(_ context.Context) ([]model.VentasAnuales, error) {
	var out []model.VentasAnuales
	for k, v := range r.anual {
		out = append(out, model.VentasAnuales{Anio: k, TotalVentas: v})
	}
	return out, nil
}

func (r *stubReporteRepo) TopMetodoPago(_ context.Context, _, _ time.Time) (string, error) {
	return r.topPago, nil
}

var _ repository.ReporteRepository = (*stubReporteRepo)(nil)

// stubAsistenciaRepo is an in-memory AsistenciaRepository.
type stubAsistenciaRepo struct {
	registros []*model.Asistencia
}

func newStubAsistenciaRepo() *stubAsistenciaRepo { return &stubAsistenciaRepo{} }

func (r *stubAsistenciaRepo) Create(_ context.Context, a *model.Asistencia) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.registros = append(r.registros, a)
	return nil
}

func (r *stubAsistenciaRepo) FindAbiertaHoy(_ context.Context, nombre, apellido string, fecha time.Time) (*model.Asistencia, error) {
	dia := fecha.Format("2006-01-02")
	var latest *model.Asistencia
	for _, a := range r.registros {
		if a.HoraSalida != nil || a.Fecha.Format("2006-01-02") != dia {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(a.Nombre), strings.TrimSpace(nombre)) ||
			!strings.EqualFold(strings.TrimSpace(a.Apellido), strings.TrimSpace(apellido)) {
			continue
		}
		if latest == nil || a.HoraIngreso.After(latest.HoraIngreso) {
			latest = a
		}
	}
	if latest == nil {
		return nil, errNotFound
	}
	return latest, nil
}

func (r *stubAsistenciaRepo) Update(_ context.Context, a *model.Asistencia) error {
	for i, existing := range r.registros {
		if existing.ID == a.ID {
			r.registros[i] = a
			return nil
		}
	}
	return errNotFound
}

func (r *stubAsistenciaRepo) ListPorFecha(_ context.Context, fecha time.Time) ([]model.Asistencia, error) {
	dia := fecha.Format("2006-01-02")
	var out []model.Asistencia
	for _, a := range r.registros {
		if a.Fecha.Format("2006-01-02") == dia {
			out = append(out, *a)
		}
	}
	return out, nil
}

var _ repository.AsistenciaRepository = (*stubAsistenciaRepo)(nil)
