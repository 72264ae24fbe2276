package service_test

import (
	"context"
	"testing"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/dto"
	"saborpos/internal/model"
	"saborpos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCajaSvc(t *testing.T) (service.CajaService, *stubCajaRepo, *stubUsuarioRepo) {
	t.Helper()
	cajaRepo := newStubCajaRepo()
	usuarioRepo := newStubUsuarioRepo()
	usuarioRepo.seed("cajero1", "Cajero Demo", model.RolCajero)
	svc := service.NewCajaService(cajaRepo, usuarioRepo, nil, "")
	return svc, cajaRepo, usuarioRepo
}

func TestAbrirCaja(t *testing.T) {
	svc, cajaRepo, _ := buildCajaSvc(t)

	resp, err := svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario:      "cajero1",
		MontoInicial: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.IDCaja)

	abierta, err := cajaRepo.FindAbierta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.CajaAbierta, abierta.Estado)
	assert.True(t, abierta.MontoInicial.Equal(decimal.NewFromInt(100)))
}

func TestAbrirCaja_YaAbierta(t *testing.T) {
	svc, _, _ := buildCajaSvc(t)

	_, err := svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "cajero1", MontoInicial: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "cajero1", MontoInicial: decimal.NewFromInt(50),
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestAbrirCaja_MontoNegativo(t *testing.T) {
	svc, _, _ := buildCajaSvc(t)

	_, err := svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "cajero1", MontoInicial: decimal.NewFromInt(-1),
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestAbrirCaja_UsuarioDesconocido(t *testing.T) {
	svc, _, _ := buildCajaSvc(t)

	_, err := svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "fantasma", MontoInicial: decimal.NewFromInt(100),
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestCerrarCaja_SumaVentasDelTurno(t *testing.T) {
	svc, cajaRepo, _ := buildCajaSvc(t)
	cajaRepo.sumVentas = decimal.NewFromFloat(250.50)

	_, err := svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "cajero1", MontoInicial: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	resp, err := svc.Cerrar(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.MontoFinal.Equal(decimal.NewFromFloat(350.50)), "monto final = %s", resp.MontoFinal)
	assert.True(t, cajaRepo.sumCalled, "must total sales since apertura")

	// Only sales inside the shift window count.
	for _, c := range cajaRepo.cajas {
		assert.Equal(t, model.CajaCerrada, c.Estado)
		require.NotNil(t, c.FechaCierre)
		assert.WithinDuration(t, time.Now(), *c.FechaCierre, 5*time.Second)
		assert.Equal(t, c.FechaApertura, cajaRepo.sumDesde)
	}
}

func TestCerrarCaja_SinCajaAbierta(t *testing.T) {
	svc, _, _ := buildCajaSvc(t)

	_, err := svc.Cerrar(context.Background())
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestReabrirDespuesDeCierre(t *testing.T) {
	svc, _, _ := buildCajaSvc(t)

	_, err := svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "cajero1", MontoInicial: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	_, err = svc.Cerrar(context.Background())
	require.NoError(t, err)

	// A fresh shift opens independently of the closed one.
	resp, err := svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "cajero1", MontoInicial: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.IDCaja)
}

func TestEstadoCaja(t *testing.T) {
	svc, cajaRepo, _ := buildCajaSvc(t)

	estado, err := svc.Estado(context.Background())
	require.NoError(t, err)
	assert.False(t, estado.Abierta)

	cajaRepo.sumVentas = decimal.NewFromInt(40)
	_, err = svc.Abrir(context.Background(), dto.AbrirCajaRequest{
		Usuario: "cajero1", MontoInicial: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	estado, err = svc.Estado(context.Background())
	require.NoError(t, err)
	assert.True(t, estado.Abierta)
	require.NotNil(t, estado.TotalCaja)
	assert.True(t, estado.TotalCaja.Equal(decimal.NewFromInt(100)))
}
