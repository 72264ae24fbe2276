package service_test

import (
	"context"
	"testing"
	"time"

	"saborpos/internal/apierror"
	"saborpos/internal/model"
	"saborpos/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedComanda(repo *stubComandaRepo, estado string, envio time.Time) *model.Comanda {
	c := &model.Comanda{
		ID:         uuid.New(),
		VentaID:    uuid.New(),
		Estado:     estado,
		FechaEnvio: envio,
	}
	repo.comandas = append(repo.comandas, c)
	return c
}

func TestActualizarEstado_ListoEstampaEntrega(t *testing.T) {
	repo := newStubComandaRepo()
	svc := service.NewComandaService(repo)
	c := seedComanda(repo, model.ComandaPendiente, time.Now())

	resp, err := svc.ActualizarEstado(context.Background(), c.ID, model.ComandaListo)
	require.NoError(t, err)
	assert.Equal(t, model.ComandaListo, resp.Estado)
	require.NotNil(t, resp.FechaEntrega)
	assert.WithinDuration(t, time.Now(), *resp.FechaEntrega, 5*time.Second)
}

func TestActualizarEstado_PreparacionNoEstampa(t *testing.T) {
	repo := newStubComandaRepo()
	svc := service.NewComandaService(repo)
	c := seedComanda(repo, model.ComandaPendiente, time.Now())

	resp, err := svc.ActualizarEstado(context.Background(), c.ID, model.ComandaPreparacion)
	require.NoError(t, err)
	assert.Nil(t, resp.FechaEntrega)
}

func TestActualizarEstado_Invalido(t *testing.T) {
	repo := newStubComandaRepo()
	svc := service.NewComandaService(repo)
	c := seedComanda(repo, model.ComandaPendiente, time.Now())

	_, err := svc.ActualizarEstado(context.Background(), c.ID, "Cancelado")
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Equal(t, model.ComandaPendiente, repo.comandas[0].Estado, "estado must stay unchanged")
}

func TestActualizarEstado_NoEncontrada(t *testing.T) {
	repo := newStubComandaRepo()
	svc := service.NewComandaService(repo)

	_, err := svc.ActualizarEstado(context.Background(), uuid.New(), model.ComandaListo)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestPendientes_OrdenFIFO(t *testing.T) {
	repo := newStubComandaRepo()
	svc := service.NewComandaService(repo)

	ahora := time.Now()
	reciente := seedComanda(repo, model.ComandaPendiente, ahora)
	antigua := seedComanda(repo, model.ComandaPreparacion, ahora.Add(-10*time.Minute))
	seedComanda(repo, model.ComandaEntregado, ahora.Add(-20*time.Minute))

	pendientes, err := svc.Pendientes(context.Background())
	require.NoError(t, err)
	require.Len(t, pendientes, 2, "delivered tickets stay out of the queue")
	assert.Equal(t, antigua.ID.String(), pendientes[0].ID, "oldest ticket first")
	assert.Equal(t, reciente.ID.String(), pendientes[1].ID)
}

func TestCompletadas_SoloListasYEntregadas(t *testing.T) {
	repo := newStubComandaRepo()
	svc := service.NewComandaService(repo)

	ahora := time.Now()
	seedComanda(repo, model.ComandaPendiente, ahora)
	seedComanda(repo, model.ComandaListo, ahora)
	seedComanda(repo, model.ComandaEntregado, ahora)

	completadas, err := svc.Completadas(context.Background())
	require.NoError(t, err)
	assert.Len(t, completadas, 2)
}
