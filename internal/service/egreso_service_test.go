package service

import (
	"context"
	"testing"
	"time"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEgresoCrearEstampaFecha(t *testing.T) {
	repo := newStubEgresoRepo()
	caches := cachesDe(nil, nil, nil, nil)
	svc := NewEgresoService(repo, caches, nilResumen())

	antes := time.Now()
	resp, err := svc.Crear(context.Background(), dto.CrearEgresoRequest{
		Monto: decimal.NewFromInt(3500), Descripcion: "bolsa de hielo",
	})
	require.NoError(t, err)

	fecha, err := time.Parse(time.RFC3339, resp.Fecha)
	require.NoError(t, err)
	assert.False(t, fecha.Before(antes.Truncate(time.Second)))
	assert.Equal(t, 1, caches.Egresos.Len())
}

func TestEgresoActualizarReestampaFecha(t *testing.T) {
	repo := newStubEgresoRepo()
	ayer := time.Now().AddDate(0, 0, -1)
	e := model.Egreso{ID: uuid.New(), Monto: decimal.NewFromInt(1000), Descripcion: "velas", Fecha: ayer}
	repo.rows[e.ID] = e
	caches := cachesDe(nil, nil, nil, []model.Egreso{e})

	svc := NewEgresoService(repo, caches, nilResumen())
	resp, err := svc.Actualizar(context.Background(), e.ID, dto.ActualizarEgresoRequest{
		Monto: decimal.NewFromInt(1200), Descripcion: "velas y fosforos",
	})
	require.NoError(t, err)

	fecha, err := time.Parse(time.RFC3339, resp.Fecha)
	require.NoError(t, err)
	assert.True(t, fecha.After(ayer))
	assert.True(t, resp.Monto.Equal(decimal.NewFromInt(1200)))

	cacheado, ok := caches.Egresos.Obtener(e.ID.String())
	require.True(t, ok)
	assert.Equal(t, "velas y fosforos", cacheado.Descripcion)
}

func TestEgresoActualizarInexistente(t *testing.T) {
	svc := NewEgresoService(newStubEgresoRepo(), cachesDe(nil, nil, nil, nil), nilResumen())

	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarEgresoRequest{
		Monto: decimal.NewFromInt(1), Descripcion: "x",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestEgresoEliminar(t *testing.T) {
	repo := newStubEgresoRepo()
	e := model.Egreso{ID: uuid.New(), Monto: decimal.NewFromInt(1000), Descripcion: "velas", Fecha: time.Now()}
	repo.rows[e.ID] = e
	caches := cachesDe(nil, nil, nil, []model.Egreso{e})

	svc := NewEgresoService(repo, caches, nilResumen())
	require.NoError(t, svc.Eliminar(context.Background(), e.ID))
	assert.Empty(t, repo.rows)
	assert.Equal(t, 0, caches.Egresos.Len())
}
