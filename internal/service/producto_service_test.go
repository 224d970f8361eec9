package service

import (
	"context"
	"testing"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductoCrearYActualizar(t *testing.T) {
	repo := newStubProductoRepo()
	caches := cachesDe(nil, nil, nil, nil)
	svc := NewProductoService(repo, newStubDeudaRepo(), caches, nilResumen())

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Pan", Precio: decimal.NewFromInt(500), Categoria: "otros",
	})
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	actualizado, err := svc.Actualizar(context.Background(), id, dto.ActualizarProductoRequest{
		Nombre: "Pan integral", Precio: decimal.NewFromInt(700), Categoria: "otros",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pan integral", actualizado.Nombre)
	assert.True(t, actualizado.Precio.Equal(decimal.NewFromInt(700)))

	// the cache reflects the update without growing
	assert.Equal(t, 1, caches.Productos.Len())
	cacheado, ok := caches.Productos.Obtener(resp.ID)
	require.True(t, ok)
	assert.Equal(t, "Pan integral", cacheado.Nombre)
}

func TestProductoActualizarInexistente(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo(), newStubDeudaRepo(), cachesDe(nil, nil, nil, nil), nilResumen())

	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarProductoRequest{
		Nombre: "X", Precio: decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestProductoEliminarEnUso(t *testing.T) {
	deudaRepo := newStubDeudaRepo()
	deudaRepo.existePorProducto = true

	repo := newStubProductoRepo()
	prod := model.Producto{ID: uuid.New(), Nombre: "Gaseosa", Precio: decimal.NewFromInt(1000)}
	repo.rows[prod.ID] = prod
	caches := cachesDe(nil, []model.Producto{prod}, nil, nil)

	svc := NewProductoService(repo, deudaRepo, caches, nilResumen())
	err := svc.Eliminar(context.Background(), prod.ID)

	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
	assert.Equal(t, 1, caches.Productos.Len())
}

func TestProductoEliminarSinUso(t *testing.T) {
	repo := newStubProductoRepo()
	prod := model.Producto{ID: uuid.New(), Nombre: "Gaseosa", Precio: decimal.NewFromInt(1000)}
	repo.rows[prod.ID] = prod
	caches := cachesDe(nil, []model.Producto{prod}, nil, nil)

	svc := NewProductoService(repo, newStubDeudaRepo(), caches, nilResumen())
	require.NoError(t, svc.Eliminar(context.Background(), prod.ID))

	assert.Empty(t, repo.rows)
	assert.Equal(t, 0, caches.Productos.Len())
}
