package service

import (
	"context"
	"testing"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguracionCargarSinDocumento(t *testing.T) {
	svc := NewConfiguracionService(newStubConfiguracionRepo(), nilResumen())
	require.NoError(t, svc.Cargar(context.Background()))
	assert.True(t, svc.InversionInicial().IsZero())
}

func TestConfiguracionGuardarCreaYActualiza(t *testing.T) {
	repo := newStubConfiguracionRepo()
	svc := NewConfiguracionService(repo, nilResumen())

	_, err := svc.GuardarInversion(context.Background(), dto.GuardarInversionRequest{Valor: decimal.NewFromInt(50000)})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 0, repo.updates)

	_, err = svc.GuardarInversion(context.Background(), dto.GuardarInversionRequest{Valor: decimal.NewFromInt(80000)})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 1, repo.updates)

	assert.True(t, svc.InversionInicial().Equal(decimal.NewFromInt(80000)))
	assert.True(t, svc.ObtenerInversion(context.Background()).Valor.Equal(decimal.NewFromInt(80000)))
}

func TestConfiguracionGuardarNegativa(t *testing.T) {
	svc := NewConfiguracionService(newStubConfiguracionRepo(), nilResumen())

	_, err := svc.GuardarInversion(context.Background(), dto.GuardarInversionRequest{Valor: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.True(t, svc.InversionInicial().IsZero())
}

func TestConfiguracionCargarValorExistente(t *testing.T) {
	repo := newStubConfiguracionRepo()
	repo.valores[model.ClaveInversionInicial] = decimal.NewFromInt(120000)

	svc := NewConfiguracionService(repo, nilResumen())
	require.NoError(t, svc.Cargar(context.Background()))
	assert.True(t, svc.InversionInicial().Equal(decimal.NewFromInt(120000)))
}
