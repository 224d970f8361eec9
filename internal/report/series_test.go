package report

import (
	"testing"

	"kiosko/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlujoCaja_FusionaVentasYEgresosPorFecha(t *testing.T) {
	idx := IndexarProductos(catalogo())
	deudas := []model.Deuda{
		deuda(&cliAna, "2024-01-10", true, "", itemSpec{prodGaseosa, 1}, itemSpec{prodPan, 1}), // 1500
	}
	egresos := []model.Egreso{egreso(500, "2024-01-10", "bolsas")}

	serie := FlujoCaja(deudas, egresos, idx, abierto())

	require.Len(t, serie, 1)
	assert.Equal(t, "2024-01-10", serie[0].Fecha)
	assert.Equal(t, "1500", serie[0].Ventas.String())
	assert.Equal(t, "500", serie[0].Egresos.String())
}

func TestFlujoCaja_FechasSoloDeUnLadoAparecenConCero(t *testing.T) {
	idx := IndexarProductos(catalogo())
	deudas := []model.Deuda{deuda(nil, "2024-01-12", false, "", itemSpec{prodPan, 2})}
	egresos := []model.Egreso{egreso(300, "2024-01-14", "velas")}

	serie := FlujoCaja(deudas, egresos, idx, abierto())

	require.Len(t, serie, 2)
	assert.Equal(t, "2024-01-12", serie[0].Fecha)
	assert.Equal(t, "1000", serie[0].Ventas.String())
	assert.True(t, serie[0].Egresos.IsZero())

	assert.Equal(t, "2024-01-14", serie[1].Fecha)
	assert.True(t, serie[1].Ventas.IsZero())
	assert.Equal(t, "300", serie[1].Egresos.String())
}

func TestFlujoCaja_OrdenAscendentePorFecha(t *testing.T) {
	idx := IndexarProductos(catalogo())
	deudas := []model.Deuda{
		deuda(nil, "2024-03-01", false, "", itemSpec{prodPan, 1}),
		deuda(nil, "2024-01-20", false, "", itemSpec{prodPan, 1}),
		deuda(nil, "2024-02-10", false, "", itemSpec{prodPan, 1}),
	}

	serie := FlujoCaja(deudas, nil, idx, abierto())

	require.Len(t, serie, 3)
	assert.Equal(t, "2024-01-20", serie[0].Fecha)
	assert.Equal(t, "2024-02-10", serie[1].Fecha)
	assert.Equal(t, "2024-03-01", serie[2].Fecha)
}

func TestFlujoCaja_AgrupaVariasVentasDelMismoDia(t *testing.T) {
	idx := IndexarProductos(catalogo())
	deudas := []model.Deuda{
		deuda(&cliAna, "2024-01-10", true, "", itemSpec{prodGaseosa, 1}),
		deuda(&cliLuis, "2024-01-10", false, "", itemSpec{prodGaseosa, 2}),
	}

	serie := FlujoCaja(deudas, nil, idx, abierto())

	require.Len(t, serie, 1)
	assert.Equal(t, "3000", serie[0].Ventas.String())
}

func TestFlujoCaja_VacioDaSerieVacia(t *testing.T) {
	serie := FlujoCaja(nil, nil, nil, abierto())
	assert.Empty(t, serie)
}

func TestFlujoCaja_FiltraFueraDeRango(t *testing.T) {
	idx := IndexarProductos(catalogo())
	deudas := []model.Deuda{
		deuda(nil, "2024-01-05", false, "", itemSpec{prodPan, 1}),
		deuda(nil, "2024-01-15", false, "", itemSpec{prodPan, 1}),
	}
	r := Rango{Desde: fecha("2024-01-10"), Hasta: fecha("2024-01-31")}

	serie := FlujoCaja(deudas, nil, idx, r)
	require.Len(t, serie, 1)
	assert.Equal(t, "2024-01-15", serie[0].Fecha)
}
