package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registro struct {
	ID     string
	Nombre string
}

func nuevaColeccion() *Coleccion[registro] {
	return New(func(r registro) string { return r.ID })
}

func TestColeccion_CargarPreservaOrden(t *testing.T) {
	c := nuevaColeccion()
	c.Cargar([]registro{{"b", "dos"}, {"a", "uno"}, {"c", "tres"}})

	lista := c.Lista()
	require.Len(t, lista, 3)
	assert.Equal(t, "b", lista[0].ID)
	assert.Equal(t, "a", lista[1].ID)
	assert.Equal(t, "c", lista[2].ID)
}

func TestColeccion_PonerActualizaSinMoverPosicion(t *testing.T) {
	c := nuevaColeccion()
	c.Cargar([]registro{{"a", "uno"}, {"b", "dos"}})

	c.Poner(registro{"a", "uno-editado"})

	lista := c.Lista()
	require.Len(t, lista, 2)
	assert.Equal(t, "a", lista[0].ID)
	assert.Equal(t, "uno-editado", lista[0].Nombre)

	got, ok := c.Obtener("a")
	require.True(t, ok)
	assert.Equal(t, "uno-editado", got.Nombre)
}

func TestColeccion_PonerInsertaAlFinal(t *testing.T) {
	c := nuevaColeccion()
	c.Cargar([]registro{{"a", "uno"}})
	c.Poner(registro{"z", "nuevo"})

	lista := c.Lista()
	require.Len(t, lista, 2)
	assert.Equal(t, "z", lista[1].ID)
}

func TestColeccion_Quitar(t *testing.T) {
	c := nuevaColeccion()
	c.Cargar([]registro{{"a", "uno"}, {"b", "dos"}, {"c", "tres"}})

	c.Quitar("b")
	assert.Equal(t, 2, c.Len())
	_, ok := c.Obtener("b")
	assert.False(t, ok)

	lista := c.Lista()
	assert.Equal(t, "a", lista[0].ID)
	assert.Equal(t, "c", lista[1].ID)

	// unknown id is a no-op
	c.Quitar("zzz")
	assert.Equal(t, 2, c.Len())
}
