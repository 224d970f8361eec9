package report

import (
	"sort"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopN caps every ranking.
const TopN = 5

// Desconocido is the bucket for items whose product or client can no longer
// be resolved.
const Desconocido = "Desconocido"

// Entrada is one ranking row.
type Entrada struct {
	Nombre string
	Valor  decimal.Decimal
}

// TopProductos ranks products by units sold inside r, capped at TopN.
// Ties keep the order in which the product was first encountered.
func TopProductos(deudas []model.Deuda, productos map[uuid.UUID]model.Producto, r Rango) []Entrada {
	return top(deudas, r, func(d model.Deuda, acumular func(nombre string, v decimal.Decimal)) {
		for _, item := range d.Items {
			nombre := Desconocido
			if p, ok := productos[item.ProductoID]; ok {
				nombre = p.Nombre
			}
			acumular(nombre, decimal.NewFromInt(int64(item.Cantidad)))
		}
	})
}

// TopClientes ranks clients by revenue (live prices) inside r, capped at
// TopN. Sales without a resolvable client fall back to the recording
// operator, then to the Desconocido bucket.
func TopClientes(deudas []model.Deuda, productos map[uuid.UUID]model.Producto, clientes map[uuid.UUID]model.Cliente, r Rango) []Entrada {
	return top(deudas, r, func(d model.Deuda, acumular func(nombre string, v decimal.Decimal)) {
		nombre := Desconocido
		if d.ClienteID != nil {
			if c, ok := clientes[*d.ClienteID]; ok {
				nombre = c.Nombre
			} else if d.Usuario != "" {
				nombre = d.Usuario
			}
		} else if d.Usuario != "" {
			nombre = d.Usuario
		}
		acumular(nombre, TotalDeuda(d, productos))
	})
}

// top accumulates values per label in first-encountered order, then sorts
// non-increasing with a stable sort so ties keep that order.
func top(deudas []model.Deuda, r Rango, visitar func(model.Deuda, func(string, decimal.Decimal))) []Entrada {
	acumulado := make(map[string]decimal.Decimal)
	orden := make([]string, 0)

	acumular := func(nombre string, v decimal.Decimal) {
		prev, ok := acumulado[nombre]
		if !ok {
			prev = decimal.Zero
			orden = append(orden, nombre)
		}
		acumulado[nombre] = prev.Add(v)
	}

	for _, d := range deudas {
		if !r.Contiene(d.Fecha) {
			continue
		}
		visitar(d, acumular)
	}

	entradas := make([]Entrada, 0, len(orden))
	for _, nombre := range orden {
		entradas = append(entradas, Entrada{Nombre: nombre, Valor: acumulado[nombre]})
	}
	sort.SliceStable(entradas, func(i, j int) bool {
		return entradas[i].Valor.GreaterThan(entradas[j].Valor)
	})
	if len(entradas) > TopN {
		entradas = entradas[:TopN]
	}
	return entradas
}
