package report

import (
	"kiosko/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IndexarProductos builds the id → product lookup the engine uses to resolve
// live prices and names.
func IndexarProductos(productos []model.Producto) map[uuid.UUID]model.Producto {
	idx := make(map[uuid.UUID]model.Producto, len(productos))
	for _, p := range productos {
		idx[p.ID] = p
	}
	return idx
}

// IndexarClientes builds the id → client lookup for name resolution.
func IndexarClientes(clientes []model.Cliente) map[uuid.UUID]model.Cliente {
	idx := make(map[uuid.UUID]model.Cliente, len(clientes))
	for _, c := range clientes {
		idx[c.ID] = c
	}
	return idx
}

// TotalDeuda values a sale at the catalog's current prices. Items whose
// product no longer exists contribute zero.
func TotalDeuda(d model.Deuda, productos map[uuid.UUID]model.Producto) decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		p, ok := productos[item.ProductoID]
		if !ok {
			continue
		}
		total = total.Add(p.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}
	return total
}

// TotalDeudaSnapshot values a sale at the prices stored on its items — the
// price at the moment of sale. The sales report uses this, so historical
// totals stay fixed when catalog prices change.
func TotalDeudaSnapshot(d model.Deuda) decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}
	return total
}

// Totales are the KPI aggregates over a filtered window.
type Totales struct {
	TotalVentas        decimal.Decimal // all sales, paid or not
	IngresosPercibidos decimal.Decimal // paid sales only
	SaldoPendiente     decimal.Decimal // TotalVentas - IngresosPercibidos
	TotalEgresos       decimal.Decimal
	ResultadoNeto      decimal.Decimal // IngresosPercibidos - TotalEgresos
}

// CalcularTotales computes the KPI set over the sales and expenses that fall
// inside r. Sales are valued at live prices.
func CalcularTotales(deudas []model.Deuda, egresos []model.Egreso, productos map[uuid.UUID]model.Producto, r Rango) Totales {
	t := Totales{
		TotalVentas:        decimal.Zero,
		IngresosPercibidos: decimal.Zero,
		TotalEgresos:       decimal.Zero,
	}
	for _, d := range deudas {
		if !r.Contiene(d.Fecha) {
			continue
		}
		total := TotalDeuda(d, productos)
		t.TotalVentas = t.TotalVentas.Add(total)
		if d.Pagada {
			t.IngresosPercibidos = t.IngresosPercibidos.Add(total)
		}
	}
	for _, e := range egresos {
		if !r.Contiene(e.Fecha) {
			continue
		}
		t.TotalEgresos = t.TotalEgresos.Add(e.Monto)
	}
	t.SaldoPendiente = t.TotalVentas.Sub(t.IngresosPercibidos)
	t.ResultadoNeto = t.IngresosPercibidos.Sub(t.TotalEgresos)
	return t
}

// Resumen is the dashboard card set: all-time money figures with the initial
// investment folded in once, plus entity counts.
type Resumen struct {
	DineroRecibido  decimal.Decimal
	DineroPendiente decimal.Decimal
	SaldoActual     decimal.Decimal
	GastosTotales   decimal.Decimal
	VentasTotales   int
	DeudasActivas   int
	BaseClientes    int
}

// CalcularResumen derives the dashboard summary from the full collections —
// the dashboard is never range-filtered.
func CalcularResumen(deudas []model.Deuda, egresos []model.Egreso, productos map[uuid.UUID]model.Producto, numClientes int, inversion decimal.Decimal) Resumen {
	pagado := decimal.Zero
	pendiente := decimal.Zero
	activas := 0
	for _, d := range deudas {
		total := TotalDeuda(d, productos)
		if d.Pagada {
			pagado = pagado.Add(total)
		} else {
			pendiente = pendiente.Add(total)
			activas++
		}
	}
	gastos := decimal.Zero
	for _, e := range egresos {
		gastos = gastos.Add(e.Monto)
	}

	recibido := pagado.Add(inversion)
	return Resumen{
		DineroRecibido:  recibido,
		DineroPendiente: pendiente,
		SaldoActual:     recibido.Sub(gastos),
		GastosTotales:   gastos,
		VentasTotales:   len(deudas),
		DeudasActivas:   activas,
		BaseClientes:    numClientes,
	}
}
