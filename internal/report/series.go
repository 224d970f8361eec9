package report

import (
	"sort"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Punto is one row of the cash-flow chart: total sales and total expenses on
// one calendar date. Dates with only one of the two kinds still appear, the
// other side at zero.
type Punto struct {
	Fecha   string // YYYY-MM-DD
	Ventas  decimal.Decimal
	Egresos decimal.Decimal
}

// FlujoCaja groups the in-range sales and expenses per calendar date and
// merges them into one ascending series. Sales are valued at live prices;
// expense timestamps are truncated to their date.
func FlujoCaja(deudas []model.Deuda, egresos []model.Egreso, productos map[uuid.UUID]model.Producto, r Rango) []Punto {
	porFecha := make(map[string]*Punto)

	punto := func(fecha string) *Punto {
		p, ok := porFecha[fecha]
		if !ok {
			p = &Punto{Fecha: fecha, Ventas: decimal.Zero, Egresos: decimal.Zero}
			porFecha[fecha] = p
		}
		return p
	}

	for _, d := range deudas {
		if !r.Contiene(d.Fecha) {
			continue
		}
		p := punto(d.Fecha.Format(fechaISO))
		p.Ventas = p.Ventas.Add(TotalDeuda(d, productos))
	}
	for _, e := range egresos {
		if !r.Contiene(e.Fecha) {
			continue
		}
		p := punto(e.Fecha.Format(fechaISO))
		p.Egresos = p.Egresos.Add(e.Monto)
	}

	serie := make([]Punto, 0, len(porFecha))
	for _, p := range porFecha {
		serie = append(serie, *p)
	}
	// ISO dates sort correctly as strings
	sort.Slice(serie, func(i, j int) bool { return serie[i].Fecha < serie[j].Fecha })
	return serie
}
