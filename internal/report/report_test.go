package report

import (
	"time"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ── Test fixtures ─────────────────────────────────────────────────────────────

var (
	prodGaseosa = model.Producto{ID: uuid.New(), Nombre: "Gaseosa", Precio: decimal.NewFromInt(1000), Categoria: "bebidas"}
	prodPan     = model.Producto{ID: uuid.New(), Nombre: "Pan", Precio: decimal.NewFromInt(500)}
	prodJabon   = model.Producto{ID: uuid.New(), Nombre: "Jabon", Precio: decimal.NewFromInt(2500), Categoria: "aseo"}

	cliAna  = model.Cliente{ID: uuid.New(), Nombre: "Ana"}
	cliLuis = model.Cliente{ID: uuid.New(), Nombre: "Luis"}
)

func catalogo() []model.Producto {
	return []model.Producto{prodGaseosa, prodPan, prodJabon}
}

func fecha(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

type itemSpec struct {
	producto model.Producto
	cantidad int
}

func deuda(cliente *model.Cliente, dia string, pagada bool, usuario string, items ...itemSpec) model.Deuda {
	d := model.Deuda{
		ID:      uuid.New(),
		Fecha:   fecha(dia),
		Pagada:  pagada,
		Usuario: usuario,
	}
	if cliente != nil {
		id := cliente.ID
		d.ClienteID = &id
	}
	for _, it := range items {
		d.Items = append(d.Items, model.DeudaItem{
			ID:         uuid.New(),
			DeudaID:    d.ID,
			ProductoID: it.producto.ID,
			Cantidad:   it.cantidad,
			Precio:     it.producto.Precio, // snapshot equals live price at creation
		})
	}
	return d
}

func egreso(monto int64, dia string, descripcion string) model.Egreso {
	return model.Egreso{
		ID:          uuid.New(),
		Monto:       decimal.NewFromInt(monto),
		Descripcion: descripcion,
		Fecha:       fecha(dia).Add(10 * time.Hour),
	}
}

func abierto() Rango {
	return Rango{Hasta: fecha("2100-01-01")}
}
