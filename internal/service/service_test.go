package service

import (
	"context"

	"kiosko/internal/model"
	"kiosko/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory stub repositories. Each keeps its rows in a map and lets a test
// force errors through the err field.

type stubClienteRepo struct {
	rows map[uuid.UUID]model.Cliente
	err  error
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{rows: make(map[uuid.UUID]model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if r.err != nil {
		return r.err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, c)
	}
	return out, r.err
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	if r.err != nil {
		return r.err
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

type stubProductoRepo struct {
	rows map[uuid.UUID]model.Producto
	err  error
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{rows: make(map[uuid.UUID]model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if r.err != nil {
		return r.err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *stubProductoRepo) List(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, r.err
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if r.err != nil {
		return r.err
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

type stubDeudaRepo struct {
	rows map[uuid.UUID]model.Deuda
	err  error

	pendientePorCliente bool
	existePorProducto   bool
}

func newStubDeudaRepo() *stubDeudaRepo {
	return &stubDeudaRepo{rows: make(map[uuid.UUID]model.Deuda)}
}

func (r *stubDeudaRepo) Create(_ context.Context, d *model.Deuda) error {
	if r.err != nil {
		return r.err
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.rows[d.ID] = *d
	return nil
}

func (r *stubDeudaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Deuda, error) {
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *stubDeudaRepo) List(_ context.Context) ([]model.Deuda, error) {
	out := make([]model.Deuda, 0, len(r.rows))
	for _, d := range r.rows {
		out = append(out, d)
	}
	return out, r.err
}

func (r *stubDeudaRepo) MarcarPagada(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	d, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Pagada = true
	r.rows[id] = d
	return nil
}

func (r *stubDeudaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

func (r *stubDeudaRepo) ExistePendientePorCliente(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.pendientePorCliente, r.err
}

func (r *stubDeudaRepo) ExistePorProducto(_ context.Context, _ uuid.UUID) (bool, error) {
	return r.existePorProducto, r.err
}

type stubEgresoRepo struct {
	rows map[uuid.UUID]model.Egreso
	err  error
}

func newStubEgresoRepo() *stubEgresoRepo {
	return &stubEgresoRepo{rows: make(map[uuid.UUID]model.Egreso)}
}

func (r *stubEgresoRepo) Create(_ context.Context, e *model.Egreso) error {
	if r.err != nil {
		return r.err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.rows[e.ID] = *e
	return nil
}

func (r *stubEgresoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Egreso, error) {
	if r.err != nil {
		return nil, r.err
	}
	e, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *stubEgresoRepo) List(_ context.Context) ([]model.Egreso, error) {
	out := make([]model.Egreso, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, e)
	}
	return out, r.err
}

func (r *stubEgresoRepo) Update(_ context.Context, e *model.Egreso) error {
	if r.err != nil {
		return r.err
	}
	r.rows[e.ID] = *e
	return nil
}

func (r *stubEgresoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

type stubConfiguracionRepo struct {
	valores map[string]decimal.Decimal
	err     error

	updates int
	creates int
}

func newStubConfiguracionRepo() *stubConfiguracionRepo {
	return &stubConfiguracionRepo{valores: make(map[string]decimal.Decimal)}
}

func (r *stubConfiguracionRepo) Get(_ context.Context, clave string) (decimal.Decimal, error) {
	if r.err != nil {
		return decimal.Zero, r.err
	}
	v, ok := r.valores[clave]
	if !ok {
		return decimal.Zero, nil
	}
	return v, nil
}

func (r *stubConfiguracionRepo) Upsert(_ context.Context, clave string, valor decimal.Decimal) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.valores[clave]; ok {
		r.updates++
	} else {
		r.creates++
	}
	r.valores[clave] = valor
	return nil
}

var (
	_ repository.ClienteRepository       = (*stubClienteRepo)(nil)
	_ repository.ProductoRepository      = (*stubProductoRepo)(nil)
	_ repository.DeudaRepository         = (*stubDeudaRepo)(nil)
	_ repository.EgresoRepository        = (*stubEgresoRepo)(nil)
	_ repository.ConfiguracionRepository = (*stubConfiguracionRepo)(nil)
)

// cachesDe builds loaded caches from slices, preserving argument order.
func cachesDe(clientes []model.Cliente, productos []model.Producto, deudas []model.Deuda, egresos []model.Egreso) *Caches {
	c := NewCaches()
	c.Clientes.Cargar(clientes)
	c.Productos.Cargar(productos)
	c.Deudas.Cargar(deudas)
	c.Egresos.Cargar(egresos)
	return c
}

// nilResumen is a disabled summary cache; every method is a no-op.
func nilResumen() *ResumenCache { return NewResumenCache(nil) }
