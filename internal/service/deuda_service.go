package service

import (
	"context"
	"errors"
	"time"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"
	"kiosko/internal/report"
	"kiosko/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeudaService implements the sale/debt lifecycle: register on checkout,
// one-way mark-paid, explicit delete.
type DeudaService interface {
	Registrar(ctx context.Context, usuario string, req dto.RegistrarDeudaRequest) (*dto.DeudaResponse, error)
	Listar(ctx context.Context) ([]dto.DeudaResponse, error)
	MarcarPagada(ctx context.Context, id uuid.UUID) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type deudaService struct {
	repo    repository.DeudaRepository
	caches  *Caches
	resumen *ResumenCache
}

func NewDeudaService(repo repository.DeudaRepository, caches *Caches, resumen *ResumenCache) DeudaService {
	return &deudaService{repo: repo, caches: caches, resumen: resumen}
}

func (s *deudaService) Registrar(ctx context.Context, usuario string, req dto.RegistrarDeudaRequest) (*dto.DeudaResponse, error) {
	if len(req.Items) == 0 {
		return nil, apierror.Invalid("La venta debe tener al menos un producto")
	}

	fecha := time.Now()
	if req.Fecha != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Fecha, time.Local)
		if err != nil {
			return nil, apierror.Invalid("Fecha inválida")
		}
		fecha = t
	}
	// normalized to local midnight so range filters and the timeline agree
	// on the calendar day
	fecha = time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, time.Local)

	d := &model.Deuda{
		Fecha:   fecha,
		Pagada:  req.Pagada,
		Usuario: usuario,
	}
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.Invalid("Cliente inválido")
		}
		if _, ok := s.caches.Clientes.Obtener(cid.String()); !ok {
			return nil, apierror.Invalid("El cliente seleccionado no existe")
		}
		d.ClienteID = &cid
	}

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, apierror.Invalid("Producto inválido")
		}
		p, ok := s.caches.Productos.Obtener(pid.String())
		if !ok {
			return nil, apierror.Invalid("El producto seleccionado no existe")
		}
		if item.Cantidad < 1 {
			return nil, apierror.Invalid("La cantidad debe ser al menos 1")
		}
		d.Items = append(d.Items, model.DeudaItem{
			ProductoID: pid,
			Cantidad:   item.Cantidad,
			Precio:     p.Precio, // snapshot of the live price at sale time
		})
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apierror.Store("Error al registrar deuda", err)
	}
	s.caches.Deudas.Poner(*d)
	s.resumen.Invalidar(ctx)
	return s.aResponse(*d), nil
}

func (s *deudaService) Listar(_ context.Context) ([]dto.DeudaResponse, error) {
	deudas := s.caches.Deudas.Lista()
	out := make([]dto.DeudaResponse, 0, len(deudas))
	for _, d := range deudas {
		out = append(out, *s.aResponse(d))
	}
	return out, nil
}

// MarcarPagada flips pagada false→true. There is no way back.
func (s *deudaService) MarcarPagada(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarcarPagada(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("La deuda no existe o ya ha sido eliminada")
		}
		return apierror.Store("Error al marcar deuda como pagada", err)
	}
	if d, ok := s.caches.Deudas.Obtener(id.String()); ok {
		d.Pagada = true
		s.caches.Deudas.Poner(d)
	}
	s.resumen.Invalidar(ctx)
	return nil
}

// Eliminar removes a sale regardless of paid state.
func (s *deudaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("Error al eliminar deuda", err)
	}
	s.caches.Deudas.Quitar(id.String())
	s.resumen.Invalidar(ctx)
	return nil
}

func (s *deudaService) aResponse(d model.Deuda) *dto.DeudaResponse {
	idx := report.IndexarProductos(s.caches.Productos.Lista())

	resp := &dto.DeudaResponse{
		ID:      d.ID.String(),
		Fecha:   d.Fecha.Format("2006-01-02"),
		Pagada:  d.Pagada,
		Usuario: d.Usuario,
		Total:   report.TotalDeuda(d, idx),
	}
	if d.ClienteID != nil {
		id := d.ClienteID.String()
		resp.ClienteID = &id
		if c, ok := s.caches.Clientes.Obtener(id); ok {
			resp.Cliente = c.Nombre
		}
	}
	for _, item := range d.Items {
		nombre := report.Desconocido
		if p, ok := idx[item.ProductoID]; ok {
			nombre = p.Nombre
		}
		resp.Items = append(resp.Items, dto.ItemDeudaResponse{
			ProductoID: item.ProductoID.String(),
			Producto:   nombre,
			Cantidad:   item.Cantidad,
			Precio:     item.Precio,
		})
	}
	return resp
}
