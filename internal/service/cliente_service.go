package service

import (
	"context"
	"errors"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"
	"kiosko/internal/report"
	"kiosko/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClienteService implements the client directory operations.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo      repository.ClienteRepository
	deudaRepo repository.DeudaRepository
	caches    *Caches
	resumen   *ResumenCache
}

func NewClienteService(repo repository.ClienteRepository, deudaRepo repository.DeudaRepository, caches *Caches, resumen *ResumenCache) ClienteService {
	return &clienteService{repo: repo, deudaRepo: deudaRepo, caches: caches, resumen: resumen}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{Nombre: req.Nombre, Telefono: req.Telefono}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apierror.Store("Error al guardar cliente", err)
	}
	s.caches.Clientes.Poner(*c)
	s.resumen.Invalidar(ctx)
	return s.aResponse(*c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("El cliente no existe o ya ha sido eliminado")
	}
	if err != nil {
		return nil, apierror.Store("Error al guardar cliente", err)
	}

	c.Nombre = req.Nombre
	c.Telefono = req.Telefono
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, apierror.Store("Error al guardar cliente", err)
	}
	s.caches.Clientes.Poner(*c)
	return s.aResponse(*c), nil
}

func (s *clienteService) Listar(_ context.Context) ([]dto.ClienteResponse, error) {
	clientes := s.caches.Clientes.Lista()
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, *s.aResponse(c))
	}
	return out, nil
}

// Eliminar blocks deletion while any unpaid sale references the client. The
// cache is only patched after the store confirms the delete.
func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	pendiente, err := s.deudaRepo.ExistePendientePorCliente(ctx, id)
	if err != nil {
		return apierror.Store("Error al eliminar cliente", err)
	}
	if pendiente {
		return apierror.Conflict("No puedes eliminar un cliente con deudas pendientes")
	}

	if _, err := s.repo.FindByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound("El cliente no existe o ya ha sido eliminado")
	} else if err != nil {
		return apierror.Store("Error al eliminar cliente", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("Error al eliminar cliente", err)
	}
	s.caches.Clientes.Quitar(id.String())
	s.resumen.Invalidar(ctx)
	return nil
}

// aResponse enriches a client with its pending-debt position, derived from
// the caches at live prices.
func (s *clienteService) aResponse(c model.Cliente) *dto.ClienteResponse {
	idx := report.IndexarProductos(s.caches.Productos.Lista())
	resp := &dto.ClienteResponse{
		ID:             c.ID.String(),
		Nombre:         c.Nombre,
		Telefono:       c.Telefono,
		SaldoPendiente: decimal.Zero,
	}
	for _, d := range s.caches.Deudas.Lista() {
		if d.ClienteID == nil || *d.ClienteID != c.ID || d.Pagada {
			continue
		}
		resp.DeudasPendientes++
		resp.SaldoPendiente = resp.SaldoPendiente.Add(report.TotalDeuda(d, idx))
	}
	return resp
}
