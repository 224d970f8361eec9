package service

import (
	"context"
	"errors"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"
	"kiosko/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoService implements the product catalog operations.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoService struct {
	repo      repository.ProductoRepository
	deudaRepo repository.DeudaRepository
	caches    *Caches
	resumen   *ResumenCache
}

func NewProductoService(repo repository.ProductoRepository, deudaRepo repository.DeudaRepository, caches *Caches, resumen *ResumenCache) ProductoService {
	return &productoService{repo: repo, deudaRepo: deudaRepo, caches: caches, resumen: resumen}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio.IsNegative() {
		return nil, apierror.Invalid("El precio debe ser mayor o igual a cero")
	}
	p := &model.Producto{Nombre: req.Nombre, Precio: req.Precio, Categoria: req.Categoria}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Store("Error al guardar producto", err)
	}
	s.caches.Productos.Poner(*p)
	s.resumen.Invalidar(ctx)
	return productoAResponse(*p), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	if req.Precio.IsNegative() {
		return nil, apierror.Invalid("El precio debe ser mayor o igual a cero")
	}
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("El producto no existe o ya ha sido eliminado")
	}
	if err != nil {
		return nil, apierror.Store("Error al guardar producto", err)
	}

	p.Nombre = req.Nombre
	p.Precio = req.Precio
	p.Categoria = req.Categoria
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Store("Error al guardar producto", err)
	}
	s.caches.Productos.Poner(*p)
	// a price change shifts every live-valued aggregate
	s.resumen.Invalidar(ctx)
	return productoAResponse(*p), nil
}

func (s *productoService) Listar(_ context.Context) ([]dto.ProductoResponse, error) {
	productos := s.caches.Productos.Lista()
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *productoAResponse(p))
	}
	return out, nil
}

// Eliminar blocks deletion while ANY sale references the product, paid or
// not, so historical reports never lose their price/name resolution.
func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound("El producto no existe o ya ha sido eliminado")
	} else if err != nil {
		return apierror.Store("Error al eliminar producto", err)
	}

	enUso, err := s.deudaRepo.ExistePorProducto(ctx, id)
	if err != nil {
		return apierror.Store("Error al eliminar producto", err)
	}
	if enUso {
		return apierror.Conflict("No puedes eliminar un producto que está en uso en deudas registradas")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("Error al eliminar producto", err)
	}
	s.caches.Productos.Quitar(id.String())
	s.resumen.Invalidar(ctx)
	return nil
}

func productoAResponse(p model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:        p.ID.String(),
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		Categoria: p.Categoria,
	}
}
