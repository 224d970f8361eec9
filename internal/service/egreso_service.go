package service

import (
	"context"
	"errors"
	"time"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"
	"kiosko/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EgresoService interface {
	Crear(ctx context.Context, req dto.CrearEgresoRequest) (*dto.EgresoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEgresoRequest) (*dto.EgresoResponse, error)
	Listar(ctx context.Context) ([]dto.EgresoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type egresoService struct {
	repo    repository.EgresoRepository
	caches  *Caches
	resumen *ResumenCache
}

func NewEgresoService(repo repository.EgresoRepository, caches *Caches, resumen *ResumenCache) EgresoService {
	return &egresoService{repo: repo, caches: caches, resumen: resumen}
}

func (s *egresoService) Crear(ctx context.Context, req dto.CrearEgresoRequest) (*dto.EgresoResponse, error) {
	e := &model.Egreso{
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		Fecha:       time.Now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apierror.Store("Error al registrar egreso", err)
	}
	s.caches.Egresos.Poner(*e)
	s.resumen.Invalidar(ctx)
	return aEgresoResponse(*e), nil
}

// Actualizar re-stamps fecha: an edited expense counts on the day it was edited.
func (s *egresoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarEgresoRequest) (*dto.EgresoResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("El egreso no existe o ya ha sido eliminado")
		}
		return nil, apierror.Store("Error al consultar egreso", err)
	}
	e.Monto = req.Monto
	e.Descripcion = req.Descripcion
	e.Fecha = time.Now()
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, apierror.Store("Error al actualizar egreso", err)
	}
	s.caches.Egresos.Poner(*e)
	s.resumen.Invalidar(ctx)
	return aEgresoResponse(*e), nil
}

func (s *egresoService) Listar(_ context.Context) ([]dto.EgresoResponse, error) {
	egresos := s.caches.Egresos.Lista()
	out := make([]dto.EgresoResponse, 0, len(egresos))
	for _, e := range egresos {
		out = append(out, *aEgresoResponse(e))
	}
	return out, nil
}

func (s *egresoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("Error al eliminar egreso", err)
	}
	s.caches.Egresos.Quitar(id.String())
	s.resumen.Invalidar(ctx)
	return nil
}

func aEgresoResponse(e model.Egreso) *dto.EgresoResponse {
	return &dto.EgresoResponse{
		ID:          e.ID.String(),
		Monto:       e.Monto,
		Descripcion: e.Descripcion,
		Fecha:       e.Fecha.Format(time.RFC3339),
	}
}
