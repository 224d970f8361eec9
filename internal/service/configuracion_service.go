package service

import (
	"context"
	"sync"

	"kiosko/internal/apierror"
	"kiosko/internal/dto"
	"kiosko/internal/model"
	"kiosko/internal/repository"

	"github.com/shopspring/decimal"
)

// ConfiguracionService holds the initial-investment scalar in memory so the
// dashboard does not hit the store on every summary request.
type ConfiguracionService interface {
	Cargar(ctx context.Context) error
	ObtenerInversion(ctx context.Context) dto.InversionResponse
	GuardarInversion(ctx context.Context, req dto.GuardarInversionRequest) (*dto.InversionResponse, error)
	// InversionInicial exposes the cached value to the reporting layer.
	InversionInicial() decimal.Decimal
}

type configuracionService struct {
	repo    repository.ConfiguracionRepository
	resumen *ResumenCache

	mu        sync.RWMutex
	inversion decimal.Decimal
}

func NewConfiguracionService(repo repository.ConfiguracionRepository, resumen *ResumenCache) ConfiguracionService {
	return &configuracionService{repo: repo, resumen: resumen, inversion: decimal.Zero}
}

func (s *configuracionService) Cargar(ctx context.Context) error {
	v, err := s.repo.Get(ctx, model.ClaveInversionInicial)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.inversion = v
	s.mu.Unlock()
	return nil
}

func (s *configuracionService) ObtenerInversion(_ context.Context) dto.InversionResponse {
	return dto.InversionResponse{Valor: s.InversionInicial()}
}

func (s *configuracionService) GuardarInversion(ctx context.Context, req dto.GuardarInversionRequest) (*dto.InversionResponse, error) {
	if req.Valor.IsNegative() {
		return nil, apierror.Invalid("La inversión inicial no puede ser negativa")
	}
	if err := s.repo.Upsert(ctx, model.ClaveInversionInicial, req.Valor); err != nil {
		return nil, apierror.Store("Error al guardar la inversión inicial", err)
	}
	s.mu.Lock()
	s.inversion = req.Valor
	s.mu.Unlock()
	s.resumen.Invalidar(ctx)
	return &dto.InversionResponse{Valor: req.Valor}, nil
}

func (s *configuracionService) InversionInicial() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inversion
}
