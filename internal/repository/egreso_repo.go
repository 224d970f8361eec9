package repository

import (
	"context"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EgresoRepository defines the data access contract for expenses.
type EgresoRepository interface {
	Create(ctx context.Context, e *model.Egreso) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Egreso, error)
	List(ctx context.Context) ([]model.Egreso, error)
	Update(ctx context.Context, e *model.Egreso) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type egresoRepo struct{ db *gorm.DB }

func NewEgresoRepository(db *gorm.DB) EgresoRepository { return &egresoRepo{db: db} }

func (r *egresoRepo) Create(ctx context.Context, e *model.Egreso) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *egresoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Egreso, error) {
	var e model.Egreso
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *egresoRepo) List(ctx context.Context) ([]model.Egreso, error) {
	var egresos []model.Egreso
	err := r.db.WithContext(ctx).Order("fecha DESC").Find(&egresos).Error
	return egresos, err
}

func (r *egresoRepo) Update(ctx context.Context, e *model.Egreso) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *egresoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Egreso{}, "id = ?", id).Error
}
