package repository

import (
	"context"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeudaRepository defines the data access contract for sales/debts.
type DeudaRepository interface {
	// Create persists the sale and its items in one transaction.
	Create(ctx context.Context, d *model.Deuda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Deuda, error)
	List(ctx context.Context) ([]model.Deuda, error)
	MarcarPagada(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Referential-integrity probes for the delete guards.
	ExistePendientePorCliente(ctx context.Context, clienteID uuid.UUID) (bool, error)
	ExistePorProducto(ctx context.Context, productoID uuid.UUID) (bool, error)
}

type deudaRepo struct{ db *gorm.DB }

func NewDeudaRepository(db *gorm.DB) DeudaRepository { return &deudaRepo{db: db} }

func (r *deudaRepo) Create(ctx context.Context, d *model.Deuda) error {
	// FullSaveAssociations off by default — Create cascades the items
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *deudaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Deuda, error) {
	var d model.Deuda
	err := r.db.WithContext(ctx).Preload("Items").First(&d, "id = ?", id).Error
	return &d, err
}

func (r *deudaRepo) List(ctx context.Context) ([]model.Deuda, error) {
	var deudas []model.Deuda
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at ASC").Find(&deudas).Error
	return deudas, err
}

func (r *deudaRepo) MarcarPagada(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Deuda{}).Where("id = ?", id).Update("pagada", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *deudaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.DeudaItem{}, "deuda_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Deuda{}, "id = ?", id).Error
	})
}

func (r *deudaRepo) ExistePendientePorCliente(ctx context.Context, clienteID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Deuda{}).
		Where("cliente_id = ? AND pagada = false", clienteID).
		Count(&n).Error
	return n > 0, err
}

func (r *deudaRepo) ExistePorProducto(ctx context.Context, productoID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DeudaItem{}).
		Where("producto_id = ?", productoID).
		Count(&n).Error
	return n > 0, err
}
