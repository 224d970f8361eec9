package repository

import (
	"context"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for clients.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, "id = ?", id).Error
}
