package repository

import (
	"context"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for catalog products.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, "id = ?", id).Error
}
