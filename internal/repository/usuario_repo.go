package repository

import (
	"context"

	"kiosko/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for system users. Role
// resolution is an equality lookup on email.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context, incluirInactivos bool) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	SetActivo(ctx context.Context, id uuid.UUID, activo bool) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) List(ctx context.Context, incluirInactivos bool) ([]model.Usuario, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if !incluirInactivos {
		q = q.Where("activo = true")
	}
	var usuarios []model.Usuario
	err := q.Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) SetActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", activo).Error
}
