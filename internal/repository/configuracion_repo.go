package repository

import (
	"context"
	"errors"

	"kiosko/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ConfiguracionRepository reads and writes single-value configuration
// documents such as the initial investment.
type ConfiguracionRepository interface {
	Get(ctx context.Context, clave string) (decimal.Decimal, error)
	// Upsert tries the update path first and falls back to create when the
	// store reports the document missing — the store distinguishes create
	// from update and has no blind upsert.
	Upsert(ctx context.Context, clave string, valor decimal.Decimal) error
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

// Get returns zero (not an error) when the document has never been written.
func (r *configuracionRepo) Get(ctx context.Context, clave string) (decimal.Decimal, error) {
	var c model.Configuracion
	err := r.db.WithContext(ctx).First(&c, "clave = ?", clave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return c.Valor, nil
}

func (r *configuracionRepo) Upsert(ctx context.Context, clave string, valor decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.Configuracion{}).
		Where("clave = ?", clave).
		Update("valor", valor)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&model.Configuracion{Clave: clave, Valor: valor}).Error
	}
	return nil
}
