package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductFilter criterios de listado: búsqueda por nombre, filtro por categoría y paginación.
type ProductFilter struct {
	Search     string
	CategoryID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// List y GetWithCategory cargan la categoría asociada.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetWithCategory(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Count(ctx context.Context, f ProductFilter) (int, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
