package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryFilter criterios de listado: búsqueda por substring del nombre y paginación.
type CategoryFilter struct {
	Search string
	Limit  int
	Offset int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las consultas por ID devuelven (nil, nil) si el registro no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetWithProducts(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, f CategoryFilter) ([]*entity.Category, error)
	Count(ctx context.Context, f CategoryFilter) (int, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
