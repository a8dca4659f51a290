package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// UserFilter criterios de listado de usuarios.
type UserFilter struct {
	Search string
	Limit  int
	Offset int
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetWithRelations carga departamento y roles.
	GetWithRelations(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	Count(ctx context.Context, f UserFilter) (int, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	// AssignRoles conecta roles al usuario (idempotente); RemoveRoles los desconecta.
	AssignRoles(ctx context.Context, userID string, roleIDs []string) error
	RemoveRoles(ctx context.Context, userID string, roleIDs []string) error
}
