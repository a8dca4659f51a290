package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RoleRepository puerto de lectura de roles.
type RoleRepository interface {
	// GetByIDs devuelve los roles existentes entre los IDs pedidos; el caso de
	// uso compara longitudes para detectar IDs inexistentes.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Role, error)
}
