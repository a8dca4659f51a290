package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// GetByIDs devuelve los roles existentes entre los IDs pedidos.
func (r *RoleRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM roles WHERE id = ANY($1::text[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("list roles by ids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var ro entity.Role
		if err := rows.Scan(&ro.ID, &ro.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &ro)
	}
	return list, rows.Err()
}
