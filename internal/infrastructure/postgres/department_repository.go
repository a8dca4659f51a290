package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de persistencia para departamentos.
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// GetByID obtiene un departamento por ID.
func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}
