package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// DepartmentRepository puerto de lectura de departamentos (validación de existencia).
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Department, error)
}
