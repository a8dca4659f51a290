package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ImageStore contrato mínimo sobre el almacenamiento de imágenes que necesitan
// los casos de uso: borrar el archivo anterior al reemplazar o eliminar un
// registro. Lo implementa *uploads.Store.
type ImageStore interface {
	Delete(pathOrURL string) error
}

// RoleTxRunner ejecuta el bloque de asignación de roles dentro de una
// transacción: verificación de existencia y connect/disconnect sobre el mismo
// snapshot. Lo implementa *postgres.TxRunner.
type RoleTxRunner interface {
	RunRoles(ctx context.Context, fn func(
		users repository.UserRepository,
		roles repository.RoleRepository,
	) error) error
}
