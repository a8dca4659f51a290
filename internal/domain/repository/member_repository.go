package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// MemberRepository define el puerto de persistencia para Member (DIP).
type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	// Upsert inserta o sobreescribe completo el perfil (last-write-wins) sin
	// tocar token_version; devuelve la versión de token vigente del registro.
	Upsert(ctx context.Context, member *entity.Member) (tokenVersion int, err error)
	// BumpTokenVersion incrementa el contador de rotación y devuelve el nuevo valor.
	BumpTokenVersion(ctx context.Context, id string) (int, error)
}
