package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, department_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.DepartmentID, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, sin relaciones.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT id, name, email, password, department_id, created_at FROM users WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.DepartmentID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetWithRelations obtiene un usuario con su departamento y roles.
func (r *UserRepo) GetWithRelations(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password, u.department_id, u.created_at,
		       d.id, d.name
		FROM users u
		JOIN departments d ON d.id = u.department_id
		WHERE u.id = $1`
	var u entity.User
	var d entity.Department
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.DepartmentID, &u.CreatedAt,
		&d.ID, &d.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user with relations: %w", err)
	}
	u.Department = &d

	roles, err := r.rolesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

func (r *UserRepo) rolesOf(ctx context.Context, userID string) ([]entity.Role, error) {
	rows, err := r.q.Query(ctx, `
		SELECT ro.id, ro.name
		FROM roles ro
		JOIN user_roles ur ON ur.role_id = ro.id
		WHERE ur.user_id = $1 ORDER BY ro.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	defer rows.Close()
	var roles []entity.Role
	for rows.Next() {
		var ro entity.Role
		if err := rows.Scan(&ro.ID, &ro.Name); err != nil {
			return nil, fmt.Errorf("scan user role: %w", err)
		}
		roles = append(roles, ro)
	}
	return roles, rows.Err()
}

// FindByEmail obtiene un usuario por email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT id, name, email, password, department_id, created_at FROM users WHERE email = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.DepartmentID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// List lista usuarios con búsqueda por nombre y paginación, los más recientes primero.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, password, department_id, created_at
		FROM users
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.DepartmentID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count cuenta los usuarios que cumplen el filtro de búsqueda.
func (r *UserRepo) Count(ctx context.Context, f repository.UserFilter) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`,
		f.Search,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

// Update actualiza nombre y email de un usuario existente.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	_, err := r.q.Exec(ctx,
		`UPDATE users SET name = $2, email = $3 WHERE id = $1`,
		user.ID, user.Name, user.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID (user_roles cae en cascada).
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// AssignRoles conecta roles al usuario; repetir un rol ya asignado no es error.
func (r *UserRepo) AssignRoles(ctx context.Context, userID string, roleIDs []string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, unnest($2::text[])
		ON CONFLICT DO NOTHING`, userID, roleIDs)
	if err != nil {
		return fmt.Errorf("assign roles: %w", err)
	}
	return nil
}

// RemoveRoles desconecta roles del usuario.
func (r *UserRepo) RemoveRoles(ctx context.Context, userID string, roleIDs []string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role_id = ANY($2::text[])`,
		userID, roleIDs,
	)
	if err != nil {
		return fmt.Errorf("remove roles: %w", err)
	}
	return nil
}
