package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// bcryptCost costo de hashing de passwords.
const bcryptCost = 12

// Acciones válidas de PATCH /users/roles/:action.
const (
	RoleActionAssign = "assign"
	RoleActionRemove = "remove"
)

// UserUseCase aplica reglas de negocio para usuarios: unicidad de email,
// existencia del departamento y asignación de roles.
type UserUseCase struct {
	repo        repository.UserRepository
	departments repository.DepartmentRepository
	tx          RoleTxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(
	repo repository.UserRepository,
	departments repository.DepartmentRepository,
	tx RoleTxRunner,
) *UserUseCase {
	return &UserUseCase{repo: repo, departments: departments, tx: tx}
}

// List devuelve una página de usuarios, los más recientes primero.
func (uc *UserUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.UserListResponse, error) {
	q.Normalize()
	f := repository.UserFilter{Search: q.Search, Limit: q.Limit, Offset: q.Offset()}

	items, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &dto.UserListResponse{
		Users:      make([]dto.UserResponse, 0, len(items)),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}
	for _, u := range items {
		out.Users = append(out.Users, toUserResponse(u))
	}
	return out, nil
}

// GetByID devuelve un usuario con departamento y roles.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFound("User not found")
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Create valida unicidad de email y existencia del departamento, hashea el
// password con bcrypt y persiste.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflict("User with email already exists")
	}

	dept, err := uc.departments.GetByID(ctx, in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, domain.NewNotFound("Department not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		DepartmentID: in.DepartmentID,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewConflict("User with email already exists")
		}
		return nil, err
	}
	u.Department = dept
	resp := toUserResponse(u)
	return &resp, nil
}

// Update modifica nombre y/o email de un usuario existente.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFound("User not found")
	}

	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Email != nil {
		existing.Email = *in.Email
	}

	if err := uc.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewConflict("Email already in use")
		}
		return nil, err
	}
	resp := toUserResponse(existing)
	return &resp, nil
}

// Delete verifica existencia y elimina el usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.UserResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFound("User not found")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	resp := toUserResponse(existing)
	return &resp, nil
}

// AssignOrRemoveRoles conecta o desconecta roles del usuario en una sola
// transacción. Si el usuario o algún rol no existe, el conjunto de roles del
// usuario queda intacto.
func (uc *UserUseCase) AssignOrRemoveRoles(ctx context.Context, action string, in dto.AssignRolesRequest) (*dto.UserResponse, error) {
	if action != RoleActionAssign && action != RoleActionRemove {
		return nil, domain.NewBadRequest("Invalid action, must be assign or remove")
	}

	err := uc.tx.RunRoles(ctx, func(users repository.UserRepository, roles repository.RoleRepository) error {
		user, err := users.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.NewNotFound("User not found")
		}

		found, err := roles.GetByIDs(ctx, in.RoleIDs)
		if err != nil {
			return err
		}
		if len(found) != len(in.RoleIDs) {
			return domain.NewNotFound("Roles not found")
		}

		if action == RoleActionAssign {
			return users.AssignRoles(ctx, in.UserID, in.RoleIDs)
		}
		return users.RemoveRoles(ctx, in.UserID, in.RoleIDs)
	})
	if err != nil {
		return nil, err
	}

	return uc.GetByID(ctx, in.UserID)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
	}
	if u.Department != nil {
		resp.Department = &dto.DepartmentResponse{ID: u.Department.ID, Name: u.Department.Name}
	}
	for _, ro := range u.Roles {
		resp.Roles = append(resp.Roles, dto.RoleResponse{ID: ro.ID, Name: ro.Name})
	}
	return resp
}
