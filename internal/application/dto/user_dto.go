package dto

import "time"

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	DepartmentID string `json:"departmentId"`
}

// UpdateUserRequest entrada para actualizar un usuario; al menos un campo.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// AssignRolesRequest cuerpo de PATCH /users/roles/:action.
type AssignRolesRequest struct {
	UserID  string   `json:"userId"`
	RoleIDs []string `json:"roleIds"`
}

// DepartmentResponse departamento de un usuario.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleResponse rol asignado a un usuario.
type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResponse salida de un usuario. El hash de password nunca se serializa.
type UserResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	DepartmentID string              `json:"departmentId"`
	CreatedAt    time.Time           `json:"createdAt"`
	Department   *DepartmentResponse `json:"department,omitempty"`
	Roles        []RoleResponse      `json:"roles,omitempty"`
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}
