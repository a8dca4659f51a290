package entity

import "time"

// User usuario interno del panel; pertenece a un departamento y tiene roles
// (muchos a muchos vía user_roles).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	DepartmentID string
	CreatedAt    time.Time

	Department *Department
	Roles      []Role
}
