package entity

// Role rol asignable a usuarios.
type Role struct {
	ID   string
	Name string
}
