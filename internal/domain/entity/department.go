package entity

// Department departamento al que pertenece un usuario.
type Department struct {
	ID   string
	Name string
}
