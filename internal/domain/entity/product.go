package entity

import "time"

// Product producto del catálogo; pertenece a una categoría.
type Product struct {
	ID         string
	Name       string
	Image      string // URL pública absoluta; vacío = sin imagen
	CategoryID string
	CreatedAt  time.Time

	// Category se carga en listados y consultas por ID.
	Category *Category
}
