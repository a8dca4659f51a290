package entity

import "time"

// Category categoría de productos del catálogo.
// Image guarda la URL pública absoluta de la imagen subida; vacío = sin imagen.
type Category struct {
	ID        string
	Name      string
	Image     string
	CreatedAt time.Time

	// Products se carga solo en la consulta por ID.
	Products []Product
}
