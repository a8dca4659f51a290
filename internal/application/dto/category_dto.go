package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Image la asigna el
// handler después de guardar el archivo subido, no viene en el cuerpo.
type CreateCategoryRequest struct {
	Name  string `json:"name" form:"name"`
	Image string `json:"-" form:"-"`
}

// UpdateCategoryRequest entrada para actualizar una categoría; se exige al
// menos un campo presente.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" form:"name"`
	Image *string `json:"-" form:"-"`
}

// CategoryResponse salida de una categoría. Image es null si no tiene imagen.
type CategoryResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Image     *string           `json:"image"`
	CreatedAt time.Time         `json:"createdAt"`
	Products  []ProductResponse `json:"products,omitempty"`
}

// CategoryListResponse página de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Pagination Pagination         `json:"pagination"`
}
