package dto

import "time"

// ProductPageQuery paginación de productos con filtro adicional por categoría.
type ProductPageQuery struct {
	PageQuery
	CategoryID string `query:"categoryId"`
}

// CreateProductRequest entrada para crear un producto. Image la asigna el
// handler después de guardar el archivo subido.
type CreateProductRequest struct {
	Name       string `json:"name" form:"name"`
	CategoryID string `json:"categoryId" form:"categoryId"`
	Image      string `json:"-" form:"-"`
}

// UpdateProductRequest entrada para actualizar un producto; al menos un campo.
type UpdateProductRequest struct {
	Name       *string `json:"name" form:"name"`
	CategoryID *string `json:"categoryId" form:"categoryId"`
	Image      *string `json:"-" form:"-"`
}

// ProductResponse salida de un producto. Image es null si no tiene imagen.
type ProductResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Image      *string           `json:"image"`
	CategoryID string            `json:"categoryId"`
	CreatedAt  time.Time         `json:"createdAt"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}
