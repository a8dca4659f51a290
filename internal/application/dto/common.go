package dto

// PageQuery parámetros de paginación y búsqueda de los listados.
// Sin cota superior para Limit: el llamador puede pedir páginas arbitrarias.
type PageQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// Normalize aplica los valores por defecto (page 1, limit 10).
func (q *PageQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
}

// Offset devuelve el desplazamiento (page-1)*limit.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination calcula los metadatos: totalPages = ceil(total/limit).
func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
