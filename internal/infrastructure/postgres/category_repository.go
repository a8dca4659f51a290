package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, image, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, category.ID, category.Name, category.Image, category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID, sin relaciones.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT id, name, image, created_at FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetWithProducts obtiene una categoría con sus productos.
func (r *CategoryRepo) GetWithProducts(ctx context.Context, id string) (*entity.Category, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}

	query := `
		SELECT id, name, image, category_id, created_at
		FROM products WHERE category_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list category products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.CategoryID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category product: %w", err)
		}
		c.Products = append(c.Products, p)
	}
	return c, rows.Err()
}

// List lista categorías con búsqueda por nombre y paginación, las más recientes primero.
func (r *CategoryRepo) List(ctx context.Context, f repository.CategoryFilter) ([]*entity.Category, error) {
	query := `
		SELECT id, name, image, created_at
		FROM categories
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count cuenta las categorías que cumplen el filtro de búsqueda.
func (r *CategoryRepo) Count(ctx context.Context, f repository.CategoryFilter) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM categories WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')`,
		f.Search,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

// Update actualiza nombre e imagen de una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categories SET name = $2, image = $3 WHERE id = $1`,
		category.ID, category.Name, category.Image,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID. Si aún tiene productos, la FK lo impide
// y se señala con ErrInUse.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
