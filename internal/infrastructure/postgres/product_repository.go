package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. La existencia de la categoría la valida el
// caso de uso; la FK en la tabla actúa como respaldo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, image, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Image, product.CategoryID, product.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert product: categoría inexistente: %w", err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, sin relaciones.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT id, name, image, category_id, created_at FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Image, &p.CategoryID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetWithCategory obtiene un producto con su categoría.
func (r *ProductRepo) GetWithCategory(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.image, p.category_id, p.created_at,
		       c.id, c.name, c.image, c.created_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var p entity.Product
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Image, &p.CategoryID, &p.CreatedAt,
		&c.ID, &c.Name, &c.Image, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with category: %w", err)
	}
	p.Category = &c
	return &p, nil
}

// List lista productos (con su categoría) filtrando por nombre y categoría,
// los más recientes primero.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.image, p.category_id, p.created_at,
		       c.id, c.name, c.image, c.created_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE ($1 = '' OR p.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR p.category_id = $2)
		ORDER BY p.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Search, f.CategoryID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var c entity.Category
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Image, &p.CategoryID, &p.CreatedAt,
			&c.ID, &c.Name, &c.Image, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Category = &c
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta los productos que cumplen los filtros.
func (r *ProductRepo) Count(ctx context.Context, f repository.ProductFilter) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `
		SELECT count(*) FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category_id = $2)`,
		f.Search, f.CategoryID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// Update actualiza nombre, imagen y categoría de un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET name = $2, image = $3, category_id = $4 WHERE id = $1`,
		product.ID, product.Name, product.Image, product.CategoryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update product: categoría inexistente: %w", err)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
