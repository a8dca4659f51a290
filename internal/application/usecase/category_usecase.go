package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CategoryUseCase aplica reglas de negocio para categorías, incluida la
// consistencia entre la columna image y el archivo en disco.
type CategoryUseCase struct {
	repo   repository.CategoryRepository
	images ImageStore
	log    *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, images ImageStore, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, images: images, log: log}
}

// List devuelve una página de categorías, las más recientes primero.
func (uc *CategoryUseCase) List(ctx context.Context, q dto.PageQuery) (*dto.CategoryListResponse, error) {
	q.Normalize()
	f := repository.CategoryFilter{Search: q.Search, Limit: q.Limit, Offset: q.Offset()}

	items, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &dto.CategoryListResponse{
		Categories: make([]dto.CategoryResponse, 0, len(items)),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}
	for _, c := range items {
		out.Categories = append(out.Categories, toCategoryResponse(c))
	}
	return out, nil
}

// GetByID devuelve una categoría con sus productos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetWithProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NewNotFound("Category not found")
	}
	resp := toCategoryResponse(c)
	return &resp, nil
}

// Create persiste una categoría nueva. Si la persistencia falla y había una
// imagen recién guardada, el handler se encarga de borrar ese archivo.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Image:     in.Image,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c)
	return &resp, nil
}

// Update modifica una categoría existente. Si llega imagen nueva, el archivo
// anterior se borra solo después de confirmar la escritura en la DB, para que
// un fallo no deje el registro apuntando a un archivo inexistente.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFound("Category not found")
	}

	if in.Name != nil {
		existing.Name = *in.Name
	}
	var oldImage string
	if in.Image != nil {
		oldImage = existing.Image
		existing.Image = *in.Image
	}

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if oldImage != "" {
		if err := uc.images.Delete(oldImage); err != nil {
			uc.log.Warn().Err(err).Str("category_id", id).Msg("no se pudo borrar la imagen anterior")
		}
	}

	resp := toCategoryResponse(existing)
	return &resp, nil
}

// Delete elimina la categoría y después su imagen: primero la fila, luego el
// archivo, para minimizar la ventana en que puede quedar un huérfano.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewNotFound("Category not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrInUse) {
			return domain.NewConflict("Category has products")
		}
		return err
	}

	if existing.Image != "" {
		if err := uc.images.Delete(existing.Image); err != nil {
			uc.log.Warn().Err(err).Str("category_id", id).Msg("no se pudo borrar la imagen de la categoría")
		}
	}
	return nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	resp := dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Image:     imagePtr(c.Image),
		CreatedAt: c.CreatedAt,
	}
	for i := range c.Products {
		resp.Products = append(resp.Products, toProductResponse(&c.Products[i]))
	}
	return resp
}

// imagePtr convierte la columna image a puntero: vacío se serializa como null.
func imagePtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
