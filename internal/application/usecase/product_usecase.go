package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ProductUseCase aplica reglas de negocio para productos: la categoría
// referenciada debe existir al momento de escribir.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	images     ImageStore
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	images ImageStore,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, images: images, log: log}
}

// List devuelve una página de productos con su categoría, los más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductPageQuery) (*dto.ProductListResponse, error) {
	q.Normalize()
	f := repository.ProductFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	}

	items, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductListResponse{
		Products:   make([]dto.ProductResponse, 0, len(items)),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}
	for _, p := range items {
		out.Products = append(out.Products, toProductResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto con su categoría.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetWithCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound("Product not found")
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Create verifica que la categoría exista y persiste el producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.NewNotFound("Category not found")
	}

	p := &entity.Product{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Image:      in.Image,
		CategoryID: in.CategoryID,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	p.Category = cat
	resp := toProductResponse(p)
	return &resp, nil
}

// Update modifica un producto existente; si cambia de categoría se vuelve a
// verificar la existencia. El archivo de imagen anterior se borra después de
// confirmar la escritura en la DB.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFound("Product not found")
	}

	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.CategoryID != nil && *in.CategoryID != existing.CategoryID {
		cat, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.NewNotFound("Category not found")
		}
		existing.CategoryID = *in.CategoryID
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
			uc.log.Warn().Err(err).Str("product_id", id).Msg("no se pudo borrar la imagen anterior")
		}
	}

	resp := toProductResponse(existing)
	return &resp, nil
}

// Delete elimina el producto y después su imagen (fila primero, archivo después).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.NewNotFound("Product not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != "" {
		if err := uc.images.Delete(existing.Image); err != nil {
			uc.log.Warn().Err(err).Str("product_id", id).Msg("no se pudo borrar la imagen del producto")
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Image:      imagePtr(p.Image),
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
	}
	if p.Category != nil {
		cat := toCategoryResponse(p.Category)
		resp.Category = &cat
	}
	return resp
}
