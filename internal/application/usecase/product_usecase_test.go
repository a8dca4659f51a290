package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func newProductUC(products *fakeProductRepo, categories *fakeCategoryRepo, images *fakeImageStore) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(products, categories, images, logger.Nop())
}

func TestProductCreate_CategoriaInexistente_Retorna404(t *testing.T) {
	uc := newProductUC(newFakeProductRepo(), newFakeCategoryRepo(), &fakeImageStore{})

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Gaseosa",
		CategoryID: "nope",
	})
	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Category not found", appErr.Message)
}

func TestProductCreate_OK(t *testing.T) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	uc := newProductUC(products, categories, &fakeImageStore{})

	require.NoError(t, categories.Create(context.Background(), &entity.Category{ID: "c1", Name: "Bebidas"}))

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Gaseosa",
		CategoryID: "c1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "c1", out.CategoryID)
	require.NotNil(t, out.Category, "la respuesta debe incluir la categoría")
	assert.Equal(t, "Bebidas", out.Category.Name)
}

func TestProductUpdate_CambioDeCategoria_Revalida(t *testing.T) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	uc := newProductUC(products, categories, &fakeImageStore{})

	require.NoError(t, categories.Create(context.Background(), &entity.Category{ID: "c1"}))
	require.NoError(t, products.Create(context.Background(), &entity.Product{ID: "p1", Name: "Gaseosa", CategoryID: "c1"}))

	inexistente := "c2"
	_, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{CategoryID: &inexistente})
	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	// El producto no debe haber cambiado.
	stored, err := products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "c1", stored.CategoryID)
}

func TestProductList_FiltraPorCategoria(t *testing.T) {
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()
	uc := newProductUC(products, categories, &fakeImageStore{})

	require.NoError(t, products.Create(context.Background(), &entity.Product{ID: "p1", Name: "Gaseosa", CategoryID: "c1"}))
	require.NoError(t, products.Create(context.Background(), &entity.Product{ID: "p2", Name: "Papas", CategoryID: "c2"}))

	out, err := uc.List(context.Background(), dto.ProductPageQuery{CategoryID: "c2"})
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Papas", out.Products[0].Name)
	assert.Equal(t, 1, out.Pagination.Total)
}

func TestProductDelete_BorraFilaYLuegoImagen(t *testing.T) {
	products := newFakeProductRepo()
	images := &fakeImageStore{}
	uc := newProductUC(products, newFakeCategoryRepo(), images)

	require.NoError(t, products.Create(context.Background(), &entity.Product{
		ID: "p1", Name: "Gaseosa", Image: "img.png",
	}))

	require.NoError(t, uc.Delete(context.Background(), "p1"))

	stored, err := products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Equal(t, []string{"img.png"}, images.deleted)
}

func TestProductGetByID_NoExiste_Retorna404(t *testing.T) {
	uc := newProductUC(newFakeProductRepo(), newFakeCategoryRepo(), &fakeImageStore{})

	_, err := uc.GetByID(context.Background(), "nope")
	var appErr *domain.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Product not found", appErr.Message)
}
