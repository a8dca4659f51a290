package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/uploads"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	images *uploads.Store
	log    *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, images *uploads.Store, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, images: images, log: log}
}

// List godoc
// @Summary      Listar productos con su categoría
// @Tags         products
// @Produce      json
// @Param        page        query  int     false  "Página"            default(1)
// @Param        limit       query  int     false  "Tamaño de página"  default(10)
// @Param        search      query  string  false  "Búsqueda por nombre"
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  Envelope{data=dto.ProductListResponse}
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductPageQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.NewBadRequest("Invalid query parameters")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Products retrieved successfully", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  Envelope{data=dto.ProductResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product retrieved successfully", out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Param        name        formData  string  true   "Nombre"
// @Param        categoryId  formData  string  true   "ID de la categoría"
// @Param        image       formData  file    false  "Imagen"
// @Success      201  {object}  Envelope{data=dto.ProductResponse}
// @Failure      404  {object}  Envelope
// @Failure      422  {object}  Envelope
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	if in.Name == "" {
		return domain.NewValidation("Name is required")
	}
	if in.CategoryID == "" {
		return domain.NewValidation("Category ID is required")
	}

	saved, err := h.saveImage(c)
	if err != nil {
		return err
	}
	in.Image = saved

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		h.cleanupImage(saved)
		return err
	}
	return respond(c, fiber.StatusCreated, "Product created successfully", out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Param        id          path      string  true   "ID del producto"
// @Param        name        formData  string  false  "Nombre"
// @Param        categoryId  formData  string  false  "ID de la categoría"
// @Param        image       formData  file    false  "Imagen nueva"
// @Success      200  {object}  Envelope{data=dto.ProductResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}

	saved, err := h.saveImage(c)
	if err != nil {
		return err
	}
	if saved != "" {
		in.Image = &saved
	}
	if in.Name == nil && in.CategoryID == nil && in.Image == nil {
		return domain.NewValidation("At least one field is required")
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		h.cleanupImage(saved)
		return err
	}
	return respond(c, fiber.StatusOK, "Product updated successfully", out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Product deleted successfully", nil)
}

func (h *ProductHandler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	url, err := h.images.Save(file, "products")
	if err != nil {
		return "", err
	}
	return url, nil
}

func (h *ProductHandler) cleanupImage(url string) {
	if url == "" {
		return
	}
	if err := h.images.Delete(url); err != nil {
		h.log.Warn().Err(err).Str("image", url).Msg("no se pudo limpiar la imagen huérfana")
	}
}
