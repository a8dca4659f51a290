package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/uploads"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc     *usecase.CategoryUseCase
	images *uploads.Store
	log    *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, images *uploads.Store, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, images: images, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        page    query  int     false  "Página"            default(1)
// @Param        limit   query  int     false  "Tamaño de página"  default(10)
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Success      200  {object}  Envelope{data=dto.CategoryListResponse}
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.NewBadRequest("Invalid query parameters")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Categories retrieved successfully", out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID, con sus productos
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  Envelope{data=dto.CategoryResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Category retrieved successfully", out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       mpfd
// @Produce      json
// @Param        name   formData  string  true   "Nombre"
// @Param        image  formData  file    false  "Imagen"
// @Success      201  {object}  Envelope{data=dto.CategoryResponse}
// @Failure      422  {object}  Envelope
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	if in.Name == "" {
		return domain.NewValidation("Name is required")
	}

	saved, err := h.saveImage(c)
	if err != nil {
		return err
	}
	in.Image = saved

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		// El registro no se escribió: el archivo recién guardado sobra.
		h.cleanupImage(saved)
		return err
	}
	return respond(c, fiber.StatusCreated, "Category created successfully", out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Accept       mpfd
// @Produce      json
// @Param        id     path      string  true   "ID de la categoría"
// @Param        name   formData  string  false  "Nombre"
// @Param        image  formData  file    false  "Imagen nueva"
// @Success      200  {object}  Envelope{data=dto.CategoryResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
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
	if in.Name == nil && in.Image == nil {
		return domain.NewValidation("At least one field is required")
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		h.cleanupImage(saved)
		return err
	}
	return respond(c, fiber.StatusOK, "Category updated successfully", out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Category deleted successfully", nil)
}

// saveImage guarda el archivo "image" del form si viene; sin archivo devuelve
// cadena vacía sin error.
func (h *CategoryHandler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	url, err := h.images.Save(file, "categories")
	if err != nil {
		return "", err
	}
	return url, nil
}

// cleanupImage borra un archivo guardado cuya escritura en DB falló.
func (h *CategoryHandler) cleanupImage(url string) {
	if url == "" {
		return
	}
	if err := h.images.Delete(url); err != nil {
		h.log.Warn().Err(err).Str("image", url).Msg("no se pudo limpiar la imagen huérfana")
	}
}
