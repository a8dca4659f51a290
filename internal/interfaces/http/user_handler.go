package http

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// emailRe validación mínima de formato de email.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserHandler maneja las peticiones HTTP para User (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"            default(1)
// @Param        limit   query  int     false  "Tamaño de página"  default(10)
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Success      200  {object}  Envelope{data=dto.UserListResponse}
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.NewBadRequest("Invalid query parameters")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Users retrieved successfully", out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID, con departamento y roles
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  Envelope{data=dto.UserResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "User retrieved successfully", out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201  {object}  Envelope{data=dto.UserResponse}
// @Failure      409  {object}  Envelope
// @Failure      422  {object}  Envelope
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	if in.Name == "" {
		return domain.NewValidation("Name is required")
	}
	if !emailRe.MatchString(in.Email) {
		return domain.NewValidation("A valid email is required")
	}
	if len(in.Password) < 6 {
		return domain.NewValidation("Password must be at least 6 characters")
	}
	if in.DepartmentID == "" {
		return domain.NewValidation("Department ID is required")
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, "User created successfully", out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Datos a actualizar"
// @Success      200  {object}  Envelope{data=dto.UserResponse}
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	if in.Name == nil && in.Email == nil {
		return domain.NewValidation("At least one field is required")
	}
	if in.Email != nil && !emailRe.MatchString(*in.Email) {
		return domain.NewValidation("A valid email is required")
	}

	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "User updated successfully", out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  Envelope{data=dto.UserResponse}
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "User deleted successfully", out)
}

// Roles godoc
// @Summary      Asignar o quitar roles de un usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        action  path  string  true  "assign o remove"
// @Param        body    body  dto.AssignRolesRequest  true  "Usuario y roles"
// @Success      200  {object}  Envelope{data=dto.UserResponse}
// @Failure      400  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /api/v1/users/roles/{action} [patch]
func (h *UserHandler) Roles(c *fiber.Ctx) error {
	var in dto.AssignRolesRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	if in.UserID == "" {
		return domain.NewValidation("User ID is required")
	}
	if len(in.RoleIDs) == 0 {
		return domain.NewValidation("At least one role ID is required")
	}

	out, err := h.uc.AssignOrRemoveRoles(c.Context(), c.Params("action"), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "User roles updated successfully", out)
}
