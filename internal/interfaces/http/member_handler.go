package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// MemberHandler maneja el login delegado de members y el refresh de tokens.
type MemberHandler struct {
	uc *auth.UseCase
}

// NewMemberHandler construye el handler.
func NewMemberHandler(uc *auth.UseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// Login godoc
// @Summary      Login de member contra la API de identidad GTrack
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MemberLoginRequest  true  "Credenciales"
// @Success      200  {object}  Envelope{data=dto.MemberLoginResponse}
// @Failure      401  {object}  Envelope
// @Failure      422  {object}  Envelope
// @Router       /api/v1/members/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	var in dto.MemberLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Login successful", out)
}

// Refresh godoc
// @Summary      Rotar el par de tokens con un refresh token vigente
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshTokenRequest  true  "Refresh token"
// @Success      200  {object}  Envelope{data=dto.RefreshTokenResponse}
// @Failure      401  {object}  Envelope
// @Failure      422  {object}  Envelope
// @Router       /api/v1/members/refresh [post]
func (h *MemberHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshTokenRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewBadRequest("Invalid request body")
	}
	out, err := h.uc.Refresh(c.Context(), in)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, "Token refreshed successfully", out)
}
