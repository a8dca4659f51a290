package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/token"
)

// LocalClaims key de los claims verificados en c.Locals.
const LocalClaims = "auth_claims"

// AuthMiddleware valida el Bearer token y deja los claims en c.Locals.
// Un token vencido responde 498 para que el cliente dispare el refresh;
// cualquier otro fallo de verificación responde 401.
func AuthMiddleware(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return domain.NewUnauthorized("Authorization header is required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.NewUnauthorized("Authorization header must be: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return domain.NewUnauthorized("Token is required")
		}

		claims, err := tokens.VerifyAccess(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				return domain.NewTokenExpired("Token expired")
			}
			return domain.NewUnauthorized("Invalid token")
		}

		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRole exige que los claims del token incluyan alguno de los roles
// indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return domain.NewUnauthorized("Authentication required")
		}
		if len(roles) == 0 {
			return c.Next()
		}
		for _, want := range roles {
			for _, have := range claims.Roles {
				if have == want {
					return c.Next()
				}
			}
		}
		return domain.NewForbidden("Insufficient permissions")
	}
}

// GetClaims devuelve los claims del contexto (después del middleware de auth).
func GetClaims(c *fiber.Ctx) *token.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}

// GetUserID devuelve el UserID de los claims, o vacío si no hay sesión.
func GetUserID(c *fiber.Ctx) string {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return ""
}
