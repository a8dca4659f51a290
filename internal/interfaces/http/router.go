package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/uploads"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	UserUC     *usecase.UserUseCase
	AuthUC     *auth.UseCase
	Tokens     *token.Service
	Images     *uploads.Store
	Log        *logger.Logger
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return respond(c, fiber.StatusOK, "OK", fiber.Map{"status": "up"})
	})

	// Categories (público)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Images, deps.Log)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (público)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Images, deps.Log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Members: login delegado y refresh (público)
	members := api.Group("/members")
	memberHandler := NewMemberHandler(deps.AuthUC)
	members.Post("/login", memberHandler.Login)
	members.Post("/refresh", memberHandler.Refresh)

	// Users (requiere Bearer token; eliminar y roles exigen rol admin)
	users := api.Group("/users", AuthMiddleware(deps.Tokens))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Patch("/roles/:action", RequireRole("admin"), userHandler.Roles)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequireRole("admin"), userHandler.Delete)

	// Cualquier ruta no registrada responde 404 en el envelope canónico.
	app.Use(func(c *fiber.Ctx) error {
		return domain.NewNotFound("No route found for " + c.Method() + " " + c.Path())
	})
}
