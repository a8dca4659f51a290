package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/gtrack"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/queue"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/uploads"
	httpRouter "github.com/jhoicas/catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	images := uploads.NewStore(cfg.Uploads)

	tokens := token.NewService(token.Config{
		AccessSecret:  cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Issuer:        cfg.JWT.Issuer,
		AccessTTL:     cfg.JWT.AccessTTL(),
		RefreshTTL:    cfg.JWT.RefreshTTL(),
	})

	identity := gtrack.NewClient(cfg.Upstream.LoginURL)

	// La cola es best-effort: si Redis no responde, el login sigue funcionando
	// y el fallo queda solo en los logs.
	redisClient := queue.NewClient(cfg.Redis)
	defer redisClient.Close()
	emailQueue := queue.New(redisClient, queue.SendEmailQueue)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, images, log)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, images, log)
	userUC := usecase.NewUserUseCase(userRepo, departmentRepo, txRunner)
	authUC := auth.NewUseCase(identity, memberRepo, tokens, emailQueue, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: httpRouter.NewErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Archivos subidos y assets fijos, servidos como estáticos públicos
	app.Static("/"+cfg.Uploads.Dir, "./"+cfg.Uploads.Dir)
	app.Static("/public", "./public")

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		UserUC:     userUC,
		AuthUC:     authUC,
		Tokens:     tokens,
		Images:     images,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
