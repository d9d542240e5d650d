package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wichananm65/lingo-backend/internal/config"
	"github.com/wichananm65/lingo-backend/internal/database"
	"github.com/wichananm65/lingo-backend/internal/logger"
	"github.com/wichananm65/lingo-backend/internal/middleware"
	"github.com/wichananm65/lingo-backend/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.Environment, os.Stdout)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run holds the database handle for the lifetime of the server and releases
// it after the HTTP listener has drained.
func run(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Options{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("closing database")
			return
		}
		log.Info().Msg("database connection closed")
	}()

	if err := database.Migrate(ctx, db, log); err != nil {
		return err
	}

	app := newApp(cfg, log, user.NewPostgresRepository(db))

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("server is running")
		listenErr <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newApp(cfg config.Config, log zerolog.Logger, repo user.Repository) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: !cfg.IsDevelopment(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World!")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	userHandler := user.NewHandler(user.NewService(repo), log)
	userHandler.RegisterRoutes(app)

	return app
}
