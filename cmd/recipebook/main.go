package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/yamori/recipebook/internal/config"
	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/infra/database"
	"github.com/yamori/recipebook/internal/infra/repository"
	"github.com/yamori/recipebook/internal/infra/storage"
	"github.com/yamori/recipebook/internal/present/rest"
	"github.com/yamori/recipebook/internal/present/rest/middleware"
	"github.com/yamori/recipebook/internal/service"
	"github.com/yamori/recipebook/internal/usecase"
)

func main() {
	configPath := flag.String("c", "config/config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if conf.Server.EnableTrace {
		cleanup, err := setupTracer(conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to setup tracer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer cleanup()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error("failed to connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)

	images, err := storage.NewLocalImageStore(conf.Server.ImageDir)
	if err != nil {
		slog.Error("failed to prepare image dir", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db, rdb)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)

	users := usecase.NewUserUsecase(userRepo)
	tags := usecase.NewOwnedAttributes[domain.Tag](tagRepo)
	ingredients := usecase.NewOwnedAttributes[domain.Ingredient](ingredientRepo)
	recipes := usecase.NewRecipeUsecase(recipeRepo, images)
	auth := service.NewAuthService(userRepo, tokenRepo)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("recipebook"))
	}
	e.Validator = rest.NewValidator()

	authmw := middleware.NewAuthMiddleware(auth)
	handler := rest.NewHandler(users, tags, ingredients, recipes, auth)
	handler.RegisterRoutes(e, authmw)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTracer(endpoint string) (func(), error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(provider)

	return func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			slog.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}, nil
}
