package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "schooldir/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"schooldir/internal/auth"
	"schooldir/internal/cache"
	"schooldir/internal/config"
	"schooldir/internal/db"
	"schooldir/internal/handler"
	"schooldir/internal/model"
	"schooldir/internal/repository"
	"schooldir/internal/router"
	"schooldir/internal/service"
	"schooldir/internal/storage"
)

// @title School Directory API
// @version 1.0
// @description School directory with admin-gated intake, public listing, and session-cookie authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Favourite{},
			&model.School{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.School{},
		&model.Favourite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	schoolRepo := repository.NewSchoolRepository(gormDB)
	favouriteRepo := repository.NewFavouriteRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize image store per configuration
	var imageStore storage.ImageStore
	var localImageDir string
	switch cfg.ImageStore {
	case "s3":
		s3Store, err := storage.NewS3Store(context.Background(), cfg)
		if err != nil {
			log.Fatalf("s3 store init: %v", err)
		}
		imageStore = s3Store
		log.Printf("image store: s3 bucket %q", cfg.S3Bucket)
	default:
		localStore, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("local store init: %v", err)
		}
		imageStore = localStore
		localImageDir = localStore.Dir()
		log.Printf("image store: local dir %q", localImageDir)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	schoolService := service.NewSchoolService(schoolRepo, imageStore, cacheClient)
	directoryService := service.NewDirectoryService(schoolRepo, favouriteRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	schoolHandler := handler.NewSchoolHandler(schoolService, directoryService)

	// Register routes
	router.Register(
		e,
		tokenService,
		userRepo,
		localImageDir,
		authHandler,
		schoolHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
