package main

import (
	"log"
	"net/http"
	"os"

	_ "qnaboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"qnaboard/internal/auth"
	"qnaboard/internal/cache"
	"qnaboard/internal/config"
	"qnaboard/internal/db"
	"qnaboard/internal/handler"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"
	"qnaboard/internal/router"
	"qnaboard/internal/service"
)

// @title Q&A Board API
// @version 1.0
// @description Question and answer board with ownership-based access control and JWT/basic authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
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
			&model.DeleteHistory{},
			&model.Answer{},
			&model.Question{},
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
		&model.Question{},
		&model.Answer{},
		&model.DeleteHistory{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	answerRepo := repository.NewAnswerRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	identity := auth.NewIdentityResolver(userRepo, jwtService)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	questionService := service.NewQuestionService(questionRepo, cacheClient)
	answerService := service.NewAnswerService(answerRepo, questionRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)
	seedHandler := handler.NewSeedHandler(authService)

	// Register routes
	router.Register(
		e,
		cfg,
		identity,
		authHandler,
		userHandler,
		questionHandler,
		answerHandler,
		seedHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
