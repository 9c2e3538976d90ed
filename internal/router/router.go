package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"qnaboard/internal/auth"
	"qnaboard/internal/config"
	"qnaboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	identity *auth.IdentityResolver,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	questionHandler *handler.QuestionHandler,
	answerHandler *handler.AnswerHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Identity is resolved permissively for the whole API surface: requests
	// without valid credentials proceed as anonymous, and each operation
	// decides whether anonymity is acceptable. Resource endpoints answer 403,
	// never 401.
	api := e.Group("/api", identity.Middleware())

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/seed/users", seedHandler.SeedUsers)

	// User routes
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)

	// Question routes
	api.GET("/questions", questionHandler.List)
	api.GET("/questions/:id", questionHandler.Get)
	api.POST("/questions", questionHandler.Create)
	api.PUT("/questions/:id", questionHandler.Update)
	api.DELETE("/questions/:id", questionHandler.Delete)

	// Answer routes
	api.POST("/questions/:id/answers", answerHandler.Create)
	api.GET("/answers/:id", answerHandler.Get)
	api.PUT("/answers/:id", answerHandler.Update)
	api.DELETE("/answers/:id", answerHandler.Delete)

	// Account routes require a valid bearer token outright, so the stricter
	// JWT middleware with its hard 401 applies here.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)
	secured.PUT("/me", userHandler.UpdateMe)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
