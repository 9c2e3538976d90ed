package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qnaboard/internal/service"
)

// SeedHandler exposes fixture seeding for local development and acceptance
// runs.
type SeedHandler struct {
	authService service.AuthService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService) *SeedHandler {
	return &SeedHandler{authService: authService}
}

// seedUser is one fixture user definition.
type seedUser struct {
	UserID   string
	Name     string
	Email    string
	Password string
}

// The two well-known fixture users the acceptance scenarios rely on.
var seedUsers = []seedUser{
	{UserID: "javajigi", Name: "자바지기", Email: "javajigi@slipp.net", Password: "test"},
	{UserID: "sanjigi", Name: "산지기", Email: "sanjigi@slipp.net", Password: "test"},
}

// SeedUsersResponse represents the seed response.
type SeedUsersResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedUsers godoc
// @Summary Seed the fixture users
// @Description Idempotent: users that already exist are skipped.
// @Tags seed
// @Produce json
// @Success 200 {object} SeedUsersResponse
// @Failure 500 {object} map[string]string
// @Router /seed/users [get]
func (h *SeedHandler) SeedUsers(c echo.Context) error {
	count := 0
	for _, u := range seedUsers {
		_, err := h.authService.Register(c.Request().Context(), u.UserID, u.Name, u.Email, u.Password)
		if err == service.ErrUserAlreadyExists {
			continue
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
				"error": "failed to seed users",
			})
		}
		count++
	}

	return c.JSON(http.StatusOK, SeedUsersResponse{
		Message: "users seeded successfully",
		Count:   count,
	})
}
