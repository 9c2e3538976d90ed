package auth

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/labstack/echo/v4"

	"qnaboard/internal/model"
)

type ctxKeyCaller struct{}

// WithCaller attaches the authenticated caller to the context.
func WithCaller(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, ctxKeyCaller{}, user)
}

// CallerFrom returns the authenticated caller, or nil for anonymous requests.
func CallerFrom(ctx context.Context) *model.User {
	user, _ := ctx.Value(ctxKeyCaller{}).(*model.User)
	return user
}

// UserLoader loads users during credential resolution.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUserID(ctx context.Context, userID string) (*model.User, error)
}

// IdentityResolver turns request credentials into a caller identity. It
// accepts HTTP Basic (user_id:password) and Bearer JWT credentials.
type IdentityResolver struct {
	users UserLoader
	jwt   *JWTService
}

// NewIdentityResolver creates an identity resolver.
func NewIdentityResolver(users UserLoader, jwt *JWTService) *IdentityResolver {
	return &IdentityResolver{users: users, jwt: jwt}
}

// Middleware resolves credentials into a caller on the request context.
// Absent or invalid credentials leave the request anonymous; whether
// anonymity is acceptable is decided per operation in the service layer,
// which is why this middleware never rejects a request itself.
func (r *IdentityResolver) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			var user *model.User
			switch {
			case strings.HasPrefix(header, "Basic "):
				user = r.resolveBasic(c.Request().Context(), strings.TrimPrefix(header, "Basic "))
			case strings.HasPrefix(header, "Bearer "):
				user = r.resolveBearer(c.Request().Context(), strings.TrimPrefix(header, "Bearer "))
			}

			if user != nil {
				req := c.Request()
				c.SetRequest(req.WithContext(WithCaller(req.Context(), user)))
			}
			return next(c)
		}
	}
}

func (r *IdentityResolver) resolveBasic(ctx context.Context, encoded string) *model.User {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	loginID, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return nil
	}
	user, err := r.users.FindByUserID(ctx, loginID)
	if err != nil {
		return nil
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil
	}
	return user
}

func (r *IdentityResolver) resolveBearer(ctx context.Context, token string) *model.User {
	claims, err := r.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}
	user, err := r.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
