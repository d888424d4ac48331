package echo

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	accountapp "github.com/mohammadpnp/creations-admin/internal/application/account"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/auth"
	"go.uber.org/zap"
)

const (
	principalKey      = "principal"
	AccessTokenCookie = "sb-access-token"
)

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate resolves the caller from a bearer token or the session cookie.
// Requests without a valid token continue as anonymous; use cases decide
// whether that is allowed.
func Authenticate(verifier TokenVerifier, profiles accountapp.GetProfile, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := accessToken(c)
			if token == "" {
				return next(c)
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("access token rejected", zap.Error(err))
				return next(c)
			}

			principal := account.Principal{
				UserID: identity.UserID,
				Email:  identity.Email,
				Role:   account.RoleUser,
			}

			profile, err := profiles.Execute(c.Request().Context(), accountapp.GetProfileInput{ID: identity.UserID})
			switch {
			case err == nil:
				if role, err := account.ParseRole(profile.Role); err == nil {
					principal.Role = role
				}
			case errors.Is(err, accountapp.ErrProfileNotFound):
			default:
				logger.Error("load caller profile", zap.String("user_id", identity.UserID), zap.Error(err))
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) account.Principal {
	p, _ := c.Get(principalKey).(account.Principal)
	return p
}

func accessToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
