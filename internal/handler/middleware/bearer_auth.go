//go:generate mockgen -source=$GOFILE -destination=mock_bearer_auth_test.go -package=middleware
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// SubjectContextKey は認証済みのsubjectをecho.Contextに格納するキー
const SubjectContextKey = "auth_subject"

var ErrMissingBearerToken = errors.New("missing bearer token")

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// BearerAuth はAuthorizationヘッダーのBearerトークンを検証する
func BearerAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				return NewAppError(http.StatusUnauthorized, "認証が必要です", ErrMissingBearerToken)
			}

			sub, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return NewAppError(http.StatusUnauthorized, "認証が必要です", err)
			}

			c.Set(SubjectContextKey, sub)
			return next(c)
		}
	}
}
