package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireBearer returns an echo middleware that rejects requests without
// a valid bearer token. On success the verified identity is attached to
// the request context.
func RequireBearer(verifier *Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, ErrMissingCredentials.Error())
			}

			identity, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			ctx := WithIdentity(c.Request().Context(), identity)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
