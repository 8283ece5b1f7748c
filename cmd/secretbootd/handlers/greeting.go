// Package handlers contains the HTTP handlers for secretbootd.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secretboot/secretboot/bootstrap"
)

// GreetingHandler serves GET /.
//
// The greeting interpolates the ENV value at request time, so it reflects
// whatever the bootstrap injected: without a secrets file it reads "dev",
// with one it reads the injected mode (e.g. "k8s-vault").
func GreetingHandler(env *bootstrap.Environment) echo.HandlerFunc {
	return func(c echo.Context) error {
		mode := env.GetDefault("ENV", "dev")
		return c.String(http.StatusOK, fmt.Sprintf("Hello from secretboot! Environment: %s", mode))
	}
}
