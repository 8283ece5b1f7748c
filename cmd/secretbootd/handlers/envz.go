package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secretboot/secretboot/bootstrap"
	"github.com/secretboot/secretboot/observe"
)

// EnvzResponse is the payload of the diagnostic environment dump.
type EnvzResponse struct {
	Count   int               `json:"count"`
	Entries map[string]string `json:"entries"`
}

// EnvzHandler serves GET /envz, a diagnostic dump of the bootstrap
// environment. Values under secret-looking keys are redacted with the
// same rules the logger applies; the endpoint shows WHAT was injected,
// never the secrets themselves.
func EnvzHandler(env *bootstrap.Environment) echo.HandlerFunc {
	return func(c echo.Context) error {
		keys := env.Keys()
		entries := make(map[string]string, len(keys))
		for _, k := range keys {
			if observe.IsRedactedKey(k) {
				entries[k] = "[REDACTED]"
				continue
			}
			entries[k] = env.Get(k)
		}
		return c.JSON(http.StatusOK, EnvzResponse{
			Count:   len(entries),
			Entries: entries,
		})
	}
}
