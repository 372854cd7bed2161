package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pickleball-scorekeeper/internal/api/apierr"
	"github.com/mcoot/pickleball-scorekeeper/internal/middleware"
)

// healthPath is polled by the CLI and load balancers, so it logs at debug
const healthPath = "/api/v1/health"

// Standard returns the middleware every API route runs through, outermost
// first: panics become JSON INTERNAL_ERROR bodies, then each request is logged.
func Standard(logger *slog.Logger) []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
			apierr.WriteError(w, apierr.NewInternalError())
		}),
		middleware.Logging(logger, healthPath),
	}
}
