package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/orbya/portfolio-backend/api/responses"
	"github.com/orbya/portfolio-backend/pkg/config"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/logger"
)

const readinessTimeout = 5 * time.Second

// Pinger is satisfied by every dependency surfaced on /health/ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Orbya-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks every wired dependency. Nil pingers are skipped, so
// optional dependencies (redis) only gate readiness when configured.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Orbya-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = err.Error()
			} else {
				checks[name] = "ok"
			}
		}

		for name, result := range checks {
			if result != "ok" {
				responses.WriteError(ctx, logg, w,
					pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(map[string]any{"failed": name, "checks": checks}))
				return
			}
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
