package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/orbya/portfolio-backend/pkg/config"
)

// CORS returns middleware that applies the configured allowed-origin policy.
// The default configuration allows every origin since the portfolio API is
// read-mostly public content.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
