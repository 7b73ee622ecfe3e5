package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orbya/portfolio-backend/api/controllers"
	"github.com/orbya/portfolio-backend/api/middleware"
	"github.com/orbya/portfolio-backend/internal/admin"
	"github.com/orbya/portfolio-backend/internal/contact"
	"github.com/orbya/portfolio-backend/internal/content"
	"github.com/orbya/portfolio-backend/internal/media"
	"github.com/orbya/portfolio-backend/internal/projects"
	"github.com/orbya/portfolio-backend/internal/siteconfig"
	"github.com/orbya/portfolio-backend/internal/skills"
	"github.com/orbya/portfolio-backend/internal/status"
	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/logger"
	"github.com/orbya/portfolio-backend/pkg/metrics"
)

// Pingers carries the dependency checks surfaced by /health/ready. Nil
// entries are skipped, so an optional dependency only gates readiness when
// it is configured.
type Pingers struct {
	DB    controllers.Pinger
	Redis controllers.Pinger
	Media controllers.Pinger
}

// Services groups the domain services the router wires into controllers.
type Services struct {
	Admin      admin.Service
	Projects   projects.Service
	Skills     skills.Service
	Content    content.Service
	SiteConfig siteconfig.Service
	Contact    contact.Service
	Status     status.Service
	Media      media.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	deps Pingers,
	svcs Services,
	rateLimiter middleware.RateLimiterStore,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	var httpMetrics *metrics.HTTPMetrics
	if registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"db":    deps.DB,
			"redis": deps.Redis,
			"media": deps.Media,
		}))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Uploaded files are served straight from disk.
	fileServer := http.StripPrefix(cfg.Media.PublicBase, http.FileServer(http.Dir(cfg.Media.Root)))
	r.Handle(cfg.Media.PublicBase+"/*", fileServer)

	r.Route("/api", func(r chi.Router) {
		// Public read surface.
		r.Get("/projects", controllers.ProjectList(svcs.Projects, logg))
		r.Get("/projects/{projectId}", controllers.ProjectGet(svcs.Projects, logg))
		r.Get("/skills", controllers.SkillList(svcs.Skills, logg))
		r.Get("/stats", controllers.StatList(svcs.Content, logg))
		r.Get("/quotes", controllers.QuoteList(svcs.Content, logg))
		r.Get("/config", controllers.SiteConfigGet(svcs.SiteConfig, logg))
		r.Post("/contact", controllers.ContactCreate(svcs.Contact, logg))
		r.Post("/status", controllers.StatusCreate(svcs.Status, logg))
		r.Get("/status", controllers.StatusList(svcs.Status, logg))
		r.Get("/media", controllers.MediaList(svcs.Media, logg))
		r.Get("/resume/download", controllers.ResumeDownload(cfg.Resume, logg))

		r.With(middleware.AuthRateLimit(cfg.AuthRateLimit, rateLimiter, logg)).
			Post("/admin/auth", controllers.AdminAuthLogin(svcs.Admin, logg))

		// Admin surface: every mutating content endpoint requires a valid
		// session token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, svcs.Admin, logg))

			r.Put("/admin/password", controllers.AdminChangePassword(svcs.Admin, logg))

			r.Post("/projects", controllers.ProjectCreate(svcs.Projects, logg))
			r.Put("/projects/{projectId}", controllers.ProjectUpdate(svcs.Projects, logg))
			r.Delete("/projects/{projectId}", controllers.ProjectDelete(svcs.Projects, logg))

			r.Post("/skills", controllers.SkillCreate(svcs.Skills, logg))
			r.Put("/skills/{skillId}", controllers.SkillUpdate(svcs.Skills, logg))
			r.Delete("/skills/{skillId}", controllers.SkillDelete(svcs.Skills, logg))

			r.Put("/stats", controllers.StatReplace(svcs.Content, logg))
			r.Put("/quotes", controllers.QuoteReplace(svcs.Content, logg))

			r.Put("/config", controllers.SiteConfigUpdate(svcs.SiteConfig, logg))

			r.Get("/contact", controllers.ContactList(svcs.Contact, logg))
			r.Delete("/contact/{messageId}", controllers.ContactDelete(svcs.Contact, logg))

			r.Post("/upload", controllers.MediaUpload(svcs.Media, cfg.Media, logg))
			r.Route("/media", func(r chi.Router) {
				r.Delete("/{mediaType}/{fileName}", controllers.MediaDelete(svcs.Media, logg))
			})
		})
	})

	return r
}
