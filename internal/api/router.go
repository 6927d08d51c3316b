package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/fitgroups-api/internal/api/handlers"
	"github.com/baharkarakas/fitgroups-api/internal/auth"
	"github.com/baharkarakas/fitgroups-api/internal/config"
	"github.com/baharkarakas/fitgroups-api/internal/metrics"
	"github.com/baharkarakas/fitgroups-api/internal/middleware"
	"github.com/baharkarakas/fitgroups-api/internal/services"
)

type RouterDeps struct {
	Cfg        config.Config
	Tokens     *auth.TokenManager
	UserSvc    *services.UserService
	GroupSvc   *services.GroupService
	RoutineSvc *services.RoutineService
}

func NewRouter(d RouterDeps) http.Handler {
	users := handlers.NewUserHandler(d.UserSvc, d.GroupSvc)
	groups := handlers.NewGroupHandler(d.GroupSvc)
	routines := handlers.NewRoutineHandler(d.RoutineSvc)
	h := handlers.Handle

	r := chi.NewRouter()
	// metrics sit outside Recover so panicking requests are counted as 500s
	r.Use(middleware.RequestID, middleware.HTTPMetrics, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// ---------- users ----------
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h(users.List))
			r.Post("/", h(users.Create))
			r.Post("/login", h(users.Login))
			r.Get("/no-group", h(users.WithoutGroup))
			r.With(middleware.Auth(d.Tokens)).Get("/me", h(users.Me))
			r.Get("/{id}", h(users.Get))
			r.Put("/{id}", h(users.Update))
			r.Put("/{id}/nombre", h(users.Rename))
			r.Delete("/{id}", h(users.Delete))
		})

		// ---------- groups ----------
		r.Route("/groups", func(r chi.Router) {
			r.Get("/", h(groups.List))
			r.Post("/", h(groups.Create))
			r.Get("/no-group", h(groups.WithoutGroup))
			r.Get("/{groupId}/users", h(groups.Members))
			r.Post("/{groupId}/users", h(groups.AddMember))
		})

		// ---------- routines ----------
		r.Route("/routines", func(r chi.Router) {
			r.Get("/", h(routines.List))
			r.Post("/", h(routines.Create))
		})
	})

	return r
}
