package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hotel-booking/engine/internal/api/handlers"
	mw "github.com/hotel-booking/engine/internal/api/middleware"
)

type Dependencies struct {
	// HMACSecret enables bearer authentication on /api/v1 when set.
	HMACSecret      []byte
	// AllowedOrigins lists the browser origins CORS admits; "*" admits all.
	AllowedOrigins  []string
	RateLimitRPS    float64
	RateLimitBurst  int
	Ping            handlers.Pinger
	UsersHandler    *handlers.UsersHandler
	HotelsHandler   *handlers.HotelsHandler
	RoomsHandler    *handlers.RoomsHandler
	BookingsHandler *handlers.BookingsHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS(dep.AllowedOrigins))
	if dep.RateLimitRPS > 0 {
		r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler(dep.Ping)
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api/v1", func(api chi.Router) {
		if len(dep.HMACSecret) > 0 {
			api.Use(mw.Auth(dep.HMACSecret))
		}

		api.Route("/users", func(ur chi.Router) {
			ur.Get("/", dep.UsersHandler.List)
			ur.Post("/", dep.UsersHandler.Create)
			ur.Get("/{userId}", dep.UsersHandler.Get)
			ur.Patch("/{userId}", dep.UsersHandler.Update)
			ur.Delete("/{userId}", dep.UsersHandler.Delete)
		})

		api.Route("/hotels", func(hr chi.Router) {
			hr.Get("/", dep.HotelsHandler.List)
			hr.Post("/", dep.HotelsHandler.Create)
			hr.Get("/deleted", dep.HotelsHandler.ListDeleted)

			hr.Route("/{hotelId}", func(one chi.Router) {
				one.Get("/", dep.HotelsHandler.Get)
				one.Patch("/", dep.HotelsHandler.Update)
				one.Delete("/", dep.HotelsHandler.Delete)
				one.Put("/restore", dep.HotelsHandler.Restore)

				one.Route("/rooms", func(rr chi.Router) {
					rr.Get("/", dep.RoomsHandler.List)
					rr.Post("/", dep.RoomsHandler.Create)
					rr.Get("/{roomId}", dep.RoomsHandler.Get)
					rr.Patch("/{roomId}", dep.RoomsHandler.Update)
					rr.Delete("/{roomId}", dep.RoomsHandler.Delete)
				})
			})
		})

		api.Route("/bookings", func(br chi.Router) {
			br.Get("/", dep.BookingsHandler.List)
			br.Post("/", dep.BookingsHandler.Create)
			br.Get("/{bookingId}", dep.BookingsHandler.Get)
			br.Patch("/{bookingId}", dep.BookingsHandler.Update)
			br.Delete("/{bookingId}", dep.BookingsHandler.Delete)
		})
	})

	return r
}
