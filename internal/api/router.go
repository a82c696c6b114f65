// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rentpay/internal/api/handler"
	"rentpay/internal/service"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth     *handler.AuthHandler
	Payment  *handler.PaymentHandler
	Property *handler.PropertyHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, authService service.AuthService) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	r.Get("/health_check", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.With(RequireAuth(authService)).Get("/me", h.Auth.Me)

	r.Route("/payments", func(r chi.Router) {
		r.Post("/", h.Payment.CreatePayment)
		r.Get("/", h.Payment.ListPayments)
		r.Route("/{paymentID}", func(r chi.Router) {
			r.Get("/", h.Payment.GetPayment)
			r.Post("/complete", h.Payment.Complete)
			r.Post("/fail", h.Payment.Fail)
			r.Post("/overdue", h.Payment.Overdue)
			r.Post("/partial", h.Payment.Partial)
		})
	})

	r.Route("/properties", func(r chi.Router) {
		r.Post("/", h.Property.CreateProperty)
		r.Get("/", h.Property.ListProperties)
	})

	return r
}
