package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/semperfinish/intake/internal/auth"
	"github.com/semperfinish/intake/internal/config"
	"github.com/semperfinish/intake/internal/handler"
	mw "github.com/semperfinish/intake/internal/middleware"
)

func New(cfg *config.Config, formH *handler.FormHandler, notifyH *handler.NotifyHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Browser-facing forms: GET issues the CSRF pair, POST runs the
	// admission gate and forwards to the notify endpoints.
	r.Get("/booking", formH.BookingForm)
	r.Post("/booking", formH.SubmitBooking)
	r.Get("/customer-testimony", formH.TestimonialForm)
	r.Post("/customer-testimony", formH.SubmitTestimonial)

	// Server-to-server notification endpoints, each behind its own secret.
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.APIKey(cfg.BookingAPISecret))
			r.Post("/booking-request", notifyH.BookingRequest)
		})
		r.Group(func(r chi.Router) {
			r.Use(auth.APIKey(cfg.TestimonialAPISecret))
			r.Post("/testimonial", notifyH.Testimonial)
		})
	})

	return r
}
