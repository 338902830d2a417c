package handler

import (
	"net/http"

	"github.com/semperfinish/intake/internal/models"
	"github.com/semperfinish/intake/internal/notify"
	"github.com/semperfinish/intake/internal/service"
)

// NotifyHandler is the server-to-server notification endpoint: validate the
// JSON submission, fan it out, and report the aggregate outcome.
type NotifyHandler struct {
	booking     *notify.Dispatcher
	testimonial *notify.Dispatcher
}

func NewNotifyHandler(booking, testimonial *notify.Dispatcher) *NotifyHandler {
	return &NotifyHandler{booking: booking, testimonial: testimonial}
}

func (h *NotifyHandler) BookingRequest(w http.ResponseWriter, r *http.Request) {
	var raw models.BookingRequest
	if err := readJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "missing body")
		return
	}
	rec, err := service.ValidateBooking(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.booking.Dispatch(r.Context(), notify.BookingMessage(rec))
	if !res.OverallSuccess {
		writeError(w, http.StatusInternalServerError, res.ErrorMessage())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *NotifyHandler) Testimonial(w http.ResponseWriter, r *http.Request) {
	var raw models.Testimonial
	if err := readJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "missing body")
		return
	}
	rec, err := service.ValidateTestimonial(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.testimonial.Dispatch(r.Context(), notify.TestimonialMessage(rec))
	if !res.OverallSuccess {
		writeError(w, http.StatusInternalServerError, res.ErrorMessage())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
