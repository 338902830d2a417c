package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/semperfinish/intake/internal/auth"
	"github.com/semperfinish/intake/internal/config"
	"github.com/semperfinish/intake/internal/csrf"
	"github.com/semperfinish/intake/internal/gate"
	"github.com/semperfinish/intake/internal/models"
	"github.com/semperfinish/intake/internal/service"
)

// genericRejection is the single user-facing message for every admission
// and validation failure on the browser path. It must not reveal which
// defense or field rejected the submission.
const genericRejection = "Please fill out all required fields with valid values."

// FormHandler serves the browser-facing forms: it issues CSRF pairs at
// render time and forwards admitted, validated submissions to the notify
// endpoint with the matching shared secret.
type FormHandler struct {
	csrf   *csrf.Service
	gate   *gate.Gate
	cfg    *config.Config
	client *http.Client
}

func NewFormHandler(csrfSvc *csrf.Service, g *gate.Gate, cfg *config.Config) *FormHandler {
	return &FormHandler{
		csrf:   csrfSvc,
		gate:   g,
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (h *FormHandler) BookingForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"csrfToken": h.csrf.Issue(w)})
}

func (h *FormHandler) TestimonialForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"csrfToken": h.csrf.Issue(w)})
}

func (h *FormHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, genericRejection)
		return
	}
	if !h.gate.Admit(r) {
		writeError(w, http.StatusBadRequest, genericRejection)
		return
	}

	raw := models.BookingRequest{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Address:   r.PostFormValue("address"),
		Details:   r.PostFormValue("details"),
	}
	rec, err := service.ValidateBooking(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, bookingEcho(raw, genericRejection))
		return
	}

	if h.cfg.BookingAPISecret == "" {
		writeJSON(w, http.StatusInternalServerError, bookingEcho(raw, "server not configured"))
		return
	}

	if err := h.forward(r, "/api/v1/booking-request", h.cfg.BookingAPISecret, rec); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, bookingEcho(raw, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *FormHandler) SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, genericRejection)
		return
	}
	if !h.gate.Admit(r) {
		writeError(w, http.StatusBadRequest, genericRejection)
		return
	}

	raw := models.Testimonial{
		Name:               r.PostFormValue("name"),
		ProjectDetails:     r.PostFormValue("projectDetails"),
		DateOfProject:      r.PostFormValue("dateOfProject"),
		Location:           r.PostFormValue("location"),
		SelectedOption:     r.PostFormValue("selectedOption"),
		AdditionalComments: r.PostFormValue("additionalComments"),
		Signature:          r.PostFormValue("signature"),
		DateSubmitted:      r.PostFormValue("dateSubmitted"),
	}
	rec, err := service.ValidateTestimonial(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, testimonialEcho(raw, genericRejection))
		return
	}

	if h.cfg.TestimonialAPISecret == "" {
		writeJSON(w, http.StatusInternalServerError, testimonialEcho(raw, "server not configured"))
		return
	}

	if err := h.forward(r, "/api/v1/testimonial", h.cfg.TestimonialAPISecret, rec); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, testimonialEcho(raw, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// forward posts the validated record to the notify endpoint.
func (h *FormHandler) forward(r *http.Request, path, secret string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.cfg.NotifyBaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.Header, secret)

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("failed to submit (%d): %s", resp.StatusCode, bytes.TrimSpace(text))
	}
	return nil
}

// Echo payloads carry the submitted values back so the form can re-render
// without losing what the visitor typed.
func bookingEcho(raw models.BookingRequest, errMsg string) map[string]any {
	return map[string]any{
		"firstName": raw.FirstName,
		"lastName":  raw.LastName,
		"email":     raw.Email,
		"phone":     raw.Phone,
		"address":   raw.Address,
		"details":   raw.Details,
		"error":     errMsg,
	}
}

func testimonialEcho(raw models.Testimonial, errMsg string) map[string]any {
	return map[string]any{
		"name":               raw.Name,
		"projectDetails":     raw.ProjectDetails,
		"dateOfProject":      raw.DateOfProject,
		"location":           raw.Location,
		"selectedOption":     raw.SelectedOption,
		"additionalComments": raw.AdditionalComments,
		"signature":          raw.Signature,
		"dateSubmitted":      raw.DateSubmitted,
		"error":              errMsg,
	}
}
