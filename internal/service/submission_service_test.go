package service

import (
	"errors"
	"testing"

	"github.com/semperfinish/intake/internal/models"
)

func validBooking() models.BookingRequest {
	return models.BookingRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "(555) 123-4567",
		Address:   "1 Main St",
		Details:   "Refinish kitchen cabinets",
	}
}

func TestValidateBooking(t *testing.T) {
	b, err := ValidateBooking(validBooking())
	if err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
	if b.Phone != "5551234567" {
		t.Fatalf("phone not normalized: %q", b.Phone)
	}
	if got := b.Heading(); got != "New Booking Request from Jane Doe" {
		t.Fatalf("unexpected heading: %q", got)
	}
}

func TestValidateBookingMissingPhone(t *testing.T) {
	raw := validBooking()
	raw.Phone = "no digits here"
	if _, err := ValidateBooking(raw); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestValidateBookingInvalidEmail(t *testing.T) {
	raw := validBooking()
	raw.Email = "not-an-email"
	if _, err := ValidateBooking(raw); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func validTestimonial() models.Testimonial {
	return models.Testimonial{
		Name:           "John Smith",
		ProjectDetails: "Full interior repaint",
		DateOfProject:  "May 2026",
		SelectedOption: "Great work, on time and on budget.",
		Signature:      "John Smith",
		DateSubmitted:  "2026-08-01",
	}
}

func TestValidateTestimonialOptionalFields(t *testing.T) {
	tm, err := ValidateTestimonial(validTestimonial())
	if err != nil {
		t.Fatalf("testimonial without location rejected: %v", err)
	}
	if tm.Location != "" || tm.AdditionalComments != "" {
		t.Fatalf("optional fields not empty: %+v", tm)
	}
	if got := tm.Heading(); got != "New Testimonial from John Smith" {
		t.Fatalf("unexpected heading: %q", got)
	}
}

func TestValidateTestimonialMissingSignature(t *testing.T) {
	raw := validTestimonial()
	raw.Signature = "   "
	if _, err := ValidateTestimonial(raw); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
