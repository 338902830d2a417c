package service

import (
	"errors"

	"github.com/semperfinish/intake/internal/models"
	"github.com/semperfinish/intake/internal/sanitize"
)

// ErrMissingFields is returned for every validation failure. It is
// deliberately field-agnostic so external callers learn nothing about which
// check rejected the submission.
var ErrMissingFields = errors.New("missing required fields")

// ValidateBooking sanitizes a raw booking submission and requires every
// field to be non-empty afterwards.
func ValidateBooking(raw models.BookingRequest) (*models.BookingRequest, error) {
	b := &models.BookingRequest{
		FirstName: sanitize.Text(raw.FirstName, 100),
		LastName:  sanitize.Text(raw.LastName, 100),
		Email:     sanitize.Email(raw.Email),
		Phone:     sanitize.Phone(raw.Phone),
		Address:   sanitize.Text(raw.Address, 200),
		Details:   sanitize.Text(raw.Details, 5000),
	}
	if b.FirstName == "" || b.LastName == "" || b.Email == "" || b.Phone == "" || b.Address == "" || b.Details == "" {
		return nil, ErrMissingFields
	}
	return b, nil
}

// ValidateTestimonial sanitizes a raw testimonial submission. Location and
// additional comments may be empty; the rest is required.
func ValidateTestimonial(raw models.Testimonial) (*models.Testimonial, error) {
	t := &models.Testimonial{
		Name:               sanitize.Text(raw.Name, 200),
		ProjectDetails:     sanitize.Text(raw.ProjectDetails, 2000),
		DateOfProject:      sanitize.Text(raw.DateOfProject, 100),
		Location:           sanitize.Text(raw.Location, 200),
		SelectedOption:     sanitize.Text(raw.SelectedOption, 5000),
		AdditionalComments: sanitize.Text(raw.AdditionalComments, 5000),
		Signature:          sanitize.Text(raw.Signature, 200),
		DateSubmitted:      sanitize.Text(raw.DateSubmitted, 100),
	}
	if t.Name == "" || t.ProjectDetails == "" || t.DateOfProject == "" || t.SelectedOption == "" || t.Signature == "" || t.DateSubmitted == "" {
		return nil, ErrMissingFields
	}
	return t, nil
}
