package models

// BookingRequest is a normalized booking form submission. It is only
// constructed after every field passed sanitization and the required set is
// non-empty.
type BookingRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Details   string `json:"details"`
}

func (b *BookingRequest) Heading() string {
	return "New Booking Request from " + b.FirstName + " " + b.LastName
}

// Testimonial is a normalized customer testimonial submission. Location and
// AdditionalComments are optional; everything else is required.
type Testimonial struct {
	Name               string `json:"name"`
	ProjectDetails     string `json:"projectDetails"`
	DateOfProject      string `json:"dateOfProject"`
	Location           string `json:"location"`
	SelectedOption     string `json:"selectedOption"`
	AdditionalComments string `json:"additionalComments"`
	Signature          string `json:"signature"`
	DateSubmitted      string `json:"dateSubmitted"`
}

func (t *Testimonial) Heading() string {
	return "New Testimonial from " + t.Name
}
