package notify

import "github.com/semperfinish/intake/internal/models"

// Field is a short labeled value rendered inline by every channel.
// Sections carry long free-text values that get their own heading (email)
// or divider-delimited block (Slack). Empty values are skipped everywhere.
type Field struct {
	Label string
	Value string
}

type Section struct {
	Label string
	Value string
}

// Message is the channel-neutral rendering of one validated submission.
// Each channel turns the same fixed field order into its own payload.
type Message struct {
	Heading  string
	Subject  string
	ReplyTo  string
	Fields   []Field
	Sections []Section
}

func BookingMessage(b *models.BookingRequest) *Message {
	return &Message{
		Heading: b.Heading(),
		Subject: "New Booking Request - " + b.FirstName + " " + b.LastName,
		ReplyTo: b.Email,
		Fields: []Field{
			{"Name", b.FirstName + " " + b.LastName},
			{"Email", b.Email},
			{"Phone", b.Phone},
			{"Address", b.Address},
		},
		Sections: []Section{
			{"Project Details", b.Details},
		},
	}
}

func TestimonialMessage(t *models.Testimonial) *Message {
	return &Message{
		Heading: t.Heading(),
		Subject: "New Testimonial - " + t.Name,
		Fields: []Field{
			{"Name", t.Name},
			{"Project Details", t.ProjectDetails},
			{"Date of Project", t.DateOfProject},
			{"Location", t.Location},
			{"Date Submitted", t.DateSubmitted},
		},
		Sections: []Section{
			{"Testimonial", t.SelectedOption},
			{"Additional Comments", t.AdditionalComments},
			{"Signature", t.Signature},
		},
	}
}
