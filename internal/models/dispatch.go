package models

import "strings"

// Channel identifies one notification sink.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSlack Channel = "slack"
)

// DispatchOutcome is the result of one delivery attempt on one channel.
type DispatchOutcome struct {
	Channel Channel `json:"channel"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

// DispatchResult aggregates the per-channel outcomes of one submission.
// OverallSuccess holds only when every channel delivered.
type DispatchResult struct {
	OverallSuccess bool              `json:"ok"`
	Outcomes       []DispatchOutcome `json:"outcomes"`
}

// ErrorMessage joins the failed channels' errors in outcome order.
func (r DispatchResult) ErrorMessage() string {
	var errs []string
	for _, o := range r.Outcomes {
		if !o.Success && o.Error != "" {
			errs = append(errs, o.Error)
		}
	}
	return strings.Join(errs, "; ")
}
