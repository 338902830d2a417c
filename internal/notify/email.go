package notify

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/semperfinish/intake/internal/models"
)

// sesAPI is the slice of the SES v2 client the email channel needs.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailChannel delivers submissions as a dual-format transactional email
// through SES v2.
type EmailChannel struct {
	client sesAPI
	from   string
	to     []string
}

func NewEmailChannel(client sesAPI, from string, to []string) *EmailChannel {
	return &EmailChannel{client: client, from: from, to: to}
}

func (c *EmailChannel) Name() models.Channel { return models.ChannelEmail }

func (c *EmailChannel) Deliver(ctx context.Context, msg *Message) error {
	if len(c.to) == 0 {
		return errors.New("no recipients configured")
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.from),
		Destination:      &types.Destination{ToAddresses: c.to},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(renderText(msg)), Charset: aws.String("UTF-8")},
					Html: &types.Content{Data: aws.String(renderHTML(msg)), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	_, err := c.client.SendEmail(ctx, input)
	return err
}

func renderText(msg *Message) string {
	lines := []string{msg.Heading}
	for _, f := range msg.Fields {
		if f.Value != "" {
			lines = append(lines, f.Label+": "+f.Value)
		}
	}
	for _, s := range msg.Sections {
		if s.Value != "" {
			lines = append(lines, "", s.Label+":", s.Value)
		}
	}
	return strings.Join(lines, "\n")
}

func renderHTML(msg *Message) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Cantarell,Noto Sans,sans-serif;line-height:1.5">`)
	b.WriteString("<h3>" + html.EscapeString(msg.Heading) + "</h3>")
	for _, f := range msg.Fields {
		if f.Value != "" {
			b.WriteString("<p>" + html.EscapeString(f.Label+": "+f.Value) + "</p>")
		}
	}
	for _, s := range msg.Sections {
		if s.Value != "" {
			b.WriteString(`<h3 style="margin-top:20px">` + html.EscapeString(s.Label) + ":</h3>")
			b.WriteString("<p>" + html.EscapeString(s.Value) + "</p>")
		}
	}
	b.WriteString("</div>")
	return b.String()
}
