package notify

import (
	"context"
	"errors"
	"strings"

	"github.com/slack-go/slack"

	"github.com/semperfinish/intake/internal/models"
)

// SlackChannel delivers submissions as a Block Kit message to one channel.
// slack-go surfaces both transport failures and ok:false application
// responses as errors from PostMessageContext, which is exactly the failure
// contract this channel wants.
type SlackChannel struct {
	client    *slack.Client
	channelID string
}

// NewSlackChannel builds the chat channel. An empty token leaves the
// channel unconfigured; every delivery attempt then fails without a call.
func NewSlackChannel(token, channelID string, opts ...slack.Option) *SlackChannel {
	c := &SlackChannel{channelID: channelID}
	if token != "" {
		c.client = slack.New(token, opts...)
	}
	return c
}

func (c *SlackChannel) Name() models.Channel { return models.ChannelSlack }

func (c *SlackChannel) Deliver(ctx context.Context, msg *Message) error {
	if c.client == nil || c.channelID == "" {
		return errors.New("slack not configured")
	}

	_, _, err := c.client.PostMessageContext(ctx, c.channelID,
		slack.MsgOptionText(fallbackText(msg), false),
		slack.MsgOptionBlocks(buildBlocks(msg)...),
	)
	return err
}

// fallbackText is the flat summary shown by notification previews and
// clients that do not render blocks.
func fallbackText(msg *Message) string {
	lines := []string{msg.Heading}
	for _, f := range msg.Fields {
		if f.Value != "" {
			lines = append(lines, f.Label+": "+f.Value)
		}
	}
	for _, s := range msg.Sections {
		if s.Value != "" {
			lines = append(lines, s.Label+": "+s.Value)
		}
	}
	return strings.Join(lines, "\n")
}

func buildBlocks(msg *Message) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, msg.Heading, true, false)),
	}

	var fields []*slack.TextBlockObject
	for _, f := range msg.Fields {
		if f.Value != "" {
			fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, "*"+f.Label+":*\n"+f.Value, false, false))
		}
	}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	for _, s := range msg.Sections {
		if s.Value != "" {
			blocks = append(blocks,
				slack.NewDividerBlock(),
				slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*"+s.Label+":*\n"+s.Value, false, false), nil, nil),
			)
		}
	}
	return blocks
}
