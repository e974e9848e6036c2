package webhook

import (
	"context"
	"strings"

	"github.com/codegate-id/codegate/internal/notification/entity"
)

// Slack Block Kit shapes, kept to the subset this service emits.
type slackMessage struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type string     `json:"type"`
	Text *slackText `json:"text,omitempty"`
}

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// SendSlack posts the payload as a Block Kit message: a header block, a
// markdown body section, and one fields section with a `key: value` line per
// field in payload order.
func (w *Webhook) SendSlack(ctx context.Context, url string, p entity.Payload) error {
	ctx, span := w.startSpan(ctx, "SendSlack")
	defer span.End()

	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: p.Title, Emoji: true},
		},
		{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: p.Message},
		},
	}

	if len(p.Fields) > 0 {
		var lines []string
		for _, f := range p.Fields {
			lines = append(lines, "*"+f.Key+":* "+f.Value)
		}
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: strings.Join(lines, "\n")},
		})
	}

	return w.post(ctx, span, url, slackMessage{Blocks: blocks})
}
