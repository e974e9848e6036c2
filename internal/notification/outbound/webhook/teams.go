package webhook

import (
	"context"

	"github.com/codegate-id/codegate/internal/notification/entity"
)

// Legacy Office 365 MessageCard shape, still the format for incoming
// webhook connectors.
type teamsCard struct {
	Type       string         `json:"@type"`
	Context    string         `json:"@context"`
	ThemeColor string         `json:"themeColor"`
	Title      string         `json:"title"`
	Text       string         `json:"text"`
	Sections   []teamsSection `json:"sections,omitempty"`
}

type teamsSection struct {
	Facts []teamsFact `json:"facts"`
}

type teamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var teamsThemeColors = map[entity.Severity]string{
	entity.SeveritySuccess: "28A745",
	entity.SeverityWarning: "FFC107",
	entity.SeverityError:   "DC3545",
	entity.SeverityDefault: "0078D4",
}

// SendTeams posts the payload as a MessageCard with a theme color derived
// from the severity and one fact per field in payload order.
func (w *Webhook) SendTeams(ctx context.Context, url string, p entity.Payload) error {
	ctx, span := w.startSpan(ctx, "SendTeams")
	defer span.End()

	color, ok := teamsThemeColors[p.Severity]
	if !ok {
		color = teamsThemeColors[entity.SeverityDefault]
	}

	card := teamsCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: color,
		Title:      p.Title,
		Text:       p.Message,
	}

	if len(p.Fields) > 0 {
		facts := make([]teamsFact, 0, len(p.Fields))
		for _, f := range p.Fields {
			facts = append(facts, teamsFact{Name: f.Key, Value: f.Value})
		}
		card.Sections = []teamsSection{{Facts: facts}}
	}

	return w.post(ctx, span, url, card)
}
