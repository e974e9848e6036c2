package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	pkgwebhook "github.com/codegate-id/codegate/internal/pkg/webhook"
)

func captureServer(t *testing.T, out *json.RawMessage) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode body: %v", err)
		}
		*out = raw
		w.WriteHeader(http.StatusOK)
	}))
}

func newTestWebhook() *Webhook {
	return New(pkgwebhook.NewHTTPClient(2*time.Second), instrument.NewNoop())
}

func TestSendSlackBlockLayout(t *testing.T) {
	var raw json.RawMessage
	srv := captureServer(t, &raw)
	defer srv.Close()

	p := entity.Payload{
		Title:    "Deploy finished",
		Message:  "Service is *live*.",
		Severity: entity.SeveritySuccess,
		Fields: []entity.Field{
			{Key: "env", Value: "production"},
			{Key: "version", Value: "v1.4.2"},
		},
	}

	if err := newTestWebhook().SendSlack(context.Background(), srv.URL, p); err != nil {
		t.Fatalf("send slack: %v", err)
	}

	var msg struct {
		Blocks []struct {
			Type string `json:"type"`
			Text struct {
				Type  string `json:"type"`
				Text  string `json:"text"`
				Emoji bool   `json:"emoji"`
			} `json:"text"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("unmarshal message: %v", err)
	}

	if len(msg.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(msg.Blocks))
	}

	header := msg.Blocks[0]
	if header.Type != "header" || header.Text.Type != "plain_text" || !header.Text.Emoji {
		t.Fatalf("unexpected header block: %+v", header)
	}
	if header.Text.Text != "Deploy finished" {
		t.Fatalf("unexpected header text: %q", header.Text.Text)
	}

	body := msg.Blocks[1]
	if body.Type != "section" || body.Text.Type != "mrkdwn" || body.Text.Text != "Service is *live*." {
		t.Fatalf("unexpected body block: %+v", body)
	}

	fields := msg.Blocks[2]
	want := "*env:* production\n*version:* v1.4.2"
	if fields.Text.Text != want {
		t.Fatalf("expected fields %q, got %q", want, fields.Text.Text)
	}
}

func TestSendSlackWithoutFields(t *testing.T) {
	var raw json.RawMessage
	srv := captureServer(t, &raw)
	defer srv.Close()

	p := entity.Payload{Title: "Ping", Message: "pong"}
	if err := newTestWebhook().SendSlack(context.Background(), srv.URL, p); err != nil {
		t.Fatalf("send slack: %v", err)
	}

	var msg struct {
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("unmarshal message: %v", err)
	}
	if len(msg.Blocks) != 2 {
		t.Fatalf("expected 2 blocks without fields, got %d", len(msg.Blocks))
	}
}

func TestSendTeamsCard(t *testing.T) {
	cases := []struct {
		severity entity.Severity
		color    string
	}{
		{entity.SeveritySuccess, "28A745"},
		{entity.SeverityWarning, "FFC107"},
		{entity.SeverityError, "DC3545"},
		{entity.SeverityDefault, "0078D4"},
	}

	for _, tc := range cases {
		t.Run(tc.severity.String(), func(t *testing.T) {
			var raw json.RawMessage
			srv := captureServer(t, &raw)
			defer srv.Close()

			p := entity.Payload{
				Title:    "Disk alert",
				Message:  "Volume almost full.",
				Severity: tc.severity,
				Fields:   []entity.Field{{Key: "host", Value: "db-1"}},
			}

			if err := newTestWebhook().SendTeams(context.Background(), srv.URL, p); err != nil {
				t.Fatalf("send teams: %v", err)
			}

			var card struct {
				Type       string `json:"@type"`
				Context    string `json:"@context"`
				ThemeColor string `json:"themeColor"`
				Title      string `json:"title"`
				Text       string `json:"text"`
				Sections   []struct {
					Facts []struct {
						Name  string `json:"name"`
						Value string `json:"value"`
					} `json:"facts"`
				} `json:"sections"`
			}
			if err := json.Unmarshal(raw, &card); err != nil {
				t.Fatalf("unmarshal card: %v", err)
			}

			if card.Type != "MessageCard" || card.Context != "http://schema.org/extensions" {
				t.Fatalf("unexpected card envelope: %+v", card)
			}
			if card.ThemeColor != tc.color {
				t.Fatalf("expected theme color %s, got %s", tc.color, card.ThemeColor)
			}
			if card.Title != "Disk alert" || card.Text != "Volume almost full." {
				t.Fatalf("unexpected card content: %+v", card)
			}
			if len(card.Sections) != 1 || len(card.Sections[0].Facts) != 1 {
				t.Fatalf("unexpected sections: %+v", card.Sections)
			}
			if f := card.Sections[0].Facts[0]; f.Name != "host" || f.Value != "db-1" {
				t.Fatalf("unexpected fact: %+v", f)
			}
		})
	}
}

func TestSendSlackDeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := entity.Payload{Title: "Ping", Message: "pong"}
	if err := newTestWebhook().SendSlack(context.Background(), srv.URL, p); err == nil {
		t.Fatal("expected delivery error")
	}
}
