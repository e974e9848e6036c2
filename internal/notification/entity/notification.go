package entity

import "time"

// IntegrationSetting is one configured webhook destination for a project.
type IntegrationSetting struct {
	ID         uint64
	ProjectID  uint64
	Type       Destination
	WebhookURL string
	Enabled    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Field is one key/value line rendered in an outgoing message. Fields keep
// their insertion order so destinations render deterministically.
type Field struct {
	Key   string
	Value string
}

// Payload is the destination-agnostic content of a notification.
type Payload struct {
	Title    string
	Message  string
	Severity Severity
	Fields   []Field
}
