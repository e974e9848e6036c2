package inbound

import (
	"strconv"
	"time"

	"github.com/codegate-id/codegate/internal/notification/entity"
)

type DispatchRequest struct {
	ProjectID uint64            `json:"project_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      string            `json:"type,omitempty"`
	Fields    []DispatchFieldKV `json:"fields,omitempty"`
}

// DispatchFieldKV keeps field order as sent by the caller.
type DispatchFieldKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type DispatchResponse struct{}

func (DispatchResponse) Message() string {
	return "Notification delivered to all enabled destinations."
}

type IntegrationSettingItem struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	Type       string    `json:"type"`
	WebhookURL string    `json:"webhook_url"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newIntegrationSettingItem(s entity.IntegrationSetting) IntegrationSettingItem {
	return IntegrationSettingItem{
		ID:         strconv.FormatUint(s.ID, 10),
		ProjectID:  strconv.FormatUint(s.ProjectID, 10),
		Type:       s.Type.String(),
		WebhookURL: s.WebhookURL,
		Enabled:    s.Enabled,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

type SettingsListResponse struct {
	Settings []IntegrationSettingItem `json:"settings"`
}

type SettingsCreateRequest struct {
	ProjectID  uint64 `json:"project_id"`
	Type       string `json:"type"`
	WebhookURL string `json:"webhook_url"`
	Enabled    bool   `json:"enabled"`
}

type SettingsCreateResponse struct {
	ID string `json:"id"`
}

func (SettingsCreateResponse) Message() string {
	return "Integration created."
}

type SettingsUpdateRequest struct {
	WebhookURL string `json:"webhook_url"`
	Enabled    bool   `json:"enabled"`
}
