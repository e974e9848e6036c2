package inbound

import (
	"strconv"

	"github.com/codegate-id/codegate/internal/notification/entity"
	"github.com/codegate-id/codegate/internal/notification/usecase"
	"github.com/codegate-id/codegate/internal/pkg/goerror"
	"github.com/codegate-id/codegate/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for notification dispatch and
// integration settings management.
type HTTPEndpoint struct {
	uc uc
}

// Dispatch fans a notification out to every enabled destination of a project.
func (h *HTTPEndpoint) Dispatch(r *router.Request) (any, error) {
	var req DispatchRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	fields := lo.Map(req.Fields, func(f DispatchFieldKV, _ int) entity.Field {
		return entity.Field{Key: f.Key, Value: f.Value}
	})

	if err := h.uc.Dispatch(r.Context(), usecase.DispatchInput{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Message:   req.Message,
		Severity:  req.Type,
		Fields:    fields,
	}); err != nil {
		return nil, err
	}

	return DispatchResponse{}, nil
}

// SettingsList returns all integrations of a project.
func (h *HTTPEndpoint) SettingsList(r *router.Request) (any, error) {
	projectID, err := strconv.ParseUint(r.GetQuery("project_id"), 10, 64)
	if err != nil {
		return nil, goerror.NewInvalidFormat("Invalid query project_id")
	}

	resp, err := h.uc.SettingsList(r.Context(), usecase.SettingsListInput{
		ProjectID: projectID,
	})
	if err != nil {
		return nil, err
	}

	return SettingsListResponse{
		Settings: lo.Map(resp.Settings, func(s entity.IntegrationSetting, _ int) IntegrationSettingItem {
			return newIntegrationSettingItem(s)
		}),
	}, nil
}

// SettingsCreate registers a new webhook destination for a project.
func (h *HTTPEndpoint) SettingsCreate(r *router.Request) (any, error) {
	var req SettingsCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SettingsCreate(r.Context(), usecase.SettingsCreateInput{
		ProjectID:  req.ProjectID,
		Type:       req.Type,
		WebhookURL: req.WebhookURL,
		Enabled:    req.Enabled,
	})
	if err != nil {
		return nil, err
	}

	return SettingsCreateResponse{ID: strconv.FormatUint(resp.ID, 10)}, nil
}

// SettingsUpdate changes the webhook URL or enabled flag of an integration.
func (h *HTTPEndpoint) SettingsUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req SettingsUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SettingsUpdate(r.Context(), usecase.SettingsUpdateInput{
		ID:         uint64(id),
		WebhookURL: req.WebhookURL,
		Enabled:    req.Enabled,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// SettingsDelete removes an integration.
func (h *HTTPEndpoint) SettingsDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.SettingsDelete(r.Context(), usecase.SettingsDeleteInput{
		ID: uint64(id),
	}); err != nil {
		return nil, err
	}

	return nil, nil
}
