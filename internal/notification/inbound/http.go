package inbound

import (
	"github.com/codegate-id/codegate/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// All routes below require authentication.
	r.POST("/api/v1/notifications/dispatch", end.Dispatch)

	r.GET("/api/v1/integrations", end.SettingsList)
	r.POST("/api/v1/integrations", end.SettingsCreate)
	r.PUT("/api/v1/integrations/:id", end.SettingsUpdate)
	r.DELETE("/api/v1/integrations/:id", end.SettingsDelete)
}
