package app

import (
	"log/slog"
	"os"

	"github.com/codegate-id/codegate/internal/notification"
	"github.com/codegate-id/codegate/internal/otp"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.otp.enabled") {
		if err := otp.New(otp.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Messaging:  a.messaging,
			Cooldown:   a.cooldown,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			CodeGen:    a.codeGen,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init otp module", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
			Router:     a.router,
			Mail:       a.mail,
			Webhook:    a.webhook,
		}); err != nil {
			slog.Error("failed to init notification module", "error", err)
			os.Exit(1)
		}
	}
}
