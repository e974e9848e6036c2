package notification

import (
	"context"

	"github.com/codegate-id/codegate/internal/notification/inbound"
	"github.com/codegate-id/codegate/internal/notification/outbound/db"
	"github.com/codegate-id/codegate/internal/notification/outbound/email"
	outwebhook "github.com/codegate-id/codegate/internal/notification/outbound/webhook"
	"github.com/codegate-id/codegate/internal/notification/usecase"
	"github.com/codegate-id/codegate/internal/pkg/clock"
	"github.com/codegate-id/codegate/internal/pkg/config"
	"github.com/codegate-id/codegate/internal/pkg/goroutine"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/codegate-id/codegate/internal/pkg/mail"
	"github.com/codegate-id/codegate/internal/pkg/messaging"
	"github.com/codegate-id/codegate/internal/pkg/router"
	"github.com/codegate-id/codegate/internal/pkg/uid"
	"github.com/codegate-id/codegate/internal/pkg/validator"
	"github.com/codegate-id/codegate/internal/pkg/webhook"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	Ctx        context.Context
	DBConn     *pgxpool.Pool
	Messaging  messaging.Messaging
	Config     config.Config
	Instrument instrument.Instrumentation
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Router     *router.Router
	Mail       mail.Mail
	Webhook    webhook.Client
}

func New(dep Dependency) error {
	dbNotif := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := email.New(dep.Mail, dep.Instrument)
	repoWebhook := outwebhook.New(dep.Webhook, dep.Instrument)

	uc := usecase.NewNotification(usecase.Dependency{
		RepoDB:      dbNotif,
		RepoWebhook: repoWebhook,
		RepoMail:    repoMail,
		Config:      dep.Config,
		UID:         dep.UID,
		Clock:       dep.Clock,
		Validator:   dep.Validator,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
