package app

import (
	"context"
	"net/http"

	"github.com/codegate-id/codegate/internal/pkg/clock"
	"github.com/codegate-id/codegate/internal/pkg/config"
	"github.com/codegate-id/codegate/internal/pkg/cooldown"
	"github.com/codegate-id/codegate/internal/pkg/goroutine"
	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/codegate-id/codegate/internal/pkg/jwt"
	"github.com/codegate-id/codegate/internal/pkg/mail"
	"github.com/codegate-id/codegate/internal/pkg/messaging"
	"github.com/codegate-id/codegate/internal/pkg/otpcode"
	"github.com/codegate-id/codegate/internal/pkg/router"
	"github.com/codegate-id/codegate/internal/pkg/uid"
	"github.com/codegate-id/codegate/internal/pkg/validator"
	"github.com/codegate-id/codegate/internal/pkg/webhook"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID
	codeGen   otpcode.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	cooldown  cooldown.Guard
	mail      mail.Mail
	messaging messaging.Messaging
	webhook   webhook.Client

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
