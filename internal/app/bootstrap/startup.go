// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	eventstore "github.com/dalemusser/redlight/internal/app/store/events"
	"github.com/dalemusser/redlight/internal/app/system/mailer"
	"github.com/dalemusser/redlight/internal/app/system/notify"
	"github.com/dalemusser/redlight/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Long-lived background machinery created in Startup and torn down in
// Shutdown. BuildHandler shares the dispatcher so request handlers and
// the worker use the same plumbing.
var (
	dispatcher  *notify.Dispatcher
	sweepWorker *workers.EventSweep
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// Redlight builds the notification dispatcher and starts the event
// sweep worker here.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	m := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
		Enabled:  appCfg.MailEnabled,
	}, logger)
	dispatcher = notify.NewDispatcher(m, logger)

	sweepWorker = workers.NewEventSweep(eventstore.New(deps.MongoDatabase), logger, appCfg.SweepInterval)
	sweepWorker.Start()

	return nil
}
