package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/openautomate/website/internal/apiclient"
	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/contact"
	"github.com/openautomate/website/internal/handlers"
	"github.com/openautomate/website/internal/i18n"
	"github.com/openautomate/website/internal/logger"
	"github.com/openautomate/website/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(appOptions()...)
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

// appOptions assembles the application graph.
func appOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		// Infrastructure modules
		config.Module,
		logger.Module,
		apiclient.Module,
		i18n.Module,

		// Domain modules
		contact.Module,
		handlers.Module,
		server.Module,
	}
}
