package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ticketdash/ticketdash/internal/httpapi"
)

// serveCmd runs the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ticketdash HTTP API server.",
	Long: `Start the JSON API that dashboards and upload tooling talk to.

Serves:
- Portfolio and project management
- Analysis record upload, listing and aggregation
- Performance and availability data points
- Statistics, dashboards and period comparisons

The server shuts down gracefully on SIGINT/SIGTERM, draining in-flight
requests before closing the database.

Examples:
  # Serve on the default address with the SQLite backend
  ticketdash serve

  # Serve against MySQL on a custom port
  ticketdash serve --listen :8080 --backend mysql --db-connect "user:pass@tcp(localhost:3306)/ticketdash"`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		defer func() { _ = appStore.Close() }()

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		srv := httpapi.New(cfg, appStore, log)
		return srv.Run(ctx)
	},
}
