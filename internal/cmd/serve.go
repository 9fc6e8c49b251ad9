package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YKarmar/AdmissionsDashboard/internal/catalog"
	"github.com/YKarmar/AdmissionsDashboard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve hosts the dashboard page at /, its JSON model at /dashboard.json,
single rows at /applications/:id and a health check at /healthz. When
server.documents_dir is configured the document files are served alongside
the page so their links resolve.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer joinClose(&err, d.close)

	b, err := d.builder("")
	if err != nil {
		return err
	}

	cfg := server.Config{
		Addr:         d.cfg.Server.Addr,
		DocumentsDir: d.cfg.Server.DocumentsDir,
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := server.Source{Applications: catalog.Applications, Lookup: catalog.Lookup}
	return server.New(cfg, b, src, d.logger).Run(ctx)
}
