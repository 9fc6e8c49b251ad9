package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/YKarmar/AdmissionsDashboard/internal/catalog"
	"github.com/YKarmar/AdmissionsDashboard/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export applications as CSV, statistics, or an e-mail digest",
	Long: `Export writes the applications in one of three formats:

  csv    one row per application
  stats  per-status counts and summary tiles
  eml    the dashboard as a multipart e-mail (text and HTML)

Output goes to --out, or to the matching export.* file from the config.
Use --out - for stdout.`,
	RunE: runExport,
}

var (
	exportFormat string
	exportOut    string
	exportAsOf   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format: csv, stats or eml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, - for stdout")
	exportCmd.Flags().StringVar(&exportAsOf, "as-of", "", "date shown as last updated in the digest")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer joinClose(&err, d.close)

	apps := catalog.Applications()
	b, err := d.builder(exportAsOf)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = configuredExportFile(d, exportFormat)
	}
	toStdout := out == "-"

	switch exportFormat {
	case "csv":
		if toStdout {
			return exporter.WriteApplications(cmd.OutOrStdout(), apps)
		}
		if err := exporter.NewCSVExporter(out).ExportApplications(apps); err != nil {
			return err
		}
	case "stats":
		tiles := b.Tiles.Tiles(apps)
		if toStdout {
			return exporter.WriteStatistics(cmd.OutOrStdout(), tiles, apps)
		}
		if err := exporter.NewCSVExporter(out).ExportStatistics(tiles, apps); err != nil {
			return err
		}
	case "eml":
		// The Date header follows --as-of like the rest of the digest.
		dw := exporter.NewDigestWriter(exporter.DigestConfig{
			From: d.cfg.Export.DigestFrom,
			To:   d.cfg.Export.DigestTo,
		}, b.Now)
		if toStdout {
			out = ""
		}
		return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
			return dw.Write(w, b.Build(apps))
		}, d)
	default:
		return fmt.Errorf("unknown export format %q: want csv, stats or eml", exportFormat)
	}

	d.logger.Info("wrote export", "format", exportFormat, "path", out)
	return nil
}

func configuredExportFile(d *deps, format string) string {
	switch format {
	case "stats":
		return d.cfg.Export.StatsFile
	case "eml":
		return d.cfg.Export.DigestFile
	default:
		return d.cfg.Export.File
	}
}
