package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/YKarmar/AdmissionsDashboard/internal/catalog"
	"github.com/YKarmar/AdmissionsDashboard/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard as a static HTML page",
	Long: `Render writes the dashboard as a single HTML page to stdout or to --out.

The "last updated" footer uses the current date unless --as-of is given.`,
	RunE: runRender,
}

var (
	renderOut  string // Output file, stdout when empty
	renderAsOf string // Fixed "last updated" date
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write the page to this file instead of stdout")
	renderCmd.Flags().StringVar(&renderAsOf, "as-of", "", "date shown as last updated (YYYY-MM-DD or RFC3339)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer joinClose(&err, d.close)

	b, err := d.builder(renderAsOf)
	if err != nil {
		return err
	}
	dash := b.Build(catalog.Applications())

	return writeOutput(cmd.OutOrStdout(), renderOut, func(w io.Writer) error {
		return render.HTML(w, dash)
	}, d)
}

// writeOutput sends write's output to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error, d *deps) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	d.logger.Info("wrote output", "path", path)
	return nil
}
