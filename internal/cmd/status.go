package cmd

import (
	"github.com/spf13/cobra"

	"github.com/YKarmar/AdmissionsDashboard/internal/catalog"
	"github.com/YKarmar/AdmissionsDashboard/internal/render"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the dashboard as a table in the terminal",
	RunE:  runStatus,
}

var (
	statusNoColor bool
	statusAsOf    string
)

func init() {
	statusCmd.Flags().BoolVar(&statusNoColor, "no-color", false, "disable colors")
	statusCmd.Flags().StringVar(&statusAsOf, "as-of", "", "date shown as last updated (YYYY-MM-DD or RFC3339)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) (err error) {
	d, err := loadDeps()
	if err != nil {
		return err
	}
	defer joinClose(&err, d.close)

	b, err := d.builder(statusAsOf)
	if err != nil {
		return err
	}

	return render.Terminal(cmd.OutOrStdout(), b.Build(catalog.Applications()), render.TerminalOptions{
		NoColor: statusNoColor,
	})
}
