package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/YKarmar/AdmissionsDashboard/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "University admissions dashboard",
	Long: `Dashboard renders the compiled-in university admission applications,
their status, documents and scholarships as an HTML page, a terminal table,
CSV exports or an e-mail digest, and can host the page over HTTP.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is "+config.DefaultPath+")")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config is read")
	rootCmd.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN or ERROR")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for dashboard.log (default stderr)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("env_file", rootCmd.PersistentFlags().Lookup("env-file"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.dir", rootCmd.PersistentFlags().Lookup("log-dir"))
}

func initConfig() {
	viper.SetEnvPrefix("ADMISSIONS")
	// e.g. ADMISSIONS_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
