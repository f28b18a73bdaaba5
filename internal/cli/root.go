// Package cli implements the standalone command-line entry point for the
// translation pipeline.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/candrel/s3translate/internal/logging"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "s3translate",
	Short: "Object-triggered translation pipeline",
	Long: `Runs the translation pipeline against a stored request object:
downloads it, translates its text field, and writes the result object
to the output bucket under the derived key.

The same pipeline runs inside the Lambda function; this command invokes
it directly for backfills and local debugging.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitFromEnv()
	},
}

// Execute runs the CLI. Errors terminate the process with a non-zero exit;
// there is deliberately no recovery layer between the pipeline and the
// caller's terminal.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix("S3TRANSLATE")
	viper.AutomaticEnv()
}
