package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/candrel/s3translate/internal/blob"
	"github.com/candrel/s3translate/internal/config"
	"github.com/candrel/s3translate/internal/handler"
	"github.com/candrel/s3translate/internal/langid"
	"github.com/candrel/s3translate/internal/translator"
)

var (
	targetLang   string
	outputBucket string
)

var processCmd = &cobra.Command{
	Use:   "process <bucket> <key>",
	Short: "Run the pipeline for one stored request object",
	Long: `Downloads the request object, translates its text field, and writes
the result to the output bucket under the derived key.

The output bucket comes from --output-bucket, S3TRANSLATE_OUTPUT_BUCKET,
or OUTPUT_BUCKET, in that order. --target-lang applies only when the
stored request omits target_language.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket, key := args[0], args[1]
		ctx := context.Background()

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("failed to load AWS config: %w", err)
		}

		h := handler.New(
			blob.NewS3Store(s3.NewFromConfig(awsCfg)),
			translator.NewAmazonService(translate.NewFromConfig(awsCfg), cfg.MaxDocumentBytes),
			cfg,
		)

		outputKey, err := h.Process(ctx, bucket, key, targetLang)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "translation stored: s3://%s/%s\n", cfg.OutputBucket, outputKey)
		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language codes",
	Run: func(cmd *cobra.Command, args []string) {
		langs := langid.SupportedLanguages()
		sort.Strings(langs)
		for _, lang := range langs {
			fmt.Fprintln(cmd.OutOrStdout(), lang)
		}
	},
}

// resolveConfig builds the pipeline configuration from flags, the
// S3TRANSLATE_* environment, and the Lambda-style plain variables.
func resolveConfig() (config.Config, error) {
	cfg := config.Config{
		OutputBucket:      outputBucket,
		DefaultSourceLang: viper.GetString("DEFAULT_SOURCE_LANG"),
		DefaultTargetLang: viper.GetString("DEFAULT_TARGET_LANG"),
		MaxDocumentBytes:  viper.GetInt("MAX_DOCUMENT_BYTES"),
		Environment:       viper.GetString("ENVIRONMENT"),
	}
	if cfg.OutputBucket == "" {
		cfg.OutputBucket = viper.GetString("OUTPUT_BUCKET")
	}
	if cfg.OutputBucket == "" {
		// Same variable the Lambda runtime uses.
		cfg.OutputBucket = os.Getenv("OUTPUT_BUCKET")
	}
	if cfg.DefaultSourceLang == "" {
		cfg.DefaultSourceLang = langid.DefaultSource
	}
	if cfg.DefaultTargetLang == "" {
		cfg.DefaultTargetLang = langid.DefaultTarget
	}
	if cfg.Environment == "" {
		cfg.Environment = "dev"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func init() {
	processCmd.Flags().StringVarP(&targetLang, "target-lang", "t", langid.DefaultTarget,
		"target language when the request omits target_language")
	processCmd.Flags().StringVarP(&outputBucket, "output-bucket", "o", "",
		"bucket for result objects (defaults to S3TRANSLATE_OUTPUT_BUCKET)")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(languagesCmd)
}
