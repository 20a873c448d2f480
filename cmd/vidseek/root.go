package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vidseek/vidseek/internal/client"
	"github.com/vidseek/vidseek/internal/config"
)

var (
	flagAPIKey   string
	flagLogLevel string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "vidseek",
	Short:         "Resolve YouTube videos from URLs and explore their metadata",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagAPIKey != "" {
			cfg.APIKey = flagAPIKey
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		zerolog.SetGlobalLevel(level)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "YouTube Data API key (env VIDSEEK_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (env VIDSEEK_LOG_LEVEL)")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(resolveCmd)
}

// connect builds the service client from the loaded configuration and
// establishes the API connection.
func connect(ctx context.Context) (*client.YouTubeDataClient, error) {
	svc, err := client.NewYouTubeDataClient(cfg.APIKey, client.WithHTTPTimeout(cfg.HTTPTimeout))
	if err != nil {
		return nil, err
	}
	if err := svc.Connect(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
