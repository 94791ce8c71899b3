package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AroraShreshth/wasender/pkg/client"
	"github.com/AroraShreshth/wasender/pkg/config"
	"github.com/AroraShreshth/wasender/pkg/logger"
)

var (
	version = "dev"

	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wasender",
	Short: "Command line client for the WaSender messaging API",
	Long: `wasender sends WhatsApp messages through the WaSender API, manages
sessions and runs a local webhook listener for development.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.SetLevel(cfg.Log.Level)
		return nil
	},
}

// newClient builds an API client from the loaded configuration.
func newClient() *client.Client {
	opts := []client.Option{
		client.WithAPIKey(cfg.API.APIKey),
		client.WithPersonalToken(cfg.API.PersonalToken),
		client.WithWebhookSecret(cfg.Webhook.Secret),
		client.WithRetryPolicy(client.RetryPolicy{
			Enabled:    cfg.API.RetryEnabled,
			MaxRetries: cfg.API.MaxRetries,
		}),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.API.BaseURL))
	}
	return client.New(opts...)
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default ~/.wasender/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
