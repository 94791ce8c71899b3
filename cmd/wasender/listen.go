package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AroraShreshth/wasender/pkg/dispatch"
	"github.com/AroraShreshth/wasender/pkg/events"
	"github.com/AroraShreshth/wasender/pkg/listener"
	"github.com/AroraShreshth/wasender/pkg/webhook"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Run a local webhook listener and stream decoded events",
	Long: `listen starts an HTTP server that verifies and decodes WaSender webhook
deliveries. Decoded events are logged, streamed to WebSocket subscribers on
/ws, and the latest QR code is rendered at /qr.svg.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Webhook.Secret == "" {
			return fmt.Errorf("webhook secret not configured (set WASENDER_WEBHOOK_SECRET or webhook.secret)")
		}

		var opts []webhook.Option
		if cfg.Webhook.Scheme == "hmac" {
			opts = append(opts, webhook.WithVerifier(webhook.NewHMACVerifier(cfg.Webhook.Secret)))
		}
		handler := webhook.NewHandler(cfg.Webhook.Secret, opts...)

		d := dispatch.New()
		d.On(events.MessagesUpsert, func(evt *events.Event) {
			if msg, ok := evt.Data.(*events.MessageUpsert); ok {
				if text := msg.Message.Text(); text != "" {
					fmt.Printf("[%s] %s: %s\n", evt.Type, msg.Key.RemoteJID, text)
				}
			}
		})
		d.On(events.SessionStatus, func(evt *events.Event) {
			if status, ok := evt.Data.(*events.SessionStatusData); ok {
				fmt.Printf("[%s] session %s\n", evt.Type, status.Status)
			}
		})

		srv := listener.NewServer(listener.Config{
			Host: cfg.Listener.Host,
			Port: cfg.Listener.Port,
			Path: cfg.Listener.Path,
		}, handler, d)

		if err := srv.Start(cmd.Context()); err != nil {
			return err
		}
		defer srv.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
