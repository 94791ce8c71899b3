package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage WhatsApp sessions (requires personal access token)",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions on the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := newClient().ListSessions(ctx)
		if err != nil {
			return err
		}

		if len(resp.Data) == 0 {
			fmt.Println("No sessions.")
			return nil
		}
		for _, s := range resp.Data {
			fmt.Printf("%-6d %-20s %-16s %s\n", s.ID, s.Name, s.PhoneNumber, s.Status)
		}
		return nil
	},
}

var sessionsConnectCmd = &cobra.Command{
	Use:   "connect <id>",
	Short: "Bring a session online, printing a QR code if pairing is needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := newClient().ConnectSession(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("Session %d: %s\n", id, resp.Data.Status)
		if resp.Data.QRCode != "" {
			printQRTerminal(resp.Data.QRCode)
		}
		return nil
	},
}

var sessionsDisconnectCmd = &cobra.Command{
	Use:   "disconnect <id>",
	Short: "Take a session offline without unpairing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := newClient().DisconnectSession(ctx, id)
		if err != nil {
			return err
		}

		fmt.Printf("Session %d: %s\n", id, resp.Data.Status)
		return nil
	},
}

var sessionsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the connection state for the configured API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := newClient().Status(ctx)
		if err != nil {
			return err
		}

		fmt.Println(resp.Data.Status)
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsConnectCmd)
	sessionsCmd.AddCommand(sessionsDisconnectCmd)
	sessionsCmd.AddCommand(sessionsStatusCmd)
	rootCmd.AddCommand(sessionsCmd)
}
