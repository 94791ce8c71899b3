package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
)

var qrCmd = &cobra.Command{
	Use:   "qr <session-id>",
	Short: "Fetch and display the pairing QR code for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid session id %q", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		resp, err := newClient().GetSessionQRCode(ctx, id)
		if err != nil {
			return err
		}
		if resp.Data.QRCode == "" {
			return fmt.Errorf("session %d has no pending QR code", id)
		}

		printQRTerminal(resp.Data.QRCode)
		return nil
	},
}

// printQRTerminal renders QR data as half-block characters in the terminal.
func printQRTerminal(data string) {
	fmt.Println("\n--- Scan this QR code with WhatsApp (Linked Devices) ---")
	qrterminal.GenerateHalfBlock(data, qrterminal.L, os.Stdout)
	fmt.Println("--- Waiting for scan... ---")
}

func init() {
	rootCmd.AddCommand(qrCmd)
}
