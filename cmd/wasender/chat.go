package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var chatTo string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive prompt that sends each line as a message",
	RunE: func(cmd *cobra.Command, args []string) error {
		rl, err := readline.New(fmt.Sprintf("%s> ", chatTo))
		if err != nil {
			return fmt.Errorf("failed to start prompt: %w", err)
		}
		defer rl.Close()

		c := newClient()
		fmt.Println("Type a message and press enter to send. Ctrl-D exits.")

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			resp, err := c.SendText(ctx, chatTo, line)
			cancel()
			if err != nil {
				fmt.Printf("send failed: %v\n", err)
				continue
			}
			fmt.Printf("  ✓ %s\n", resp.Data.MessageID)
		}
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatTo, "to", "", "recipient phone number or jid (required)")
	chatCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(chatCmd)
}
