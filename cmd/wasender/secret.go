package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AroraShreshth/wasender/pkg/config"
)

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage credentials in the OS keyring",
}

var secretSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: fmt.Sprintf("Store a credential (one of: %s)", strings.Join(config.SecretNames(), ", ")),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.StoreSecret(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to store secret: %w", err)
		}
		fmt.Printf("Stored %s (%s)\n", args[0], config.MaskSecret(args[1]))
		return nil
	},
}

var secretDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a credential from the keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.DeleteSecret(args[0]); err != nil {
			return fmt.Errorf("failed to delete secret: %w", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	secretCmd.AddCommand(secretSetCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	rootCmd.AddCommand(secretCmd)
}
