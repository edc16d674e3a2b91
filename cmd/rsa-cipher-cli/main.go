// Package main is the entry point for the rsa-cipher-cli application.
// It initializes the root command, registers the key generation and codec
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "rsa_cipher_service/cmd/rsa-cipher-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cipher-cli",
		Short: "Toy RSA cipher CLI tool",
		Long: `rsa-cipher-cli demonstrates a textbook RSA cryptosystem over small integers.
Supports key pair generation from a bounded prime range, per-character text
encryption to decimal ciphertext tokens, and encryption of fixed-width binary
(Huffman-code) tokens.

The key sizes involved are far below any real-world safety margin; this tool
exists for demonstration and study, not for protecting data.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitTextCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize text commands: %w", err)
	}

	if err := commands.InitBitCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize binary token commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
