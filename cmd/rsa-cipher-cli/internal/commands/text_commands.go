package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_cipher_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// TextCommandHandler encapsulates logic for handling text codec operations via CLI.
type TextCommandHandler struct {
	logger logger.Logger
}

// NewTextCommandHandler initializes a new TextCommandHandler with logging.
func NewTextCommandHandler() (*TextCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &TextCommandHandler{logger: loggerInstance}, nil
}

// EncryptTextCmd encrypts a text file into space-delimited decimal ciphertext tokens
func (commandHandler *TextCommandHandler) EncryptTextCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	rsaCipher, err := cipherFromFlags(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := rsaCipher.EncryptText(string(plainText))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFile, []byte(cipherText), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted text path ", outputFile)
}

// DecryptTextCmd decrypts space-delimited decimal ciphertext tokens back into text
func (commandHandler *TextCommandHandler) DecryptTextCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	rsaCipher, err := cipherFromFlags(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := rsaCipher.DecryptText(string(cipherText))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFile, []byte(plainText), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted text path ", outputFile)
}

// InitTextCommands registers text-codec commands
func InitTextCommands(rootCmd *cobra.Command) error {
	handler, err := NewTextCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create text command handler %w", err)
	}

	var encryptTextCmd = &cobra.Command{
		Use:   "encrypt-text",
		Short: "Encrypt a text file into decimal ciphertext tokens",
		Run:   handler.EncryptTextCmd,
	}
	encryptTextCmd.Flags().StringP("input-file", "", "", "Path to plaintext input file")
	encryptTextCmd.Flags().StringP("output-file", "", "", "Path to ciphertext output file")
	addKeyFlags(encryptTextCmd)
	rootCmd.AddCommand(encryptTextCmd)

	var decryptTextCmd = &cobra.Command{
		Use:   "decrypt-text",
		Short: "Decrypt decimal ciphertext tokens back into text",
		Run:   handler.DecryptTextCmd,
	}
	decryptTextCmd.Flags().StringP("input-file", "", "", "Path to ciphertext input file")
	decryptTextCmd.Flags().StringP("output-file", "", "", "Path to plaintext output file")
	addKeyFlags(decryptTextCmd)
	rootCmd.AddCommand(decryptTextCmd)

	return nil
}
