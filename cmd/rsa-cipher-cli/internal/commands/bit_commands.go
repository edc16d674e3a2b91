package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_cipher_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// BitCommandHandler encapsulates logic for handling binary-token codec
// operations via CLI.
type BitCommandHandler struct {
	logger logger.Logger
}

// NewBitCommandHandler initializes a new BitCommandHandler with logging.
func NewBitCommandHandler() (*BitCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &BitCommandHandler{logger: loggerInstance}, nil
}

// EncryptBitsCmd encrypts a stream of whitespace-delimited binary tokens,
// preserving each token's character width
func (commandHandler *BitCommandHandler) EncryptBitsCmd(cmd *cobra.Command, _ []string) {
	commandHandler.transformBits(cmd, true)
}

// DecryptBitsCmd decrypts a stream of whitespace-delimited binary tokens,
// preserving each token's character width
func (commandHandler *BitCommandHandler) DecryptBitsCmd(cmd *cobra.Command, _ []string) {
	commandHandler.transformBits(cmd, false)
}

func (commandHandler *BitCommandHandler) transformBits(cmd *cobra.Command, encrypt bool) {
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

	tokenStream, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var transformed string
	if encrypt {
		transformed, err = rsaCipher.EncryptBinaryTokens(string(tokenStream))
	} else {
		transformed, err = rsaCipher.DecryptBinaryTokens(string(tokenStream))
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFile, []byte(transformed), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Transformed binary token path ", outputFile)
}

// InitBitCommands registers binary-token codec commands
func InitBitCommands(rootCmd *cobra.Command) error {
	handler, err := NewBitCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create bit command handler %w", err)
	}

	var encryptBitsCmd = &cobra.Command{
		Use:   "encrypt-bits",
		Short: "Encrypt whitespace-delimited binary tokens (e.g. Huffman codes)",
		Run:   handler.EncryptBitsCmd,
	}
	encryptBitsCmd.Flags().StringP("input-file", "", "", "Path to binary token input file")
	encryptBitsCmd.Flags().StringP("output-file", "", "", "Path to encrypted token output file")
	addKeyFlags(encryptBitsCmd)
	rootCmd.AddCommand(encryptBitsCmd)

	var decryptBitsCmd = &cobra.Command{
		Use:   "decrypt-bits",
		Short: "Decrypt whitespace-delimited binary tokens",
		Run:   handler.DecryptBitsCmd,
	}
	decryptBitsCmd.Flags().StringP("input-file", "", "", "Path to encrypted token input file")
	decryptBitsCmd.Flags().StringP("output-file", "", "", "Path to decrypted token output file")
	addKeyFlags(decryptBitsCmd)
	rootCmd.AddCommand(decryptBitsCmd)

	return nil
}
