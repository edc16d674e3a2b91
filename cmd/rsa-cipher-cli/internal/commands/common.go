package commands

import (
	"fmt"

	"rsa_cipher_service/internal/domain/cipher"
	"rsa_cipher_service/internal/domain/keys"
	"rsa_cipher_service/internal/infrastructure/cryptography"
	"rsa_cipher_service/internal/pkg/config"
	"rsa_cipher_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// cipherFromFlags builds a cipher from the exponent and modulus flags.
// Encryption and decryption are the same modular exponentiation under
// different exponents, so the one supplied exponent is bound to both halves of
// the key pair and the command picks the matching operation.
func cipherFromFlags(cmd *cobra.Command, loggerInstance logger.Logger) (cipher.RSACipher, error) {
	exponent, err := cmd.Flags().GetInt64("exponent")
	if err != nil {
		return nil, fmt.Errorf("invalid exponent flag: %w", err)
	}
	modulus, err := cmd.Flags().GetInt64("modulus")
	if err != nil {
		return nil, fmt.Errorf("invalid modulus flag: %w", err)
	}

	keyPair, err := keys.NewKeyPair(exponent, exponent, modulus)
	if err != nil {
		return nil, fmt.Errorf("invalid key material: %w", err)
	}

	return cryptography.NewRSACipherFromKeyPair(keyPair, loggerInstance)
}

// addKeyFlags registers the exponent and modulus flags shared by all codec
// commands.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("exponent", "", 0, "Key exponent to apply (public to encrypt, private to decrypt)")
	cmd.Flags().Int64P("modulus", "", 0, "Key modulus")
}
