package commands

import (
	"fmt"

	"rsa_cipher_service/internal/infrastructure/cryptography"
	"rsa_cipher_service/internal/pkg/config"
	"rsa_cipher_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling key generation via CLI.
type KeyCommandHandler struct {
	logger logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &KeyCommandHandler{logger: loggerInstance}, nil
}

// GenerateKeysCmd generates an RSA key pair from the configured prime range
// and prints both halves to stdout. Keys are never persisted.
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	primeMin, err := cmd.Flags().GetInt64("prime-min")
	if err != nil {
		commandHandler.logger.Error("invalid prime-min flag: ", err)
		return
	}
	primeMax, err := cmd.Flags().GetInt64("prime-max")
	if err != nil {
		commandHandler.logger.Error("invalid prime-max flag: ", err)
		return
	}
	publicExponent, err := cmd.Flags().GetInt64("public-exponent")
	if err != nil {
		commandHandler.logger.Error("invalid public-exponent flag: ", err)
		return
	}

	settings := config.DefaultKeyGenSettings()
	settings.PrimeMin = primeMin
	settings.PrimeMax = primeMax
	settings.PublicExponent = publicExponent

	sampler, err := cryptography.NewMathRandSampler(settings.PrimeMin, settings.PrimeMax)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	rsaCipher, err := cryptography.NewRSACipher(settings, sampler, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()
	e, n := rsaCipher.PublicKey()
	d, _ := rsaCipher.PrivateKey()

	fmt.Printf("Key pair %s\n", uniqueID.String())
	fmt.Printf("  Public key (e, n):  %d %d\n", e, n)
	fmt.Printf("  Private key (d, n): %d %d\n", d, n)
}

// InitKeyCommands registers key-related commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a toy RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().Int64P("prime-min", "", 100, "Lower bound of the prime sampling range (inclusive)")
	generateKeysCmd.Flags().Int64P("prime-max", "", 1000, "Upper bound of the prime sampling range (exclusive)")
	generateKeysCmd.Flags().Int64P("public-exponent", "", 65537, "Public exponent")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
