package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"rsa_cipher_service/internal/domain/cipher"
)

// KeyGenSettings holds configuration for RSA key construction: the prime
// sampling range, the public exponent and the resampling bound.
type KeyGenSettings struct {
	PrimeMin       int64 `mapstructure:"prime_min" validate:"required,min=2"`
	PrimeMax       int64 `mapstructure:"prime_max" validate:"required"`
	PublicExponent int64 `mapstructure:"public_exponent" validate:"required,min=3"`
	MaxAttempts    int   `mapstructure:"max_attempts" validate:"required,min=1"`
}

// DefaultKeyGenSettings returns the conventional demonstration settings:
// primes from [100, 1000) and the public exponent 65537.
func DefaultKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		PrimeMin:       100,
		PrimeMax:       1000,
		PublicExponent: cipher.DefaultPublicExponent,
		MaxAttempts:    1000,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	if s.PrimeMax <= s.PrimeMin {
		return fmt.Errorf("prime max %d must exceed prime min %d", s.PrimeMax, s.PrimeMin)
	}
	// The product of two primes below PrimeMax must stay within the modulus
	// bound, otherwise key construction could overflow int64.
	if s.PrimeMax-1 > cipher.MaxModulus/(s.PrimeMax-1) {
		return fmt.Errorf("prime max %d is too large: the modulus bound is %d", s.PrimeMax, cipher.MaxModulus)
	}
	// The totient of an RSA modulus is even, so an even exponent can never be
	// coprime with it.
	if s.PublicExponent%2 == 0 {
		return fmt.Errorf("public exponent %d must be odd", s.PublicExponent)
	}

	return nil
}
