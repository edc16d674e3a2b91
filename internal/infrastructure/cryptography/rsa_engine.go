package cryptography

import (
	"fmt"

	"rsa_cipher_service/internal/domain/cipher"
	"rsa_cipher_service/internal/domain/keys"
	"rsa_cipher_service/internal/pkg/config"
	"rsa_cipher_service/internal/pkg/logger"
)

// rsaCipher struct that implements the cipher.RSACipher interface. The key
// pair is derived once at construction and never mutated, so a single instance
// is safe for concurrent use.
type rsaCipher struct {
	keyPair keys.KeyPair
	logger  logger.Logger
}

// NewRSACipher derives a fresh key pair from primes drawn through the sampler
// and returns a cipher bound to it.
func NewRSACipher(settings *config.KeyGenSettings, sampler PrimeSampler, logger logger.Logger) (cipher.RSACipher, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key generation settings: %w", err)
	}

	keyPair, err := generateKeyPair(settings, sampler)
	if err != nil {
		return nil, err
	}

	_, n := keyPair.Public()
	logger.Info("Generated RSA key pair with modulus ", n)
	return &rsaCipher{keyPair: keyPair, logger: logger}, nil
}

// NewRSACipherFromKeyPair returns a cipher bound to existing key material.
func NewRSACipherFromKeyPair(keyPair keys.KeyPair, logger logger.Logger) (cipher.RSACipher, error) {
	return &rsaCipher{keyPair: keyPair, logger: logger}, nil
}

// generateKeyPair runs the textbook construction: sample p and q, reject
// degenerate draws, derive the private exponent from the totient. Resampling
// is the one legitimate internal retry and it is bounded by MaxAttempts.
func generateKeyPair(settings *config.KeyGenSettings, sampler PrimeSampler) (keys.KeyPair, error) {
	e := settings.PublicExponent

	for attempt := 1; attempt <= settings.MaxAttempts; attempt++ {
		p, err := sampler.SamplePrime()
		if err != nil {
			return keys.KeyPair{}, &cipher.KeyGenerationError{Attempts: attempt, Reason: err.Error()}
		}
		q, err := sampler.SamplePrime()
		if err != nil {
			return keys.KeyPair{}, &cipher.KeyGenerationError{Attempts: attempt, Reason: err.Error()}
		}

		// Equal primes would invalidate the totient formula; resample.
		if p == q {
			continue
		}

		n := p * q
		if n < cipher.MinModulus || n > cipher.MaxModulus {
			continue
		}

		phi := (p - 1) * (q - 1)
		if gcd(e%phi, phi) != 1 {
			continue
		}

		d, err := modInverse(e, phi)
		if err != nil {
			continue
		}
		// The exponents must be inverses modulo the totient or decryption
		// cannot undo encryption.
		if (e%phi)*d%phi != 1 {
			return keys.KeyPair{}, &cipher.KeyGenerationError{
				Attempts: attempt,
				Reason:   fmt.Sprintf("derived exponents %d and %d are not inverses modulo %d", e, d, phi),
			}
		}

		keyPair, err := keys.NewKeyPair(e, d, n)
		if err != nil {
			return keys.KeyPair{}, &cipher.KeyGenerationError{Attempts: attempt, Reason: err.Error()}
		}
		return keyPair, nil
	}

	return keys.KeyPair{}, &cipher.KeyGenerationError{
		Attempts: settings.MaxAttempts,
		Reason:   "no usable prime pair found in the sampling range",
	}
}

// PublicKey returns the public exponent and the modulus.
func (r *rsaCipher) PublicKey() (exponent int64, modulus int64) {
	return r.keyPair.Public()
}

// PrivateKey returns the private exponent and the modulus.
func (r *rsaCipher) PrivateKey() (exponent int64, modulus int64) {
	return r.keyPair.Private()
}

// EncryptInteger encrypts a value in [0, modulus) with the public exponent.
func (r *rsaCipher) EncryptInteger(value int64) (int64, error) {
	e, n := r.keyPair.Public()
	if value < 0 || value >= n {
		return 0, &cipher.OutOfDomainError{Value: value, Modulus: n}
	}
	return modPow(value, e, n), nil
}

// DecryptInteger decrypts a value in [0, modulus) with the private exponent.
func (r *rsaCipher) DecryptInteger(value int64) (int64, error) {
	d, n := r.keyPair.Private()
	if value < 0 || value >= n {
		return 0, &cipher.OutOfDomainError{Value: value, Modulus: n}
	}
	return modPow(value, d, n), nil
}
