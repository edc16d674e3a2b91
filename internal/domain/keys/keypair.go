package keys

import (
	"fmt"

	"rsa_cipher_service/internal/domain/cipher"
)

// KeyPair holds RSA key material derived once at construction. Neither the
// source primes nor the totient are retained, and the fields cannot be
// mutated afterwards.
type KeyPair struct {
	publicExponent  int64
	privateExponent int64
	modulus         int64
}

// NewKeyPair validates the exponents and the modulus and returns an immutable
// key pair. The modulus must lie in [cipher.MinModulus, cipher.MaxModulus] so
// that the full byte range is encryptable and no modular product overflows
// int64.
func NewKeyPair(publicExponent, privateExponent, modulus int64) (KeyPair, error) {
	if modulus < cipher.MinModulus {
		return KeyPair{}, fmt.Errorf("modulus %d is below the minimum of %d", modulus, cipher.MinModulus)
	}
	if modulus > cipher.MaxModulus {
		return KeyPair{}, fmt.Errorf("modulus %d exceeds the maximum of %d", modulus, cipher.MaxModulus)
	}
	if publicExponent < 1 {
		return KeyPair{}, fmt.Errorf("public exponent %d must be positive", publicExponent)
	}
	if privateExponent < 1 {
		return KeyPair{}, fmt.Errorf("private exponent %d must be positive", privateExponent)
	}

	return KeyPair{
		publicExponent:  publicExponent,
		privateExponent: privateExponent,
		modulus:         modulus,
	}, nil
}

// Public returns the public exponent and the modulus.
func (k KeyPair) Public() (exponent int64, modulus int64) {
	return k.publicExponent, k.modulus
}

// Private returns the private exponent and the modulus.
func (k KeyPair) Private() (exponent int64, modulus int64) {
	return k.privateExponent, k.modulus
}
