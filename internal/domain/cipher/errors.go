package cipher

import "fmt"

// KeyGenerationError reports that no usable key pair could be derived from the
// sampled primes.
type KeyGenerationError struct {
	Attempts int
	Reason   string
}

func (e *KeyGenerationError) Error() string {
	return fmt.Sprintf("key generation failed after %d attempt(s): %s", e.Attempts, e.Reason)
}

// OutOfDomainError reports a value outside the arithmetic domain [0, modulus).
type OutOfDomainError struct {
	Value   int64
	Modulus int64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("value %d is outside the domain [0, %d)", e.Value, e.Modulus)
}

// EncodingOverflowError reports a binary token whose encrypted or decrypted
// value does not fit the token's original character width.
type EncodingOverflowError struct {
	Token string
	Width int
	Value int64
}

func (e *EncodingOverflowError) Error() string {
	return fmt.Sprintf("value %d does not fit the %d-bit width of token %q", e.Value, e.Width, e.Token)
}

// DecodeError reports a malformed token in a codec input stream.
type DecodeError struct {
	Token  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed token %q: %s", e.Token, e.Reason)
}
