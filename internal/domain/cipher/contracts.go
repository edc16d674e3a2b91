package cipher

// RSACipher defines the operations of a toy RSA cryptosystem bound to a single
// immutable key pair. Encryption and decryption are the same modular
// exponentiation parameterized with the public or private exponent; the codec
// methods are stateless transforms over that primitive.
//
// All operations are pure computations over bounded integers and are safe for
// concurrent use.
type RSACipher interface {
	// PublicKey returns the public exponent and the modulus.
	PublicKey() (exponent int64, modulus int64)

	// PrivateKey returns the private exponent and the modulus.
	PrivateKey() (exponent int64, modulus int64)

	// EncryptInteger encrypts a value in [0, modulus).
	// It returns an OutOfDomainError for values outside that range.
	EncryptInteger(value int64) (int64, error)

	// DecryptInteger decrypts a value in [0, modulus).
	// It returns an OutOfDomainError for values outside that range.
	DecryptInteger(value int64) (int64, error)

	// EncryptText encrypts each character of plainText and returns
	// space-delimited decimal ciphertext tokens, one per character, order
	// preserved.
	EncryptText(plainText string) (string, error)

	// DecryptText reverses EncryptText. It returns a DecodeError for
	// non-decimal tokens and produces no partial output on failure.
	DecryptText(cipherText string) (string, error)

	// EncryptBinaryTokens encrypts each whitespace-delimited binary token and
	// re-renders every ciphertext at the token's original character width.
	// A ciphertext that does not fit that width yields an EncodingOverflowError.
	EncryptBinaryTokens(tokenStream string) (string, error)

	// DecryptBinaryTokens reverses EncryptBinaryTokens under the same
	// width-preservation rule.
	DecryptBinaryTokens(tokenStream string) (string, error)
}
