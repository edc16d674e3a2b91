package cryptography

import (
	"fmt"
	"strconv"
	"strings"

	"rsa_cipher_service/internal/domain/cipher"
)

// EncryptText encrypts each character of plainText as one integer and renders
// the ciphertexts as space-delimited decimal tokens, order preserved.
func (r *rsaCipher) EncryptText(plainText string) (string, error) {
	tokens := make([]string, 0, len(plainText))
	for _, c := range []byte(plainText) {
		encrypted, err := r.EncryptInteger(int64(c))
		if err != nil {
			return "", err
		}
		tokens = append(tokens, strconv.FormatInt(encrypted, 10))
	}

	r.logger.Info("Encrypted ", len(tokens), " characters")
	return strings.Join(tokens, " "), nil
}

// DecryptText splits cipherText on whitespace, decrypts each decimal token and
// reinterprets the results as character codes. Nothing is returned when any
// token is malformed.
func (r *rsaCipher) DecryptText(cipherText string) (string, error) {
	fields := strings.Fields(cipherText)

	var builder strings.Builder
	builder.Grow(len(fields))
	for _, token := range fields {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return "", &cipher.DecodeError{Token: token, Reason: "expected a decimal integer"}
		}

		decrypted, err := r.DecryptInteger(value)
		if err != nil {
			return "", err
		}
		if decrypted > 255 {
			return "", &cipher.DecodeError{
				Token:  token,
				Reason: fmt.Sprintf("decrypts to %d, outside the character range", decrypted),
			}
		}
		builder.WriteByte(byte(decrypted))
	}

	r.logger.Info("Decrypted ", len(fields), " characters")
	return builder.String(), nil
}
