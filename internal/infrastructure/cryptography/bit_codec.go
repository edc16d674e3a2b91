package cryptography

import (
	"fmt"
	"strings"

	"rsa_cipher_service/internal/domain/cipher"
)

// EncryptBinaryTokens encrypts each whitespace-delimited binary token (such as
// a Huffman code) as one integer and re-renders every ciphertext at the
// token's original character width, so an external prefix-code decoder can
// recover the exact bit lengths.
func (r *rsaCipher) EncryptBinaryTokens(tokenStream string) (string, error) {
	encrypted, err := r.transformBinaryTokens(tokenStream, r.EncryptInteger)
	if err != nil {
		return "", err
	}

	r.logger.Info("Encrypted binary token stream")
	return encrypted, nil
}

// DecryptBinaryTokens reverses EncryptBinaryTokens under the same
// width-preservation rule.
func (r *rsaCipher) DecryptBinaryTokens(tokenStream string) (string, error) {
	decrypted, err := r.transformBinaryTokens(tokenStream, r.DecryptInteger)
	if err != nil {
		return "", err
	}

	r.logger.Info("Decrypted binary token stream")
	return decrypted, nil
}

// transformBinaryTokens applies one direction of the integer cipher to every
// token. Encryption and decryption share this path because both are the same
// modular exponentiation under a different exponent. A transformed value that
// needs more bits than the token's width yields an EncodingOverflowError
// instead of silently dropping high bits.
func (r *rsaCipher) transformBinaryTokens(tokenStream string, apply func(int64) (int64, error)) (string, error) {
	fields := strings.Fields(tokenStream)

	out := make([]string, 0, len(fields))
	for _, token := range fields {
		value, err := binaryTokenValue(token)
		if err != nil {
			return "", err
		}

		transformed, err := apply(value)
		if err != nil {
			return "", err
		}

		width := len(token)
		if transformed >= int64(1)<<width {
			return "", &cipher.EncodingOverflowError{Token: token, Width: width, Value: transformed}
		}
		out = append(out, formatBinaryToken(transformed, width))
	}

	return strings.Join(out, " "), nil
}

// binaryTokenValue converts a '0'/'1' token to its unsigned integer value,
// most significant bit first.
func binaryTokenValue(token string) (int64, error) {
	if len(token) > cipher.MaxTokenBits {
		return 0, &cipher.DecodeError{
			Token:  token,
			Reason: fmt.Sprintf("wider than %d bits", cipher.MaxTokenBits),
		}
	}

	var value int64
	for i := 0; i < len(token); i++ {
		if token[i] != '0' && token[i] != '1' {
			return 0, &cipher.DecodeError{Token: token, Reason: "expected only '0' and '1'"}
		}
		value = value<<1 | int64(token[i]-'0')
	}
	return value, nil
}

// formatBinaryToken renders value as a fixed-width binary string, most
// significant bit first. The caller guarantees the value fits the width.
func formatBinaryToken(value int64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + value&1)
		value >>= 1
	}
	return string(buf)
}
