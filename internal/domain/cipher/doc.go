// Package cipher defines the core interfaces, constants and error types of the toy RSA
// cryptosystem: raw integer encryption and decryption over a single immutable key pair,
// plus the text and binary-token codec adapters built on top of it.

package cipher
