package cipher

// DefaultPublicExponent is the conventional RSA public exponent.
const DefaultPublicExponent int64 = 65537

// MinModulus is the smallest usable modulus. Every byte value must stay below
// the modulus, otherwise ciphertexts alias other plaintexts.
const MinModulus int64 = 256

// MaxModulus is the largest modulus whose residues multiply without
// overflowing int64: MaxModulus squared is just below 1<<63.
const MaxModulus int64 = 3037000499

// MaxTokenBits bounds the character width of a binary token so that its value
// fits in int64.
const MaxTokenBits = 62
