// Package config provides validated configuration structures for logging and
// RSA key generation.

package config
