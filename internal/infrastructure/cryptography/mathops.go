package cryptography

import "fmt"

// isPrime reports whether n is prime by deterministic trial division:
// multiples of 2 and 3 are rejected up front, remaining candidates are tested
// against divisors of the form 6k±1 up to the square root of n.
func isPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// gcd returns the greatest common divisor of two non-negative integers.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse returns the unique x in [0, m) with a*x = 1 (mod m), computed by
// the iterative extended Euclidean algorithm. It returns an error when a and m
// are not coprime, in which case no inverse exists.
func modInverse(a, m int64) (int64, error) {
	if m < 1 {
		return 0, fmt.Errorf("modulus must be positive, got %d", m)
	}
	if m == 1 {
		return 0, nil
	}
	if g := gcd(a%m, m); g != 1 {
		return 0, fmt.Errorf("%d has no inverse modulo %d: gcd is %d", a, m, g)
	}

	m0 := m
	x0, x1 := int64(0), int64(1)
	for a > 1 {
		quotient := a / m
		a, m = m, a%m
		x0, x1 = x1-quotient*x0, x0
	}
	if x1 < 0 {
		x1 += m0
	}
	return x1, nil
}

// modPow returns base^exp mod mod by square-and-multiply, keeping every
// intermediate product below mod squared. modPow(b, 0, m) is 1 for m > 1 and
// modPow(b, e, 1) is 0.
func modPow(base, exp, mod int64) int64 {
	if mod == 1 {
		return 0
	}

	base %= mod
	if base < 0 {
		base += mod
	}

	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}
	return result
}
