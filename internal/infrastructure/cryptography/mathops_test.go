//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveIsPrime is the reference oracle: plain trial division by every integer
// up to the square root.
func naiveIsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestIsPrime(t *testing.T) {
	t.Run("MatchesTrialDivision", func(t *testing.T) {
		for n := int64(0); n <= 100000; n++ {
			assert.Equal(t, naiveIsPrime(n), isPrime(n), "disagreement at n=%d", n)
		}
	})

	t.Run("AroundOneMillion", func(t *testing.T) {
		assert.True(t, isPrime(999983))
		assert.False(t, isPrime(999999))
		assert.False(t, isPrime(1000000))
		assert.False(t, isPrime(1000001)) // 101 * 9901
		assert.True(t, isPrime(1000003))
	})

	t.Run("SmallAndNegative", func(t *testing.T) {
		assert.False(t, isPrime(-7))
		assert.False(t, isPrime(0))
		assert.False(t, isPrime(1))
		assert.True(t, isPrime(2))
		assert.True(t, isPrime(3))
		assert.False(t, isPrime(4))
	})
}

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(6), gcd(12, 18))
	assert.Equal(t, int64(1), gcd(17, 3120))
	assert.Equal(t, int64(17), gcd(5304, 17)) // 5304 = (103-1)*(53-1)
	assert.Equal(t, int64(5), gcd(0, 5))
	assert.Equal(t, int64(5), gcd(5, 0))
}

func TestModInverse(t *testing.T) {
	t.Run("TextbookVector", func(t *testing.T) {
		inverse, err := modInverse(17, 3120)
		require.NoError(t, err)
		assert.Equal(t, int64(2753), inverse)
	})

	t.Run("ModulusOne", func(t *testing.T) {
		inverse, err := modInverse(42, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), inverse)
	})

	t.Run("NotCoprime", func(t *testing.T) {
		_, err := modInverse(4, 8)
		assert.Error(t, err)

		_, err = modInverse(65537, 65537*3)
		assert.Error(t, err)
	})

	t.Run("NonPositiveModulus", func(t *testing.T) {
		_, err := modInverse(3, 0)
		assert.Error(t, err)
	})

	t.Run("InverseProperty", func(t *testing.T) {
		cases := []struct{ a, m int64 }{
			{3, 7},
			{7, 26},
			{17, 3120},
			{65537, 3120},
			{65537, 2999999},
			{1, 97},
		}
		for _, c := range cases {
			inverse, err := modInverse(c.a, c.m)
			require.NoError(t, err, "a=%d m=%d", c.a, c.m)
			assert.GreaterOrEqual(t, inverse, int64(0))
			assert.Less(t, inverse, c.m)
			assert.Equal(t, int64(1), (c.a%c.m)*inverse%c.m, "a=%d m=%d", c.a, c.m)
		}
	})
}

func TestModPow(t *testing.T) {
	t.Run("ExponentZero", func(t *testing.T) {
		for _, base := range []int64{0, 1, 5, 123456} {
			for _, mod := range []int64{2, 97, 3233} {
				assert.Equal(t, int64(1), modPow(base, 0, mod), "base=%d mod=%d", base, mod)
			}
		}
	})

	t.Run("ModulusOne", func(t *testing.T) {
		assert.Equal(t, int64(0), modPow(7, 13, 1))
		assert.Equal(t, int64(0), modPow(0, 0, 1))
	})

	t.Run("KnownValues", func(t *testing.T) {
		assert.Equal(t, int64(24), modPow(2, 10, 1000))
		assert.Equal(t, int64(1), modPow(3, 4, 5))
		assert.Equal(t, int64(2790), modPow(65, 17, 3233))
		assert.Equal(t, int64(65), modPow(2790, 2753, 3233))
		assert.Equal(t, int64(3086), modPow(5, 17, 3233))
		assert.Equal(t, int64(1780), modPow(3000, 17, 3233))
	})

	t.Run("NegativeBaseNormalized", func(t *testing.T) {
		// -3 = 4 (mod 7), and 4^2 = 2 (mod 7).
		assert.Equal(t, int64(2), modPow(-3, 2, 7))
	})
}
