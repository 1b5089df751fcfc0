package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_InvalidCost_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero", 0, DefaultBcryptCost},
		{"below_min", bcrypt.MinCost - 1, DefaultBcryptCost},
		{"above_max", bcrypt.MaxCost + 1, DefaultBcryptCost},
		{"min", bcrypt.MinCost, bcrypt.MinCost},
		{"ten", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBcryptHasher(tt.cost).Cost())
		})
	}
}

func TestBcryptHasher_Hash_UsesConfiguredCost(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

// ハッシュは平文と異なり、同じ平文でもソルトにより毎回異なることを検証する。
func TestBcryptHasher_Hash_IsSaltedAndNotPlaintext(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", first)
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Compare_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	for _, candidate := range []string{"secret123", "secret1234", "Secret123", "", "wrong"} {
		ok, err := h.Compare(hash, candidate)
		require.NoError(t, err)
		assert.Equal(t, candidate == "secret123", ok, "candidate %q", candidate)
	}
}

func TestBcryptHasher_Compare_MalformedHash_ReturnsError(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Compare("plaintext-not-a-hash", "secret123")

	assert.False(t, ok)
	assert.Error(t, err)
}
