package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHashers() map[string]Hasher {
	return map[string]Hasher{
		"bcrypt":   NewBcryptHasher(bcrypt.MinCost),
		"argon2id": &Argon2Hasher{time: 1, memory: 8 * 1024, threads: 1, keyLen: 32, saltLen: 16},
	}
}

func TestHasher_RoundTrip(t *testing.T) {
	for name, h := range testHashers() {
		t.Run(name, func(t *testing.T) {
			hash, err := h.Hash("s3cret")
			require.NoError(t, err)
			assert.NotEqual(t, "s3cret", hash)

			assert.True(t, h.Compare("s3cret", hash))
			assert.False(t, h.Compare("s3cret!", hash))
			assert.False(t, h.Compare("", hash))
		})
	}
}

func TestHasher_Salted(t *testing.T) {
	for name, h := range testHashers() {
		t.Run(name, func(t *testing.T) {
			a, err := h.Hash("same")
			require.NoError(t, err)
			b, err := h.Hash("same")
			require.NoError(t, err)
			assert.NotEqual(t, a, b)
		})
	}
}

func TestHasher_GarbageHash(t *testing.T) {
	for name, h := range testHashers() {
		t.Run(name, func(t *testing.T) {
			assert.False(t, h.Compare("x", ""))
			assert.False(t, h.Compare("x", "not-a-hash"))
			assert.False(t, h.Compare("x", "$argon2id$v=19$m=1,t=1,p=1$$"))
		})
	}
}

func TestArgon2Hasher_Format(t *testing.T) {
	h := &Argon2Hasher{time: 1, memory: 8 * 1024, threads: 1, keyLen: 32, saltLen: 16}
	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"), hash)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, &BcryptHasher{}, h)

	h, err = NewHasher("argon2id")
	require.NoError(t, err)
	assert.IsType(t, &Argon2Hasher{}, h)

	_, err = NewHasher("md5")
	assert.Error(t, err)
}
