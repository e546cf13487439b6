package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo/config"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	password := "pw123456"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashProducesFreshSalt(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	first, err := hasher.Hash("pw123456")
	assert.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	assert.NoError(t, err)

	// Same plaintext, different salts, different digests.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123456", first))
	assert.True(t, hasher.Check("pw123456", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})
	password := "pw123456"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong-password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DefaultCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("pw123456")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("pw123456", hash))
}
