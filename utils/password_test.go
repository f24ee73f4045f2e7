package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("ali_2001")
	assert.NoError(t, err)
	assert.NotEqual(t, "ali_2001", hash)

	assert.True(t, CheckPasswordHash("ali_2001", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("ali_2001", "not-a-hash"))
}
