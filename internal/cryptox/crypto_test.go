package cryptox

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt-16byt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	require.Len(t, key1, 32)
	assert.Equal(t, key1, key2)
}

func TestDeriveMasterKey_DifferentInputs(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveMasterKey(password, []byte("salt-1"))
	key2 := DeriveMasterKey(password, []byte("salt-2"))
	key3 := DeriveMasterKey([]byte("other-password"), []byte("salt-1"))

	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, key1, key3)
}

func TestMakeVerifier(t *testing.T) {
	key := []byte("master-key")
	want := sha256.Sum256(key)

	got := MakeVerifier(key)
	assert.Equal(t, want[:], got)
	assert.NotEqual(t, key, got)
}
