package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFileRoundTrip(t *testing.T) {
	fPath := filepath.Join(t.TempDir(), "wallet.pem")

	key, err := ParseKeyFile(fPath, true, KEY_BITS)
	assert.Nil(t, err)
	assert.NotNil(t, key)

	restored, err := ParseKeyFile(fPath, false, KEY_BITS)
	assert.Nil(t, err)
	assert.NotNil(t, restored)

	// The restored key must still produce verifiable signatures.
	message := []byte("spend it all")
	sig, err := Sign(message, restored)
	assert.Nil(t, err)
	assert.True(t, Verify(message, &key.PublicKey, sig))
}

func TestParseKeyFileMissingPath(t *testing.T) {
	_, err := ParseKeyFile("", false, KEY_BITS)
	assert.NotNil(t, err)
}
