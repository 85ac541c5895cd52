package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const KEY_BITS = 2048

func TestSignatureAndVerify(t *testing.T) {
	sk, pk := GenerateKeyPair(KEY_BITS)

	message := []byte("Hello World!")
	sig, err := Sign(message, sk)
	assert.Nil(t, err)
	valid := Verify(message, pk, sig)
	assert.True(t, valid)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	sk, pk := GenerateKeyPair(KEY_BITS)

	message := []byte("pay alice 10")
	sig, err := Sign(message, sk)
	assert.Nil(t, err)
	assert.False(t, Verify([]byte("pay alice 99"), pk, sig))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	sk, pk := GenerateKeyPair(KEY_BITS)

	message := []byte("Hello World!")
	sig, err := Sign(message, sk)
	assert.Nil(t, err)
	sig[0] ^= 0xff
	assert.False(t, Verify(message, pk, sig))
}

func TestPublicKeyRoundTrip(t *testing.T) {
	_, pk := GenerateKeyPair(KEY_BITS)

	restored := BytesToPublicKey(PublicKeyToBytes(pk))
	assert.NotNil(t, restored)
	assert.Equal(t, pk.N, restored.N)
	assert.Equal(t, pk.E, restored.E)
}

func TestBytesToPublicKeyRejectsGarbage(t *testing.T) {
	assert.Nil(t, BytesToPublicKey([]byte("not a key")))
}
