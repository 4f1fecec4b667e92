package secrets

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBox(t *testing.T) *Box {
	t.Helper()
	key := make([]byte, 32)
	copy(key, "0123456789abcdef0123456789abcdef")
	box, err := NewBoxFromKey(key)
	require.NoError(t, err)
	return box
}

func TestBox_RoundTrip(t *testing.T) {
	box := testBox(t)

	sealed, err := box.Encrypt("ya29.a0AfB_secret-access-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "secret")

	plain, err := box.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "ya29.a0AfB_secret-access-token", plain)
}

func TestBox_SealIsRandomised(t *testing.T) {
	box := testBox(t)

	a, err := box.Encrypt("same plaintext")
	require.NoError(t, err)
	b, err := box.Encrypt("same plaintext")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBox_RejectsTamperedCiphertext(t *testing.T) {
	box := testBox(t)

	sealed, err := box.Encrypt("payload")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	_, err = box.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrCiphertext)
}

func TestBox_RejectsGarbage(t *testing.T) {
	box := testBox(t)

	for _, input := range []string{"", "not base64 at all!!!", base64.StdEncoding.EncodeToString([]byte("short"))} {
		_, err := box.Decrypt(input)
		assert.ErrorIs(t, err, ErrCiphertext, "input %q", input)
	}
}

func TestBox_RejectsWrongKey(t *testing.T) {
	box := testBox(t)
	sealed, err := box.Encrypt("payload")
	require.NoError(t, err)

	otherKey := make([]byte, 32)
	copy(otherKey, "ffffffffffffffffffffffffffffffff")
	other, err := NewBoxFromKey(otherKey)
	require.NoError(t, err)

	_, err = other.Decrypt(sealed)
	assert.ErrorIs(t, err, ErrCiphertext)
}

func TestNewBox_KeyValidation(t *testing.T) {
	_, err := NewBoxFromKey([]byte("too short"))
	assert.ErrorIs(t, err, ErrKeySize)

	_, err = NewBox("%%% not base64 %%%")
	assert.Error(t, err)

	_, err = NewBox(base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 16))))
	assert.ErrorIs(t, err, ErrKeySize)

	_, err = NewBox(base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32))))
	assert.NoError(t, err)
}
