package aead_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionkit/sessionkit/pkg/aead"
)

var (
	keyA = []byte("test-encryption-key-a-32-chars!!")
	keyB = []byte("test-encryption-key-b-32-chars!!")
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects no keys", func(t *testing.T) {
		_, err := aead.New(nil)
		assert.ErrorIs(t, err, aead.ErrNoKeys)
	})

	t.Run("rejects short key", func(t *testing.T) {
		_, err := aead.New([][]byte{keyA, []byte("short")})
		assert.ErrorIs(t, err, aead.ErrKeyTooShort)
	})
}

func TestCrypto_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	suites := map[string]aead.Suite{
		"aes-gcm":           aead.SuiteAESGCM,
		"chacha20-poly1305": aead.SuiteChaCha20Poly1305,
	}

	for name, suite := range suites {
		t.Run(name, func(t *testing.T) {
			crypto, err := aead.New([][]byte{keyA}, aead.WithSuite(suite))
			require.NoError(t, err)

			plaintext := []byte("user=alice&role=admin")
			sealed, err := crypto.Encrypt(ctx, plaintext)
			require.NoError(t, err)
			assert.NotContains(t, string(sealed), "alice")

			opened, err := crypto.Decrypt(ctx, sealed)
			require.NoError(t, err)
			assert.Equal(t, plaintext, opened)
		})

		t.Run(name+" empty plaintext", func(t *testing.T) {
			crypto, err := aead.New([][]byte{keyA}, aead.WithSuite(suite))
			require.NoError(t, err)

			sealed, err := crypto.Encrypt(ctx, nil)
			require.NoError(t, err)
			opened, err := crypto.Decrypt(ctx, sealed)
			require.NoError(t, err)
			assert.Empty(t, opened)
		})
	}

	t.Run("fresh nonce per call", func(t *testing.T) {
		crypto, err := aead.New([][]byte{keyA})
		require.NoError(t, err)

		first, err := crypto.Encrypt(ctx, []byte("same plaintext"))
		require.NoError(t, err)
		second, err := crypto.Encrypt(ctx, []byte("same plaintext"))
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestCrypto_KeyRotation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	old, err := aead.New([][]byte{keyB})
	require.NoError(t, err)
	sealed, err := old.Encrypt(ctx, []byte("sealed under the old key"))
	require.NoError(t, err)

	// New primary key, old key retained for rotation.
	rotated, err := aead.New([][]byte{keyA, keyB})
	require.NoError(t, err)

	opened, err := rotated.Decrypt(ctx, sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed under the old key"), opened)

	// Without the old key decryption fails.
	current, err := aead.New([][]byte{keyA})
	require.NoError(t, err)
	_, err = current.Decrypt(ctx, sealed)
	assert.ErrorIs(t, err, aead.ErrDecryptionFailed)
}

func TestCrypto_Decrypt_Invalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	crypto, err := aead.New([][]byte{keyA})
	require.NoError(t, err)

	t.Run("too short", func(t *testing.T) {
		_, err := crypto.Decrypt(ctx, []byte("tiny"))
		assert.ErrorIs(t, err, aead.ErrCiphertextTooShort)
	})

	t.Run("corrupted ciphertext", func(t *testing.T) {
		sealed, err := crypto.Encrypt(ctx, []byte("payload"))
		require.NoError(t, err)
		sealed[len(sealed)-1] ^= 0x01

		_, err = crypto.Decrypt(ctx, sealed)
		assert.ErrorIs(t, err, aead.ErrDecryptionFailed)
	})
}
