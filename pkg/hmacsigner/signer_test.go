package hmacsigner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionkit/sessionkit/pkg/hmacsigner"
)

var testKey = []byte("test-signing-key-32-characters!!")

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty key", func(t *testing.T) {
		_, err := hmacsigner.New(nil)
		assert.ErrorIs(t, err, hmacsigner.ErrNoKey)
	})

	t.Run("rejects short key", func(t *testing.T) {
		_, err := hmacsigner.New([]byte("short"))
		assert.ErrorIs(t, err, hmacsigner.ErrKeyTooShort)
	})

	t.Run("copies the key", func(t *testing.T) {
		key := append([]byte(nil), testKey...)
		signer, err := hmacsigner.New(key)
		require.NoError(t, err)

		before, err := signer.Sign(context.Background(), []byte("payload"))
		require.NoError(t, err)

		// Mutating the caller's buffer must not affect signatures.
		key[0] ^= 0xFF
		after, err := signer.Sign(context.Background(), []byte("payload"))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestSigner_Sign(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("deterministic", func(t *testing.T) {
		signer, err := hmacsigner.New(testKey)
		require.NoError(t, err)

		first, err := signer.Sign(ctx, []byte("payload"))
		require.NoError(t, err)
		second, err := signer.Sign(ctx, []byte("payload"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, first, 32) // SHA-256
	})

	t.Run("different payloads differ", func(t *testing.T) {
		signer, err := hmacsigner.New(testKey)
		require.NoError(t, err)

		a, err := signer.Sign(ctx, []byte("payload-a"))
		require.NoError(t, err)
		b, err := signer.Sign(ctx, []byte("payload-b"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("different keys differ", func(t *testing.T) {
		s1, err := hmacsigner.New(testKey)
		require.NoError(t, err)
		s2, err := hmacsigner.New([]byte("other-signing-key-32-characters!"))
		require.NoError(t, err)

		a, err := s1.Sign(ctx, []byte("payload"))
		require.NoError(t, err)
		b, err := s2.Sign(ctx, []byte("payload"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("sha512 option", func(t *testing.T) {
		signer, err := hmacsigner.New(testKey, hmacsigner.WithSHA512())
		require.NoError(t, err)

		tag, err := signer.Sign(ctx, []byte("payload"))
		require.NoError(t, err)
		assert.Len(t, tag, 64)
	})

	t.Run("empty payload signs", func(t *testing.T) {
		signer, err := hmacsigner.New(testKey)
		require.NoError(t, err)

		tag, err := signer.Sign(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, tag, 32)
	})
}
