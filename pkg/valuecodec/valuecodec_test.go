package valuecodec_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionkit/sessionkit/pkg/valuecodec"
)

func TestString(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	codec := valuecodec.String{}

	t.Run("round trip", func(t *testing.T) {
		for _, s := range []string{"", "alice", "with space", "a&b=c:d", "ünïcode 文字"} {
			data, err := codec.Serialize(ctx, s)
			require.NoError(t, err)

			got, err := codec.Deserialize(ctx, data)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("rejects non-string", func(t *testing.T) {
		_, err := codec.Serialize(ctx, 42)
		assert.ErrorIs(t, err, valuecodec.ErrUnsupportedType)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	codec := valuecodec.JSON{}

	t.Run("string round trip", func(t *testing.T) {
		data, err := codec.Serialize(ctx, "alice")
		require.NoError(t, err)
		got, err := codec.Deserialize(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, "alice", got)
	})

	t.Run("numbers come back as float64", func(t *testing.T) {
		data, err := codec.Serialize(ctx, 42)
		require.NoError(t, err)
		got, err := codec.Deserialize(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, float64(42), got)
	})

	t.Run("map round trip", func(t *testing.T) {
		data, err := codec.Serialize(ctx, map[string]any{"theme": "dark", "size": float64(14)})
		require.NoError(t, err)
		got, err := codec.Deserialize(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"theme": "dark", "size": float64(14)}, got)
	})

	t.Run("rejects unmarshalable", func(t *testing.T) {
		_, err := codec.Serialize(ctx, make(chan int))
		assert.Error(t, err)
	})

	t.Run("rejects invalid wrapper", func(t *testing.T) {
		_, err := codec.Deserialize(ctx, []byte("@@@not-base64@@@"))
		assert.Error(t, err)
	})
}

func TestGob(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	codec := valuecodec.Gob{}

	t.Run("preserves concrete types", func(t *testing.T) {
		for _, v := range []any{"alice", 42, true, 3.14} {
			data, err := codec.Serialize(ctx, v)
			require.NoError(t, err)
			got, err := codec.Deserialize(ctx, data)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("registered struct round trip", func(t *testing.T) {
		type cart struct {
			Items []string
			Total int
		}
		valuecodec.Register(cart{})

		data, err := codec.Serialize(ctx, cart{Items: []string{"a", "b"}, Total: 2})
		require.NoError(t, err)
		got, err := codec.Deserialize(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, cart{Items: []string{"a", "b"}, Total: 2}, got)
	})
}

// Serialized values are embedded in an '&'/'='-delimited payload; the wire
// form must never contain either byte.
func TestOutputDelimiterSafety(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	codecs := map[string]interface {
		Serialize(context.Context, any) ([]byte, error)
	}{
		"string": valuecodec.String{},
		"json":   valuecodec.JSON{},
		"gob":    valuecodec.Gob{},
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			data, err := codec.Serialize(ctx, "tricky &=& value == &")
			require.NoError(t, err)
			assert.NotContains(t, string(data), "&")
			assert.NotContains(t, string(data), "=")
		})
	}
}
