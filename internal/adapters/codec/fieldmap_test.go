package codec_test

import (
	"testing"

	"github.com/DanielPopoola/pagseguro-go/internal/adapters/codec"
	"github.com/DanielPopoola/pagseguro-go/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMap(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		m := codec.NewFieldMap()
		m.Set("plan", "P1")
		m.Set("sender.email", "a@b.com")
		m.Set("items.0.id", "1")

		assert.Equal(t, []string{"plan", "sender.email", "items.0.id"}, m.Keys())
		assert.Equal(t, 3, m.Len())
	})

	t.Run("overwrites without duplicating the key", func(t *testing.T) {
		m := codec.NewFieldMap()
		m.Set("a", "1")
		m.Set("b", "2")
		m.Set("a", "3")

		assert.Equal(t, []string{"a", "b"}, m.Keys())
		v, ok := m.Get("a")
		require.True(t, ok)
		assert.Equal(t, "3", v)
	})

	t.Run("skips empty optional values", func(t *testing.T) {
		m := codec.NewFieldMap()
		m.SetOptional("reference", "")

		_, ok := m.Get("reference")
		assert.False(t, ok)
		assert.Zero(t, m.Len())
	})

	t.Run("encodes form body in ISO-8859-1", func(t *testing.T) {
		m := codec.NewFieldMap()
		m.Set("sender.name", "João da Silva")
		m.Set("redirectURL", "https://a.com/?x=1&y=2")

		body, err := m.Encode()

		require.NoError(t, err)
		assert.Equal(t,
			"sender.name=Jo%E3o+da+Silva&redirectURL=https%3A%2F%2Fa.com%2F%3Fx%3D1%26y%3D2",
			string(body))
	})

	t.Run("rejects characters outside ISO-8859-1", func(t *testing.T) {
		m := codec.NewFieldMap()
		m.Set("sender.name", "Zoë 😀")

		_, err := m.Encode()

		require.Error(t, err)
		vErr, ok := domain.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "sender.name", vErr.Field)
	})

	t.Run("redacts sensitive values in debug output", func(t *testing.T) {
		m := codec.NewFieldMap()
		m.Set("plan", "P1")
		m.Set("paymentMethod.creditCard.token", "secret")

		assert.Equal(t, "{plan=P1, paymentMethod.creditCard.token=***}",
			m.Redacted("paymentMethod.creditCard.token"))
		assert.Equal(t, "{plan=P1, paymentMethod.creditCard.token=secret}", m.String())
	})
}
