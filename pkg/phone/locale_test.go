package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/phone"
)

func TestNewLocale(t *testing.T) {
	t.Run("no identifiers yields any", func(t *testing.T) {
		assert.True(t, phone.NewLocale().IsAny())
		assert.Nil(t, phone.NewLocale().IDs())
	})

	t.Run("empty and any identifiers yield any", func(t *testing.T) {
		assert.True(t, phone.NewLocale("").IsAny())
		assert.True(t, phone.NewLocale("  ").IsAny())
		assert.True(t, phone.NewLocale("any").IsAny())
		assert.True(t, phone.NewLocale("en-US", "any").IsAny())
	})

	t.Run("keeps order and drops duplicates", func(t *testing.T) {
		l := phone.NewLocale("en-US", " en-GB ", "en-US", "")
		assert.False(t, l.IsAny())
		assert.Equal(t, []string{"en-US", "en-GB"}, l.IDs())
		assert.Equal(t, "en-US,en-GB", l.String())
	})

	t.Run("ids are copied", func(t *testing.T) {
		l := phone.NewLocale("en-US")
		ids := l.IDs()
		ids[0] = "xx-XX"
		assert.Equal(t, []string{"en-US"}, l.IDs())
	})

	t.Run("zero value is any", func(t *testing.T) {
		var l phone.Locale
		assert.True(t, l.IsAny())
		assert.Equal(t, "any", l.String())
		assert.Equal(t, phone.Any, l)
	})
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"en-US", []string{"en-US"}},
		{"en-US,en-GB", []string{"en-US", "en-GB"}},
		{"en-US en-GB", []string{"en-US", "en-GB"}},
		{" en-US , en-GB ,", []string{"en-US", "en-GB"}},
		{"", nil},
		{"any", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.ParseLocale(tt.in).IDs())
		})
	}
}
