package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/currency"
)

func TestForCode(t *testing.T) {
	t.Run("us dollar", func(t *testing.T) {
		opts, err := currency.ForCode("USD")
		require.NoError(t, err)
		assert.Equal(t, currency.DefaultOptions(), opts)
	})

	t.Run("code is case insensitive", func(t *testing.T) {
		opts, err := currency.ForCode(" eur ")
		require.NoError(t, err)
		assert.Equal(t, "€", opts.Symbol)
		assert.Equal(t, []int{2}, opts.DigitsAfterDecimal)
	})

	t.Run("yen has no minor units", func(t *testing.T) {
		opts, err := currency.ForCode("JPY")
		require.NoError(t, err)
		assert.Equal(t, "¥", opts.Symbol)
		assert.False(t, opts.AllowDecimal)

		g, err := currency.Compile(currency.WithOptions(opts))
		require.NoError(t, err)
		assert.True(t, g.Match("¥1,234"))
		assert.False(t, g.Match("¥1,234.50"))
	})

	t.Run("dinar has three minor digits", func(t *testing.T) {
		opts, err := currency.ForCode("KWD")
		require.NoError(t, err)
		assert.Equal(t, []int{3}, opts.DigitsAfterDecimal)
	})

	t.Run("options apply last", func(t *testing.T) {
		opts, err := currency.ForCode("EUR",
			currency.WithThousandsSeparator('.'),
			currency.WithDecimalSeparator(','),
			currency.WithSpaceAfterSymbol(true),
		)
		require.NoError(t, err)
		assert.True(t, currency.IsCurrency("€ 1.234,56", currency.WithOptions(opts)))
	})

	t.Run("unknown codes", func(t *testing.T) {
		for _, code := range []string{"", "US", "XYZ", "dollar"} {
			_, err := currency.ForCode(code)
			assert.ErrorIs(t, err, currency.ErrUnknownCurrency, code)
		}
	})
}
