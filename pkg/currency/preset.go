package currency

import (
	"fmt"
	"strings"

	xcurrency "golang.org/x/text/currency"
)

// ForCode returns options for an ISO 4217 currency code: the CLDR narrow
// symbol and the standard number of fractional digits. Currencies without
// minor units, such as JPY, disallow decimals. Separators keep their
// defaults; opts are applied last.
func ForCode(code string, opts ...Option) (Options, error) {
	unit, err := xcurrency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	o := DefaultOptions()
	o.Symbol = fmt.Sprint(xcurrency.NarrowSymbol(unit))

	scale, _ := xcurrency.Standard.Rounding(unit)
	if scale > 0 {
		o.DigitsAfterDecimal = []int{scale}
	} else {
		o.AllowDecimal = false
		o.DigitsAfterDecimal = nil
	}

	for _, opt := range opts {
		opt(&o)
	}
	return o, nil
}
