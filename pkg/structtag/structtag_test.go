package structtag_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/structtag"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

type address struct {
	City  string `json:"city" validate:"required"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

type signup struct {
	Email     string  `json:"email" validate:"required,email_domain=example.com example.org"`
	Mobile    string  `json:"mobile" validate:"mobile=en-US en-CA"`
	Strict    string  `json:"strict_mobile,omitempty" validate:"omitempty,mobile_strict=en-GB"`
	Amount    string  `json:"amount" validate:"currency"`
	Price     string  `json:"price" validate:"omitempty,currency=EUR"`
	Card      string  `json:"card" validate:"omitempty,card"`
	Birthday  string  `json:"birthday" validate:"omitempty,isodate"`
	CreatedAt string  `json:"created_at" validate:"omitempty,isodatetime"`
	OpensAt   string  `json:"opens_at" validate:"omitempty,isotime"`
	Callback  string  `json:"callback" validate:"omitempty,https_url"`
	Address   address `json:"address"`
	Internal  string  `json:"-" validate:"omitempty,uuid"`
	NoJSON    string  `validate:"omitempty,len=3"`
}

func validSignup() signup {
	return signup{
		Email:     "ann@example.org",
		Mobile:    "+1 415-555-2671",
		Strict:    "+447911123456",
		Amount:    "$1,234.56",
		Price:     "€1,234.56",
		Card:      "4532 0151 1283 0366",
		Birthday:  "2000-02-29",
		CreatedAt: "2024-01-15T10:30:00Z",
		OpensAt:   "09:00:00",
		Callback:  "https://example.com/cb",
		Address:   address{City: "Boston"},
	}
}

func TestNew(t *testing.T) {
	v, err := structtag.New()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.NotPanics(t, func() { structtag.MustNew() })
}

func TestStruct(t *testing.T) {
	v := structtag.MustNew()

	t.Run("valid struct", func(t *testing.T) {
		s := validSignup()
		assert.NoError(t, v.Struct(s))
		assert.NoError(t, v.Struct(&s))
	})

	t.Run("collects failures with json names", func(t *testing.T) {
		s := validSignup()
		s.Email = "ann@gmail.com"
		s.Mobile = "+447911123456"
		s.Strict = "07911123456"
		s.Amount = "$1,23.45"
		s.Price = "€1,234.5"
		s.Card = "4532015112830367"
		s.Birthday = "2001-02-29"
		s.CreatedAt = "2024-01-15 10:30"
		s.OpensAt = "25:00:00"
		s.Callback = "http://example.com"
		s.Address = address{Phone: "12345"}
		s.NoJSON = "ab"

		err := v.Struct(s)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)

		expected := map[string]string{
			"email":         "validation.email_domain",
			"mobile":        "validation.mobile_phone",
			"strict_mobile": "validation.mobile_phone",
			"amount":        "validation.currency",
			"price":         "validation.currency",
			"card":          "validation.credit_card",
			"birthday":      "validation.date",
			"created_at":    "validation.datetime",
			"opens_at":      "validation.time",
			"callback":      "validation.https_url",
			"address.city":  "validation.required",
			"address.phone": "validation.phone",
			"NoJSON":        "validation.len",
		}
		assert.ElementsMatch(t, keys(expected), verrs.Fields())
		for field, key := range expected {
			errs := verrs.GetErrors(field)
			require.Len(t, errs, 1, field)
			assert.Equal(t, key, errs[0].TranslationKey, field)
		}

		assert.Equal(t, "example.com, example.org", verrs.GetErrors("email")[0].TranslationValues["domains"])
		assert.Equal(t, "en-US,en-CA", verrs.GetErrors("mobile")[0].TranslationValues["locale"])
		assert.Equal(t, "3", verrs.GetErrors("NoJSON")[0].TranslationValues["param"])
	})

	t.Run("skipped json field is still validated", func(t *testing.T) {
		s := validSignup()
		s.Internal = "not-a-uuid"

		verrs := validator.ExtractValidationErrors(v.Struct(s))
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.uuid", verrs[0].TranslationKey)
	})

	t.Run("invalid input", func(t *testing.T) {
		err := v.Struct(nil)
		require.ErrorIs(t, err, structtag.ErrInvalidInput)
		assert.False(t, validator.IsValidationError(err))

		assert.ErrorIs(t, v.Struct("not a struct"), structtag.ErrInvalidInput)
	})
}

func TestVar(t *testing.T) {
	v := structtag.MustNew()

	tests := []struct {
		value any
		tag   string
		valid bool
	}{
		{"+14155552671", "mobile=en-US", true},
		{"+14155552671", "mobile=en-GB", false},
		{"+14155552671", "mobile", true},
		{"+14155552671", "mobile=xx-XX", false},
		{"4155552671", "mobile_strict=en-US", false},
		{"+14155552671", "phone", true},
		{14155552671, "phone", false},
		{"¥1,234", "currency=JPY", true},
		{"¥1,234.50", "currency=JPY", false},
		{"$10", "currency=XYZ", false},
		{"$10,123.45", "currency", true},
		{"6011111111111117", "card", true},
		{"2024-02-29", "isodate", true},
		{"2023-02-29", "isodate", false},
		{"2024-02-29T00:00:00+01:00", "isodatetime", true},
		{"23:59:59", "isotime", true},
		{"https://example.com", "https_url", true},
		{"user@EXAMPLE.com", "email_domain=example.com", true},
		{"user@example.com", "email_domain", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, tt.tag)
		if tt.valid {
			assert.NoError(t, err, "%v %s", tt.value, tt.tag)
			continue
		}
		require.Error(t, err, "%v %s", tt.value, tt.tag)
		assert.True(t, validator.IsValidationError(err), "%v %s", tt.value, tt.tag)
	}
}

func TestConcurrentCurrencyTags(t *testing.T) {
	t.Parallel()

	v := structtag.MustNew()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tag := range []string{"currency=EUR", "currency=JPY", "currency=GBP", "currency"} {
				assert.NoError(t, v.Var("1,000", tag))
			}
		}()
	}
	wg.Wait()
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
