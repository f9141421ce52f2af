package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestValidationError(t *testing.T) {
	t.Run("error message includes field", func(t *testing.T) {
		err := validator.NewValidationError("email", "is required")
		assert.Equal(t, "email: is required", err.Error())
		assert.Empty(t, err.TranslationKey)
	})

	t.Run("error message without field", func(t *testing.T) {
		err := validator.NewValidationError("", "form is empty")
		assert.Equal(t, "form is empty", err.Error())
	})

	t.Run("matches validation failed sentinel", func(t *testing.T) {
		var err error = validator.NewValidationError("phone", "invalid")
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.NotErrorIs(t, err, validator.ErrInvalidFormat)
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.True(t, errs.IsEmpty())
		assert.Equal(t, "validation failed", errs.Error())
		assert.Nil(t, errs.Fields())
	})

	t.Run("formats every error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.NewValidationError("email", "is required"))
		errs.Add(validator.NewValidationError("password", "too short"))

		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
		assert.False(t, errs.IsEmpty())
	})

	t.Run("lookup by field", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.NewValidationError("password", "too short"))
		errs.Add(validator.NewValidationError("email", "is required"))
		errs.Add(validator.NewValidationError("password", "missing digit"))

		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("name"))
		assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
		assert.Nil(t, errs.Get("name"))
		assert.Len(t, errs.GetErrors("password"), 2)
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
	})
}

func TestApply(t *testing.T) {
	pass := validator.Rule{
		Check: func() bool { return true },
		Error: validator.NewValidationError("name", "ok"),
	}
	fail := func(field, msg string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.NewValidationError(field, msg),
		}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(fail("email", "is required"), pass, fail("email", "too long"))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"is required", "too long"}, verrs.Get("email"))
		assert.False(t, verrs.Has("name"))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("from wrapped collection", func(t *testing.T) {
		errs := validator.ValidationErrors{validator.NewValidationError("email", "is required")}
		wrapped := fmt.Errorf("signup: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("email"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("from single error", func(t *testing.T) {
		err := fmt.Errorf("profile: %w", validator.NewValidationError("age", "too young"))

		extracted := validator.ExtractValidationErrors(err)
		require.Len(t, extracted, 1)
		assert.Equal(t, "age", extracted[0].Field)
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("regular error")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
