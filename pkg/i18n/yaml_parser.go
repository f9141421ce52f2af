package i18n

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes one language file into flat dot-separated keys, so
//
//	validation:
//	  email: "..."
//
// becomes "validation.email".
func parseYAML(content []byte) (map[string]string, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	out := make(map[string]string)
	if err := flatten("", data, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, m map[string]any, out map[string]string) error {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			out[key] = val
		case int, float64, bool:
			out[key] = fmt.Sprint(val)
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s has type %T", ErrInvalidTranslationKey, strconv.Quote(key), v)
		}
	}
	return nil
}
