package rules

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/goliatone/go-validate/pkg/constraints"
)

// Built-in validator names. Only `required` rejects empty input; every other
// built-in passes nil and empty values through so that presence stays the
// sole concern of `required` and combining it with shape validators never
// double-reports emptiness.
const (
	RuleRequired  = "required"
	RuleSize      = "size"
	RuleMin       = "min"
	RuleMax       = "max"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleEmail     = "email"
	RulePattern   = "pattern"
	RuleURL       = "url"
)

func builtinFactories() []Factory {
	return []Factory{
		NewFactory(RuleRequired, createRequired),
		NewFactory(RuleSize, createSize),
		NewFactory(RuleMin, createMin),
		NewFactory(RuleMax, createMax),
		NewFactory(RuleMinLength, createMinLength),
		NewFactory(RuleMaxLength, createMaxLength),
		NewFactory(RuleEmail, createEmail),
		NewFactory(RulePattern, createPattern),
		NewFactory(RuleURL, createURL),
	}
}

func createRequired(cfg constraints.Config) ([]Func, error) {
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return Fail(RuleRequired, cfg)
		}
		return nil
	}}, nil
}

func createSize(cfg constraints.Config) ([]Func, error) {
	min, err := numberParam(cfg, "min")
	if err != nil {
		return nil, err
	}
	max, err := numberParam(cfg, "max")
	if err != nil {
		return nil, err
	}
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		magnitude, ok := sizeOf(value)
		if !ok {
			return nil
		}
		if magnitude < min || magnitude > max {
			return Fail(RuleSize, cfg)
		}
		return nil
	}}, nil
}

func createMin(cfg constraints.Config) ([]Func, error) {
	min, err := numberParam(cfg, "min")
	if err != nil {
		return nil, err
	}
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		number, ok := toFloat(value)
		if !ok {
			return nil
		}
		if number < min {
			return Fail(RuleMin, cfg)
		}
		return nil
	}}, nil
}

func createMax(cfg constraints.Config) ([]Func, error) {
	max, err := numberParam(cfg, "max")
	if err != nil {
		return nil, err
	}
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		number, ok := toFloat(value)
		if !ok {
			return nil
		}
		if number > max {
			return Fail(RuleMax, cfg)
		}
		return nil
	}}, nil
}

func createMinLength(cfg constraints.Config) ([]Func, error) {
	min, err := numberParam(cfg, "minLength")
	if err != nil {
		return nil, err
	}
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		length, ok := lengthOf(value)
		if !ok {
			return nil
		}
		if float64(length) < min {
			return Fail(RuleMinLength, cfg)
		}
		return nil
	}}, nil
}

func createMaxLength(cfg constraints.Config) ([]Func, error) {
	max, err := numberParam(cfg, "maxLength")
	if err != nil {
		return nil, err
	}
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		length, ok := lengthOf(value)
		if !ok {
			return nil
		}
		if float64(length) > max {
			return Fail(RuleMaxLength, cfg)
		}
		return nil
	}}, nil
}

func createEmail(cfg constraints.Config) ([]Func, error) {
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		text, ok := value.(string)
		if !ok || !isEmailAddress(text) {
			return Fail(RuleEmail, cfg)
		}
		return nil
	}}, nil
}

func createPattern(cfg constraints.Config) ([]Func, error) {
	expr, ok := cfg["value"].(string)
	if !ok || expr == "" {
		return nil, fmt.Errorf("config key %q must be a regular expression string", "value")
	}
	// Full-match semantics: the expression must consume the whole value.
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("config key %q: %w", "value", err)
	}
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		text, ok := value.(string)
		if !ok {
			text = fmt.Sprintf("%v", value)
		}
		if !re.MatchString(text) {
			return Fail(RulePattern, cfg)
		}
		return nil
	}}, nil
}

func createURL(cfg constraints.Config) ([]Func, error) {
	return []Func{func(value any) Errors {
		if isEmpty(value) {
			return nil
		}
		text, ok := value.(string)
		if !ok || !isWebURL(text) {
			return Fail(RuleURL, cfg)
		}
		return nil
	}}, nil
}

// isEmpty reports the values `required` rejects: nil and the empty string.
// Whitespace-only strings are deliberately not empty; trimming is a policy
// the caller can layer on top.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return text == ""
	}
	return false
}

// numberParam extracts a required numeric configuration key, accepting the
// numeric types JSON and YAML decoders produce.
func numberParam(cfg constraints.Config, key string) (float64, error) {
	raw, ok := cfg[key]
	if !ok {
		return 0, fmt.Errorf("config key %q is required", key)
	}
	number, ok := toFloat(raw)
	if !ok {
		return 0, fmt.Errorf("config key %q must be numeric, got %T", key, raw)
	}
	return number, nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// sizeOf measures a value for the `size` rule: string length for text,
// numeric magnitude for numbers. Other kinds are not size-measurable.
func sizeOf(value any) (float64, bool) {
	if text, ok := value.(string); ok {
		return float64(len([]rune(text))), true
	}
	return toFloat(value)
}

// lengthOf measures strings, slices, arrays, and maps for the length rules.
func lengthOf(value any) (int, bool) {
	if text, ok := value.(string); ok {
		return len([]rune(text)), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func isEmailAddress(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	domain := value[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

func isWebURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
