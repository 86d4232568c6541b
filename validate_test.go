package validate_test

import (
	"testing"

	validate "github.com/goliatone/go-validate"
)

func TestFacadeRoundTrip(t *testing.T) {
	eng := validate.New(validate.WithConstraints(validate.Spec{
		"Person": {
			"firstName": {
				"required": {"message": "First name is required."},
			},
		},
	}))

	errs, err := eng.Validate("Person", "firstName", "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if errs.Message("required") != "First name is required." {
		t.Fatalf("unexpected errors %v", errs)
	}

	errs, err = eng.Validate("Person", "firstName", "John")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if errs != nil {
		t.Fatalf("expected pass, got %v", errs)
	}
}

func TestFacadeCustomFactory(t *testing.T) {
	eng := validate.New(
		validate.WithConstraints(validate.Spec{
			"Doc": {
				"body": {"nonEmptyTrimmed": {"message": "body is blank"}},
			},
		}),
		validate.WithFactories(validate.NewFactory("nonEmptyTrimmed", func(cfg validate.Config) ([]validate.Func, error) {
			return []validate.Func{func(value any) validate.Errors {
				text, _ := value.(string)
				if len(text) > 0 && len([]rune(text)) == countSpaces(text) {
					return validate.Errors{"nonEmptyTrimmed": {"message": cfg.Message()}}
				}
				return nil
			}}, nil
		})),
	)

	errs, err := eng.Validate("Doc", "body", "   ")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if errs == nil {
		t.Fatal("expected whitespace-only body to fail")
	}
}

func countSpaces(text string) int {
	count := 0
	for _, r := range text {
		if r == ' ' {
			count++
		}
	}
	return count
}

func TestCombineExported(t *testing.T) {
	fail := validate.Func(func(any) validate.Errors {
		return validate.Errors{"a": {"message": "nope"}}
	})
	pass := validate.Func(func(any) validate.Errors { return nil })

	combined := validate.Combine([]validate.Func{fail, pass})
	errs := combined("x")
	if len(errs) != 1 || errs.Message("a") != "nope" {
		t.Fatalf("unexpected combination result %v", errs)
	}
}
