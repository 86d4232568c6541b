// Package prompt runs an interactive form for a constrained type: one text
// prompt per field, re-asking until the field's composed validator accepts
// the input. It backs the validate-cli binary and doubles as a reference for
// adapting engine validators to prompt-style frameworks.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-validate/pkg/engine"
	"github.com/goliatone/go-validate/pkg/rules"
)

// Validator adapts a composed validation function to the survey validator
// contract: the first failing message (by sorted validator name) becomes the
// prompt's error line.
func Validator(fn rules.Func) survey.Validator {
	return func(answer any) error {
		if fn == nil {
			return nil
		}
		errs := fn(answer)
		if errs == nil {
			return nil
		}
		for _, name := range errs.Keys() {
			if msg := errs.Message(name); msg != "" {
				return errors.New(msg)
			}
		}
		return fmt.Errorf("value failed validation: %v", errs.Keys())
	}
}

// Runner drives an interactive validation session against one engine.
type Runner struct {
	engine *engine.Engine
	driver Driver
}

// NewRunner builds a Runner; a nil driver defaults to the survey-backed one.
func NewRunner(eng *engine.Engine, driver Driver) (*Runner, error) {
	if eng == nil {
		return nil, errors.New("prompt: engine is required")
	}
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Runner{engine: eng, driver: driver}, nil
}

// Run prompts for every constrained field of typeName in sorted order and
// returns the accepted values. Each prompt re-asks until the field's
// validator passes, so the result always satisfies the constraint spec.
func (r *Runner) Run(ctx context.Context, typeName string) (map[string]string, error) {
	fields := r.engine.Constraints().FieldNames(typeName)
	if len(fields) == 0 {
		return nil, fmt.Errorf("prompt: type %q has no constrained fields", typeName)
	}
	sort.Strings(fields)

	values := make(map[string]string, len(fields))
	for _, field := range fields {
		validator, err := r.engine.FieldValidator(typeName, field)
		if err != nil {
			return nil, err
		}
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   field + ":",
			Validator: Validator(validator),
		})
		if err != nil {
			return nil, err
		}
		values[field] = answer
	}
	return values, nil
}
