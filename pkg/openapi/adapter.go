package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-validate/pkg/constraints"
	"github.com/goliatone/go-validate/pkg/rules"
)

// Options configures constraint derivation.
type Options struct {
	// Types restricts derivation to the named component schemas. Empty
	// means every schema in the document.
	Types []string
}

// Constraints derives a constraint specification from the component schemas
// of an OpenAPI document: each schema becomes a type, each scalar property a
// field, and the schema facets map onto built-in validators (required,
// minLength/maxLength, minimum/maximum, pattern, and the email/uri formats).
// Messages are generated from the field name and facet so the resulting spec
// is usable as-is; hosts wanting custom copy edit the spec before loading it.
func Constraints(ctx context.Context, raw []byte, opts Options) (constraints.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}

	wanted := make(map[string]bool, len(opts.Types))
	for _, name := range opts.Types {
		wanted[name] = true
	}

	spec := make(constraints.Spec)
	for name, ref := range doc.Components.Schemas {
		if len(wanted) > 0 && !wanted[name] {
			continue
		}
		fields := schemaConstraints(ref)
		if len(fields) > 0 {
			spec[name] = fields
		}
	}

	if len(spec) == 0 {
		return nil, errors.New("openapi: no constraints derived from document")
	}
	return spec, nil
}

func schemaConstraints(ref *openapi3.SchemaRef) map[string]constraints.Fields {
	if ref == nil || ref.Value == nil || len(ref.Value.Properties) == 0 {
		return nil
	}
	src := ref.Value

	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}

	fields := make(map[string]constraints.Fields)
	for name, property := range src.Properties {
		validators := propertyConstraints(name, property, required[name])
		if len(validators) > 0 {
			fields[name] = validators
		}
	}
	return fields
}

func propertyConstraints(name string, ref *openapi3.SchemaRef, required bool) constraints.Fields {
	validators := make(constraints.Fields)
	if required {
		validators[rules.RuleRequired] = constraints.Config{
			"message": fmt.Sprintf("%s is required.", name),
		}
	}
	if ref == nil || ref.Value == nil {
		return validators
	}
	src := ref.Value

	if src.MinLength != 0 {
		validators[rules.RuleMinLength] = constraints.Config{
			"minLength": int(src.MinLength),
			"message":   fmt.Sprintf("%s must be at least %d characters long.", name, src.MinLength),
		}
	}
	if src.MaxLength != nil {
		validators[rules.RuleMaxLength] = constraints.Config{
			"maxLength": int(*src.MaxLength),
			"message":   fmt.Sprintf("%s must be at most %d characters long.", name, *src.MaxLength),
		}
	}
	if src.Min != nil {
		validators[rules.RuleMin] = constraints.Config{
			"min":     *src.Min,
			"message": fmt.Sprintf("%s must be at least %v.", name, *src.Min),
		}
	}
	if src.Max != nil {
		validators[rules.RuleMax] = constraints.Config{
			"max":     *src.Max,
			"message": fmt.Sprintf("%s must be at most %v.", name, *src.Max),
		}
	}
	if src.Pattern != "" {
		validators[rules.RulePattern] = constraints.Config{
			"value":   src.Pattern,
			"message": fmt.Sprintf("%s has an invalid format.", name),
		}
	}

	switch src.Format {
	case "email":
		validators[rules.RuleEmail] = constraints.Config{
			"message": fmt.Sprintf("%s must be a valid email address.", name),
		}
	case "uri", "url":
		validators[rules.RuleURL] = constraints.Config{
			"message": fmt.Sprintf("%s must be a valid URL.", name),
		}
	}

	return validators
}
