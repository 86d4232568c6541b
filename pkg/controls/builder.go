package controls

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/goliatone/go-validate/pkg/rules"
)

// Resolver produces the composed validator for one field of one type. The
// engine implements this by consulting its constraint and factory registries;
// tests can supply a stub. A field with no constraints must resolve to an
// always-passing Func, while an unknown validator name or malformed
// configuration is an error.
type Resolver interface {
	FieldValidator(typeName, fieldName string) (rules.Func, error)
}

// Build walks the model's own fields and emits a Descriptor per field,
// pairing the field's current value with the validator resolved for
// (typeName, field). Models may be a map[string]any or a struct (pointer or
// value); struct fields use their json tag name when present. Every field is
// treated as a scalar leaf: nested objects and arrays are not traversed.
func Build(resolver Resolver, model any, typeName string) (map[string]Descriptor, error) {
	if resolver == nil {
		return nil, fmt.Errorf("controls: resolver is required")
	}
	values, err := fieldValues(model)
	if err != nil {
		return nil, err
	}

	descriptors := make(map[string]Descriptor, len(values))
	for name, value := range values {
		validator, err := resolver.FieldValidator(typeName, name)
		if err != nil {
			return nil, fmt.Errorf("controls: build %s.%s: %w", typeName, name, err)
		}
		descriptors[name] = Descriptor{Value: value, Validator: validator}
	}
	return descriptors, nil
}

// Attach resolves validators for every field of the group that carries
// constraints under typeName and installs them on the existing controls. A
// control that already has a validator keeps it: the new composed validator
// is combined with the existing one, never swapped in over it. Values are
// left untouched.
func Attach(resolver Resolver, group Group, typeName string, constrained func(field string) bool) error {
	if resolver == nil {
		return fmt.Errorf("controls: resolver is required")
	}
	if group == nil {
		return fmt.Errorf("controls: control group is required")
	}

	for _, name := range group.Fields() {
		if constrained != nil && !constrained(name) {
			continue
		}
		ctrl := group.Control(name)
		if ctrl == nil {
			continue
		}
		validator, err := resolver.FieldValidator(typeName, name)
		if err != nil {
			return fmt.Errorf("controls: attach %s.%s: %w", typeName, name, err)
		}
		if existing := ctrl.Validator(); existing != nil {
			validator = rules.Combine([]rules.Func{existing, validator})
		}
		ctrl.SetValidator(validator)
	}
	return nil
}

// fieldValues flattens a model instance into field name → current value.
func fieldValues(model any) (map[string]any, error) {
	if model == nil {
		return nil, fmt.Errorf("controls: model is required")
	}

	if values, ok := model.(map[string]any); ok {
		out := make(map[string]any, len(values))
		for name, value := range values {
			out[name] = value
		}
		return out, nil
	}

	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("controls: model is a nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("controls: model must be a struct or map[string]any, got %T", model)
	}

	out := make(map[string]any, rv.NumField())
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "" {
			continue
		}
		out[name] = rv.Field(i).Interface()
	}
	return out, nil
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// FieldNames reports the model's own fields in sorted order, mostly useful
// for diagnostics and prompting flows.
func FieldNames(model any) ([]string, error) {
	values, err := fieldValues(model)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
