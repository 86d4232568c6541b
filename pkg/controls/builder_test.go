package controls_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-validate/pkg/controls"
	"github.com/goliatone/go-validate/pkg/rules"
)

// stubResolver fails firstName with a fixed error and passes everything else.
type stubResolver struct {
	failFields map[string]string
	errFields  map[string]bool
}

func (r stubResolver) FieldValidator(typeName, fieldName string) (rules.Func, error) {
	if r.errFields[fieldName] {
		return nil, fmt.Errorf("validator %q is not registered", "bogus")
	}
	message, constrained := r.failFields[fieldName]
	return func(value any) rules.Errors {
		if !constrained {
			return nil
		}
		if text, _ := value.(string); text == "" {
			return rules.Errors{"required": rules.Detail{"message": message}}
		}
		return nil
	}, nil
}

type personModel struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Ignored   string `json:"-"`
	internal  string
}

func TestBuildFromStruct(t *testing.T) {
	resolver := stubResolver{failFields: map[string]string{"firstName": "First name is required."}}
	model := personModel{LastName: "Smith", internal: "x"}

	descriptors, err := controls.Build(resolver, model, "Person")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	names := make([]string, 0, len(descriptors))
	for name := range descriptors {
		names = append(names, name)
	}
	if diff := cmp.Diff(map[string]bool{"firstName": true, "lastName": true}, toSet(names)); diff != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", diff)
	}

	first := descriptors["firstName"]
	if first.Value != "" {
		t.Fatalf("expected captured value, got %v", first.Value)
	}
	if errs := first.Validate(); errs == nil {
		t.Fatal("expected empty firstName to fail")
	}

	last := descriptors["lastName"]
	if last.Value != "Smith" {
		t.Fatalf("expected captured value Smith, got %v", last.Value)
	}
	if errs := last.Validate(); errs != nil {
		t.Fatalf("expected unconstrained field to pass, got %v", errs)
	}
}

func TestBuildFromMap(t *testing.T) {
	resolver := stubResolver{failFields: map[string]string{"firstName": "required"}}
	model := map[string]any{"firstName": "John", "age": 30}

	descriptors, err := controls.Build(resolver, model, "Person")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descriptors))
	}
	if descriptors["age"].Value != 30 {
		t.Fatalf("expected captured age, got %v", descriptors["age"].Value)
	}
}

func TestBuildFromPointer(t *testing.T) {
	resolver := stubResolver{}
	descriptors, err := controls.Build(resolver, &personModel{FirstName: "J"}, "Person")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if descriptors["firstName"].Value != "J" {
		t.Fatalf("expected dereferenced value, got %v", descriptors["firstName"].Value)
	}
}

func TestBuildRejectsUnsupportedModels(t *testing.T) {
	resolver := stubResolver{}
	if _, err := controls.Build(resolver, nil, "Person"); err == nil {
		t.Fatal("expected error for nil model")
	}
	if _, err := controls.Build(resolver, 42, "Person"); err == nil {
		t.Fatal("expected error for scalar model")
	}
	var nilPerson *personModel
	if _, err := controls.Build(resolver, nilPerson, "Person"); err == nil {
		t.Fatal("expected error for nil pointer model")
	}
}

func TestBuildSurfacesResolutionErrors(t *testing.T) {
	resolver := stubResolver{errFields: map[string]bool{"firstName": true}}

	_, err := controls.Build(resolver, personModel{}, "Person")
	if err == nil {
		t.Fatal("expected resolution error to propagate")
	}
	if !strings.Contains(err.Error(), "Person.firstName") {
		t.Fatalf("error should identify the field, got %v", err)
	}
}

func toSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, name := range names {
		out[name] = true
	}
	return out
}
