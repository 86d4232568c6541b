package constraints_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-validate/pkg/constraints"
)

const jsonDoc = `{
  "Person": {
    "firstName": {
      "required": {"message": "First name is required."},
      "size": {"min": 2, "max": 20, "message": "Between 2 and 20."}
    }
  }
}`

const yamlDoc = `
Person:
  firstName:
    required:
      message: First name is required.
    size:
      min: 2
      max: 20
      message: Between 2 and 20.
`

func TestParseJSON(t *testing.T) {
	spec, err := constraints.ParseJSON([]byte(jsonDoc))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	cfg := spec["Person"]["firstName"]["size"]
	if cfg.Message() != "Between 2 and 20." {
		t.Fatalf("unexpected message %q", cfg.Message())
	}
	if cfg["min"] != float64(2) {
		t.Fatalf("expected json number for min, got %T", cfg["min"])
	}
}

func TestParseYAMLMatchesJSON(t *testing.T) {
	fromYAML, err := constraints.ParseYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	fromJSON, err := constraints.ParseJSON([]byte(jsonDoc))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}

	// Numeric types differ between decoders (int vs float64); compare the
	// shape and messages rather than raw values.
	if len(fromYAML) != len(fromJSON) {
		t.Fatalf("type count mismatch: %d vs %d", len(fromYAML), len(fromJSON))
	}
	y := fromYAML["Person"]["firstName"]
	j := fromJSON["Person"]["firstName"]
	if len(y) != len(j) {
		t.Fatalf("validator count mismatch: %v vs %v", y, j)
	}
	if y["required"].Message() != j["required"].Message() {
		t.Fatal("message mismatch between decoders")
	}
}

func TestParseSniffsFormat(t *testing.T) {
	if _, err := constraints.Parse([]byte(jsonDoc)); err != nil {
		t.Fatalf("sniff json: %v", err)
	}
	if _, err := constraints.Parse([]byte(yamlDoc)); err != nil {
		t.Fatalf("sniff yaml: %v", err)
	}
}

func TestParseRejectsEmptyAndMalformed(t *testing.T) {
	if _, err := constraints.ParseJSON(nil); err == nil {
		t.Fatal("expected error for empty document")
	}
	if _, err := constraints.ParseJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := constraints.Spec{
		"Person": {
			"firstName": {"required": {"message": "required"}},
		},
	}
	clone := original.Clone()

	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	clone["Person"]["firstName"]["required"]["message"] = "changed"
	if original["Person"]["firstName"]["required"].Message() != "required" {
		t.Fatal("clone shares state with original")
	}
}

func TestConfigMessage(t *testing.T) {
	if got := (constraints.Config{}).Message(); got != "" {
		t.Fatalf("expected empty message, got %q", got)
	}
	if got := (constraints.Config(nil)).Message(); got != "" {
		t.Fatalf("expected empty message for nil config, got %q", got)
	}
	if got := (constraints.Config{"message": 42}).Message(); got != "" {
		t.Fatalf("expected empty message for non-string, got %q", got)
	}
}
