package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-validate/pkg/constraints"
)

// LoadSpec reads a constraint document fixture and parses it. Testing helpers
// fail the test on error to keep contract tests concise.
func LoadSpec(t *testing.T, path string) constraints.Spec {
	t.Helper()

	spec, err := LoadSpecFromPath(path)
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	return spec
}

// LoadSpecFromPath returns a Spec without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadSpecFromPath(path string) (constraints.Spec, error) {
	if path == "" {
		return nil, errors.New("testsupport: spec path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read spec: %w", err)
	}
	spec, err := constraints.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse spec: %w", err)
	}
	return spec, nil
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustLoadGoldenSpec loads a JSON golden file into a Spec.
func MustLoadGoldenSpec(t *testing.T, path string) constraints.Spec {
	t.Helper()

	var out constraints.Spec
	if err := json.Unmarshal(MustReadGolden(t, path), &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
