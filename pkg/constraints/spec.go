package constraints

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a single named validator. It is an open
// map; by convention it carries a `message` string used when the validator
// fails, plus validator-specific parameters such as `min`, `max`, or a regex
// under `value`.
type Config map[string]any

// Message returns the configured failure message, or the empty string when
// none was supplied. The engine never synthesizes a default message.
func (c Config) Message() string {
	if c == nil {
		return ""
	}
	msg, _ := c["message"].(string)
	return msg
}

// Fields returns the set of validators configured for one field, keyed by
// validator name.
type Fields map[string]Config

// Spec is the declarative constraint specification: type name → field name →
// validator name → configuration. Keys are case-sensitive.
type Spec map[string]map[string]Fields

// Clone returns a deep copy of the spec so callers can hand a Spec to a
// Registry without sharing mutable state.
func (s Spec) Clone() Spec {
	if s == nil {
		return nil
	}
	out := make(Spec, len(s))
	for typeName, fields := range s {
		fieldsCopy := make(map[string]Fields, len(fields))
		for fieldName, validators := range fields {
			validatorsCopy := make(Fields, len(validators))
			for name, cfg := range validators {
				cfgCopy := make(Config, len(cfg))
				for key, value := range cfg {
					cfgCopy[key] = value
				}
				validatorsCopy[name] = cfgCopy
			}
			fieldsCopy[fieldName] = validatorsCopy
		}
		out[typeName] = fieldsCopy
	}
	return out
}

// ParseJSON decodes a JSON constraint document into a Spec.
func ParseJSON(raw []byte) (Spec, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("constraints: document is empty")
	}
	var spec Spec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("constraints: parse json document: %w", err)
	}
	return spec, nil
}

// ParseYAML decodes a YAML constraint document into a Spec. JSON documents
// parse too, since YAML is a superset.
func ParseYAML(raw []byte) (Spec, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("constraints: document is empty")
	}
	var spec Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("constraints: parse yaml document: %w", err)
	}
	return spec, nil
}

// Parse sniffs the payload and decodes it as JSON when it looks like a JSON
// object, falling back to YAML otherwise.
func Parse(raw []byte) (Spec, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseJSON(raw)
	}
	return ParseYAML(raw)
}
