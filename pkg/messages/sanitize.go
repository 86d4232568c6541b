// Package messages prepares validation failure messages for display.
// Constraint documents are configuration, often loaded from disk or over
// HTTP, so their messages cannot be trusted to be inert when interpolated
// into HTML form chrome.
package messages

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-validate/pkg/rules"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func messagePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Sanitize strips all markup from a failure message, leaving plain text safe
// to inject into HTML.
func Sanitize(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(messagePolicy().Sanitize(trimmed))
}

// SanitizeErrors returns a copy of errs with every `message` entry sanitized.
// Other detail keys are left alone; they are rendered as attributes, not
// markup. A nil input stays nil.
func SanitizeErrors(errs rules.Errors) rules.Errors {
	if errs == nil {
		return nil
	}
	out := make(rules.Errors, len(errs))
	for name, detail := range errs {
		detailCopy := make(rules.Detail, len(detail))
		for key, value := range detail {
			detailCopy[key] = value
		}
		if msg, ok := detailCopy["message"].(string); ok {
			detailCopy["message"] = Sanitize(msg)
		}
		out[name] = detailCopy
	}
	return out
}
