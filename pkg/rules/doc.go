// Package rules defines the executable side of the validation engine: the
// validation function type, the factory capability that turns a constraint
// configuration into validation functions, the registry that resolves
// factories by name, and the composer that merges several functions into one.
//
// Validation outcomes are data, not Go errors. A Func returns nil when the
// value passes and an Errors map keyed by validator name when it fails, so
// results flow directly into form error displays. Go errors are reserved for
// configuration mistakes: an unknown validator name in a constraint document
// or a malformed validator configuration, both surfaced at resolution time.
//
// The registry is seeded with the built-in validators (required, size, min,
// max, minLength, maxLength, email, pattern, url). Registering a factory
// under an existing name replaces it; overriding a built-in is an intended
// extension mechanism, not an error.
package rules
