// Package controls bridges the validation engine and a host form framework.
// The engine never depends on a framework's concrete control types; it talks
// to the minimal Control and Group capabilities defined here. Hosts without
// their own control tree can use the FormControl and FormGroup
// implementations directly.
//
// Build produces per-field descriptors (current value plus composed
// validator) from a model instance, and Attach layers composed validators
// onto an existing control tree without discarding validators the host
// already installed.
package controls
