package controls

import (
	"sort"

	"github.com/goliatone/go-validate/pkg/rules"
)

// Control is the per-field capability the engine requires from a host form
// framework: read the current value, read the attached validator, and swap
// the validator. Implementations wrap their framework's concrete control.
type Control interface {
	Value() any
	Validator() rules.Func
	SetValidator(fn rules.Func)
}

// Group is a flat control tree: the engine only needs to enumerate fields and
// fetch the control behind each one.
type Group interface {
	Fields() []string
	Control(name string) Control
}

// Descriptor pairs a field's current value with its composed validator. A
// field without constraints still gets a descriptor whose validator always
// passes.
type Descriptor struct {
	Value     any
	Validator rules.Func
}

// Validate runs the descriptor's validator against its captured value.
func (d Descriptor) Validate() rules.Errors {
	if d.Validator == nil {
		return nil
	}
	return d.Validator(d.Value)
}

// FormControl is the reference Control implementation for hosts without a
// form framework of their own.
type FormControl struct {
	value     any
	validator rules.Func
}

// NewFormControl wraps an initial value in a control with no validator.
func NewFormControl(value any) *FormControl {
	return &FormControl{value: value}
}

func (c *FormControl) Value() any { return c.value }

// SetValue updates the control's current value.
func (c *FormControl) SetValue(value any) { c.value = value }

func (c *FormControl) Validator() rules.Func { return c.validator }

func (c *FormControl) SetValidator(fn rules.Func) { c.validator = fn }

// Validate runs the attached validator against the current value, returning
// nil when no validator is attached.
func (c *FormControl) Validate() rules.Errors {
	if c.validator == nil {
		return nil
	}
	return c.validator(c.value)
}

// FormGroup is the reference Group implementation: a named set of
// FormControls preserving insertion order.
type FormGroup struct {
	controls map[string]*FormControl
	order    []string
}

// NewFormGroup creates an empty group.
func NewFormGroup() *FormGroup {
	return &FormGroup{controls: make(map[string]*FormControl)}
}

// GroupFromDescriptors materializes a FormGroup from builder output, with
// fields in sorted name order.
func GroupFromDescriptors(descriptors map[string]Descriptor) *FormGroup {
	group := NewFormGroup()
	names := make([]string, 0, len(descriptors))
	for name := range descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		desc := descriptors[name]
		ctrl := NewFormControl(desc.Value)
		ctrl.SetValidator(desc.Validator)
		group.Add(name, ctrl)
	}
	return group
}

// Add registers a control under name, replacing any control already there.
func (g *FormGroup) Add(name string, ctrl *FormControl) {
	if _, exists := g.controls[name]; !exists {
		g.order = append(g.order, name)
	}
	g.controls[name] = ctrl
}

// Fields returns the field names in insertion order.
func (g *FormGroup) Fields() []string {
	return append([]string(nil), g.order...)
}

// Control returns the control registered under name, or nil.
func (g *FormGroup) Control(name string) Control {
	ctrl, ok := g.controls[name]
	if !ok {
		// A typed nil would fail the caller's nil check.
		return nil
	}
	return ctrl
}

// Get returns the concrete control for direct value access in tests and
// framework-free hosts.
func (g *FormGroup) Get(name string) *FormControl {
	return g.controls[name]
}

// Validate runs every control's validator, returning a map of field name to
// failures for the fields that failed. An empty result means the whole group
// passed.
func (g *FormGroup) Validate() map[string]rules.Errors {
	failures := make(map[string]rules.Errors)
	for _, name := range g.order {
		if errs := g.controls[name].Validate(); errs != nil {
			failures[name] = errs
		}
	}
	return failures
}
