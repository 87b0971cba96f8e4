package smugmug

import (
	"smugembed/internal/media"
)

// EmbedCodeMessage is shown to users when a value cannot be resolved.
const EmbedCodeMessage = "Not valid SmugMug URL/Embed code."

// EmbedCodeConstraint checks that a field item resolves to a SmugMug
// content URL. The raw value is what gets stored; the resolved URL is
// discarded.
type EmbedCodeConstraint struct {
	field string
	delta int
}

var _ media.Constraint = EmbedCodeConstraint{}

// NewEmbedCodeConstraint creates a constraint for one item of field.
func NewEmbedCodeConstraint(field string, delta int) EmbedCodeConstraint {
	return EmbedCodeConstraint{field: field, delta: delta}
}

func (c EmbedCodeConstraint) Field() string { return c.field }

func (c EmbedCodeConstraint) Delta() int { return c.delta }

// Check returns a violation if value does not resolve. Unset items pass.
func (c EmbedCodeConstraint) Check(value *string) *media.Violation {
	if value == nil {
		return nil
	}
	if _, err := Resolve(*value); err != nil {
		return &media.Violation{
			Field:   c.field,
			Delta:   c.delta,
			Message: EmbedCodeMessage,
		}
	}
	return nil
}
