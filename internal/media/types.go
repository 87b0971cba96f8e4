// Package media defines the host-facing types shared by media type handlers
// and the collaborators that validate and render their records.
package media

import "fmt"

// EntityType is the host entity type that media records belong to.
const EntityType = "media"

// Record is a media record as handed over by the host.
type Record struct {
	ID     string              // Owning record identifier, e.g. "42"
	Bundle string              // Handler ID of the media type, e.g. "smugmug"
	Fields map[string][]string // Field name -> item values (multi-value fields)
}

// Items returns the item values of a field and whether the field exists.
func (r Record) Items(field string) ([]string, bool) {
	if r.Fields == nil {
		return nil, false
	}
	items, ok := r.Fields[field]
	return items, ok
}

// First returns the first item of a field, if any.
func (r Record) First(field string) (string, bool) {
	items, ok := r.Items(field)
	if !ok || len(items) == 0 {
		return "", false
	}
	return items[0], true
}

// Handler is the interface every media type handler implements.
type Handler interface {
	// ID returns the machine name of the media type.
	ID() string

	// Label returns the human-readable name.
	Label() string

	// Description returns a one-line summary for admin listings.
	Description() string

	// ProvidedFields lists the names Field can answer.
	ProvidedFields() []string

	// Field returns a derived value for the record.
	// Unknown names return an empty string and no error.
	Field(rec Record, name string) (string, error)

	// Thumbnail returns the path of the record's thumbnail image.
	Thumbnail(rec Record) string
}

// EmbedSource is implemented by handlers that can turn a stored field value
// into embeddable markup. Render collaborators check for it with an
// interface assertion before calling it.
type EmbedSource interface {
	// SourceField names the record field holding the embeddable string.
	SourceField() string

	// EmbedMarkup resolves value and renders it for the given instance.
	EmbedMarkup(value, instanceID string) (string, error)
}

// ConstraintAttacher is implemented by handlers that validate their
// source field at data-entry time.
type ConstraintAttacher interface {
	Constraints(rec Record) []Constraint
}

// Constraint validates a single field item.
type Constraint interface {
	// Field returns the field the constraint is attached to.
	Field() string

	// Delta returns the item index within the field.
	Delta() int

	// Check validates the item value. A nil value means the item is unset.
	Check(value *string) *Violation
}

// Violation is a user-facing validation failure.
type Violation struct {
	Field   string `json:"field"`
	Delta   int    `json:"delta"`
	Message string `json:"message"`
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s[%d]: %s", v.Field, v.Delta, v.Message)
}
