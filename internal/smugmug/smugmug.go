package smugmug

import (
	"errors"
	"fmt"
	"strings"

	"smugembed/internal/media"
)

// TypeID is the machine name of the SmugMug media type.
const TypeID = "smugmug"

// FieldHTML is the derived field holding the rendered embed markup.
const FieldHTML = "html"

// thumbnailFile is appended to the configured icon base.
const thumbnailFile = "smugmug.jpg"

// ErrNoSourceField is returned when a record has no usable source field.
var ErrNoSourceField = errors.New("no SmugMug source field")

// Options configures a SmugMug media type.
type Options struct {
	SourceField string // Record field holding the gallery URL or embed code
	Width       string // iframe width, defaults to DefaultWidth
	IconBase    string // Directory of the default media icons
}

// Type implements media.Handler for SmugMug galleries.
type Type struct {
	opts Options
}

var (
	_ media.Handler            = (*Type)(nil)
	_ media.EmbedSource        = (*Type)(nil)
	_ media.ConstraintAttacher = (*Type)(nil)
)

// New creates a SmugMug media type.
func New(opts Options) *Type {
	if opts.Width == "" {
		opts.Width = DefaultWidth
	}
	return &Type{opts: opts}
}

func (t *Type) ID() string { return TypeID }

func (t *Type) Label() string { return "SmugMug" }

func (t *Type) Description() string {
	return "Provides business logic and metadata for SmugMug."
}

// ProvidedFields lists the derived fields answered by Field.
func (t *Type) ProvidedFields() []string {
	return []string{FieldHTML}
}

// AllowedFieldTypes lists the host field types a source field may have.
func (t *Type) AllowedFieldTypes() []string {
	return []string{"string", "string_long", "link"}
}

// SourceField names the record field holding the gallery URL or embed code.
func (t *Type) SourceField() string {
	return t.opts.SourceField
}

// SourceURL resolves the content URL from the first item of the source field.
func (t *Type) SourceURL(rec media.Record) (string, error) {
	if t.opts.SourceField == "" {
		return "", fmt.Errorf("%w: source field not configured", ErrNoSourceField)
	}
	value, ok := rec.First(t.opts.SourceField)
	if !ok {
		return "", fmt.Errorf("%w: record %q has no %q items", ErrNoSourceField, rec.ID, t.opts.SourceField)
	}
	return Resolve(value)
}

// Field returns a derived value for the record. Only FieldHTML is known.
func (t *Type) Field(rec media.Record, name string) (string, error) {
	contentURL, err := t.SourceURL(rec)
	if err != nil {
		return "", err
	}

	switch name {
	case FieldHTML:
		return RenderEmbedWidth(contentURL, rec.ID, t.opts.Width), nil
	}
	return "", nil
}

// EmbedMarkup resolves a raw stored value and renders it.
func (t *Type) EmbedMarkup(value, instanceID string) (string, error) {
	contentURL, err := Resolve(value)
	if err != nil {
		return "", err
	}
	return RenderEmbedWidth(contentURL, instanceID, t.opts.Width), nil
}

// Thumbnail returns the default SmugMug icon. Per-gallery thumbnails
// would need the SmugMug API.
func (t *Type) Thumbnail(rec media.Record) string {
	base := strings.TrimRight(t.opts.IconBase, "/")
	if base == "" {
		return thumbnailFile
	}
	return base + "/" + thumbnailFile
}

// Constraints attaches an embed code constraint to every item of the
// source field. Records without the field get none.
func (t *Type) Constraints(rec media.Record) []media.Constraint {
	if t.opts.SourceField == "" {
		return nil
	}
	items, ok := rec.Items(t.opts.SourceField)
	if !ok {
		return nil
	}

	constraints := make([]media.Constraint, 0, len(items))
	for delta := range items {
		constraints = append(constraints, NewEmbedCodeConstraint(t.opts.SourceField, delta))
	}
	return constraints
}
