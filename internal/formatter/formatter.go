// Package formatter renders the source field of media records as
// embeddable markup.
package formatter

import (
	"strings"

	"smugembed/internal/media"
)

const (
	// ID is the machine name of the embed formatter.
	ID = "smugmug_embed"
	// Label is the human-readable formatter name.
	Label = "SmugMug embed"
)

// FieldTypes lists the host field types the formatter can display.
var FieldTypes = []string{"link", "string", "string_long"}

// Element is one rendered field item.
type Element struct {
	Delta  int
	Markup string
	Err    error // Set when the item could not be resolved
}

// Formatter renders records whose handler offers media.EmbedSource.
type Formatter struct {
	registry *media.Registry
}

// New creates a formatter that looks up handlers in registry.
func New(registry *media.Registry) *Formatter {
	return &Formatter{registry: registry}
}

// IsApplicable reports whether the formatter can be used on entityType.
func IsApplicable(entityType string) bool {
	return entityType == media.EntityType
}

// View renders every item of the record's source field. Returns nil when
// the record's handler is unknown or cannot embed. Items that fail to
// resolve keep their delta with empty markup.
func (f *Formatter) View(rec media.Record) []Element {
	h, ok := f.registry.Lookup(rec.Bundle)
	if !ok {
		return nil
	}
	source, ok := h.(media.EmbedSource)
	if !ok {
		return nil
	}

	items, _ := rec.Items(source.SourceField())
	if len(items) == 0 {
		return nil
	}

	elements := make([]Element, len(items))
	for delta, value := range items {
		markup, err := source.EmbedMarkup(value, rec.ID)
		elements[delta] = Element{Delta: delta, Markup: markup, Err: err}
	}
	return elements
}

// Markup joins the rendered markup of elements, skipping failed items.
func Markup(elements []Element) string {
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		if e.Err != nil || e.Markup == "" {
			continue
		}
		parts = append(parts, e.Markup)
	}
	return strings.Join(parts, "\n")
}
