package smugmug

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultWidth is the iframe width used when none is configured.
const DefaultWidth = "100%"

// galleryIDPrefix keeps the DOM ids of several embeds on one page apart.
const galleryIDPrefix = "smugmug-gallery-"

// RenderEmbed returns the iframe markup for a resolved content URL at the
// default width.
func RenderEmbed(url, instanceID string) string {
	return RenderEmbedWidth(url, instanceID, DefaultWidth)
}

// RenderEmbedWidth returns the iframe markup for a resolved content URL.
// url is not re-validated. All attribute values are escaped by the HTML
// renderer, so quotes and angle brackets cannot leave the attribute.
func RenderEmbedWidth(url, instanceID, width string) string {
	if width == "" {
		width = DefaultWidth
	}

	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Iframe,
		Data:     "iframe",
		Attr: []html.Attribute{
			{Key: "class", Val: "smugmug-gallery"},
			{Key: "id", Val: galleryIDPrefix + instanceID},
			{Key: "src", Val: url},
			{Key: "width", Val: width},
			{Key: "frameborder", Val: "no"},
			{Key: "scrolling", Val: "no"},
		},
	}

	var b strings.Builder
	// Rendering a lone element into a strings.Builder cannot fail.
	_ = html.Render(&b, node)
	return b.String()
}
