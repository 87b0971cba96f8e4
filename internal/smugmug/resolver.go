// Package smugmug implements the SmugMug media type: resolving user-supplied
// gallery URLs or iframe embed codes, rendering embeds, and validating
// stored values.
package smugmug

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrInvalidEmbed is returned when a value does not reference a SmugMug
// content URL, either directly or through an iframe src.
var ErrInvalidEmbed = errors.New("not a SmugMug content URL or embed code")

// contentURLPattern accepts any SmugMug subdomain with a /frame path prefix.
// The rest of the URL varies by content type and is not checked.
var contentURLPattern = regexp.MustCompile(`(?i)^https://\w+\.smugmug\.com/frame`)

// IsContentURL reports whether s starts with a SmugMug content URL.
func IsContentURL(s string) bool {
	return contentURLPattern.MatchString(s)
}

// Resolve extracts the SmugMug content URL from a raw URL or an iframe
// embed code. Input is trimmed before matching; callers must not pre-trim.
func Resolve(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidEmbed)
	}

	if IsContentURL(input) {
		return input, nil
	}

	src, err := firstIframeSrc(input)
	if err != nil {
		return "", err
	}

	if !IsContentURL(src) {
		return "", fmt.Errorf("%w: iframe src %q is not on the SmugMug domain", ErrInvalidEmbed, src)
	}
	return src, nil
}

// firstIframeSrc parses fragment as HTML and returns the src of the first
// iframe in document order. The HTML5 parser recovers from malformed
// markup, so a parse failure only happens on reader errors and is reported
// as ErrInvalidEmbed like any other miss.
func firstIframeSrc(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("%w: parsing markup: %v", ErrInvalidEmbed, err)
	}

	iframe := doc.Find("iframe").First()
	if iframe.Length() == 0 {
		return "", fmt.Errorf("%w: no iframe found", ErrInvalidEmbed)
	}

	src, exists := iframe.Attr("src")
	if !exists {
		return "", fmt.Errorf("%w: iframe has no src attribute", ErrInvalidEmbed)
	}
	return src, nil
}
