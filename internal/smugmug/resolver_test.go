package smugmug

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func loadFixture(t *testing.T, filename string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + filename)
	if err != nil {
		t.Fatalf("reading test fixture %s: %v", filename, err)
	}
	return string(data)
}

func TestResolveDirectURL(t *testing.T) {
	tests := []string{
		"https://example.smugmug.com/frame?id=123",
		"https://photos.smugmug.com/frame/slideshow?key=abc",
		"HTTPS://Example.SmugMug.COM/FRAME?id=1",
		"https://under_score.smugmug.com/frame",
		"https://example.smugmug.com/framework",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := Resolve(input)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", input, err)
			}
			if got != input {
				t.Errorf("Resolve(%q) = %q, want input unchanged", input, got)
			}
		})
	}
}

func TestResolveTrimsWhitespace(t *testing.T) {
	const url = "https://example.smugmug.com/frame?id=123"
	snippet := `<iframe src="` + url + `"></iframe>`

	for _, input := range []string{url, snippet} {
		padded := "  \n\t" + input + " \r\n "
		want, err := Resolve(input)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", input, err)
		}
		got, err := Resolve(padded)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", padded, err)
		}
		if got != want {
			t.Errorf("Resolve(padded) = %q, want %q", got, want)
		}
	}
}

func TestResolveIframe(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"attributes around src",
			`<iframe class="x" src="https://example.smugmug.com/frame?id=123" width="500"></iframe>`,
			"https://example.smugmug.com/frame?id=123",
		},
		{
			"minimal snippet",
			`<iframe src="https://a.smugmug.com/frame"></iframe>`,
			"https://a.smugmug.com/frame",
		},
		{
			"uppercase tag and single quotes",
			`<IFRAME SRC='https://a.smugmug.com/frame?id=7'></IFRAME>`,
			"https://a.smugmug.com/frame?id=7",
		},
		{
			"unterminated iframe element",
			`<iframe src="https://a.smugmug.com/frame?id=8">`,
			"https://a.smugmug.com/frame?id=8",
		},
		{
			"entity in src is decoded",
			`<iframe src="https://a.smugmug.com/frame?id=1&amp;speed=3"></iframe>`,
			"https://a.smugmug.com/frame?id=1&speed=3",
		},
		{
			"wrapped in text",
			`Here is my gallery: <iframe src="https://a.smugmug.com/frame?id=9"></iframe> enjoy`,
			"https://a.smugmug.com/frame?id=9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"plain text", "not html at all"},
		{"http scheme", "http://example.smugmug.com/frame?id=1"},
		{"wrong path", "https://example.smugmug.com/gallery/123"},
		{"lookalike domain", "https://example.smugmug.com.evil.com/frame"},
		{"subdomain with dot", "https://a.b.smugmug.com/frame"},
		{"no subdomain", "https://smugmug.com/frame"},
		{"url not at start", "see https://example.smugmug.com/frame?id=1"},
		{"foreign iframe", `<iframe src="https://evil.example.com/frame"></iframe>`},
		{"iframe without src", `<iframe width="500"></iframe>`},
		{"empty src", `<iframe src=""></iframe>`},
		{"markup without iframe", `<div><a href="https://example.smugmug.com/frame">gallery</a></div>`},
		{"javascript src", `<iframe src="javascript:alert('https://a.smugmug.com/frame')"></iframe>`},
		{"padded src", `<iframe src=" https://a.smugmug.com/frame"></iframe>`},
		{"iframe inside comment", `<!-- <iframe src="https://a.smugmug.com/frame"></iframe> -->`},
		{"iframe inside textarea", `<textarea><iframe src="https://a.smugmug.com/frame"></iframe></textarea>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			if err == nil {
				t.Fatalf("Resolve(%q) = %q, want error", tt.input, got)
			}
			if !errors.Is(err, ErrInvalidEmbed) {
				t.Errorf("Resolve(%q) error = %v, want ErrInvalidEmbed", tt.input, err)
			}
			if got != "" {
				t.Errorf("Resolve(%q) returned %q alongside error", tt.input, got)
			}
		})
	}
}

func TestResolveFixtures(t *testing.T) {
	tests := []struct {
		file    string
		want    string
		wantErr bool
	}{
		{"embed_gallery.html", "https://photos.smugmug.com/frame/slideshow?key=abc123&autoStart=1&captions=1&navigation=1&playButton=1&randomize=0&speed=3&transition=fade&transitionSpeed=2", false},
		{"embed_multiple.html", "https://first.smugmug.com/frame/slideshow?key=first", false},
		{"embed_malformed.html", "https://broken.smugmug.com/frame?id=9", false},
		// The first iframe decides, even when a later one would match.
		{"embed_foreign.html", "", true},
		// Script content is text, not markup.
		{"embed_script.html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := Resolve(loadFixture(t, tt.file))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveNeverReturnsInvalidURL(t *testing.T) {
	inputs := []string{
		`<iframe src="https://a.smugmug.com/frame`,
		`<<<<iframe>>>> src=`,
		`<iframe src="https://a.smugmug.com/frame"`,
		"<iframe\x00 src=\"https://a.smugmug.com/frame\"></iframe>",
		strings.Repeat("<div>", 2000) + `<iframe src="https://deep.smugmug.com/frame"></iframe>`,
		"\xff\xfe<iframe src=\"https://a.smugmug.com/frame\">",
		`</iframe><iframe src="https://a.smugmug.com/frame?x=<script>">`,
	}

	for _, input := range inputs {
		got, err := Resolve(input)
		if err != nil {
			if !errors.Is(err, ErrInvalidEmbed) {
				t.Errorf("Resolve(%q) error = %v, want ErrInvalidEmbed", input, err)
			}
			continue
		}
		if !IsContentURL(got) {
			t.Errorf("Resolve(%q) = %q, which is not a content URL", input, got)
		}
	}
}

func TestResolveErrorNamesReason(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"", "empty input"},
		{"plain text", "no iframe found"},
		{`<iframe></iframe>`, "no src attribute"},
		{`<iframe src="https://example.com/frame"></iframe>`, "not on the SmugMug domain"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			_, err := Resolve(tt.input)
			if err == nil {
				t.Fatal("Resolve() should fail")
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q does not mention %q", err, tt.reason)
			}
		})
	}
}

func TestResolveConcurrent(t *testing.T) {
	const url = "https://example.smugmug.com/frame?id=123"
	snippet := `<iframe src="` + url + `"></iframe>`

	done := make(chan error, 16)
	for i := 0; i < cap(done); i++ {
		go func() {
			got, err := Resolve(snippet)
			if err == nil && got != url {
				err = errors.New("unexpected URL " + got)
			}
			done <- err
		}()
	}
	for i := 0; i < cap(done); i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
