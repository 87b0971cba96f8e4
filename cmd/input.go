package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// maxInputSize bounds how much of a file or stdin is read.
const maxInputSize = 1 << 20

// readInput returns the raw value to check: the joined args, the --file
// contents, or stdin. The value is not trimmed; the resolver does that.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && flagFile != "" {
		return "", fmt.Errorf("pass input either as arguments or with --file, not both")
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	r := stdin
	if flagFile != "" && flagFile != "-" {
		f, err := os.Open(flagFile)
		if err != nil {
			return "", fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if len(data) > maxInputSize {
		return "", fmt.Errorf("input larger than %d bytes", maxInputSize)
	}
	return string(data), nil
}
