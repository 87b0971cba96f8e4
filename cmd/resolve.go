package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"smugembed/internal/smugmug"
	"smugembed/internal/ui"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [url-or-embed-code]",
	Short: "Print the SmugMug content URL an input resolves to",
	Args:  cobra.ArbitraryArgs,
	RunE:  resolveRun,
}

// resolveResult is the JSON shape of a resolve verdict.
type resolveResult struct {
	Input string `json:"input"`
	URL   string `json:"url,omitempty"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func resolveRun(cmd *cobra.Command, args []string) error {
	input, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	contentURL, resolveErr := smugmug.Resolve(input)
	debugf("resolve %q: url=%q err=%v", input, contentURL, resolveErr)

	if flagJSON {
		res := resolveResult{Input: input, URL: contentURL, Valid: resolveErr == nil}
		if resolveErr != nil {
			res.Error = resolveErr.Error()
		}
		if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if resolveErr != nil {
			return errReported
		}
		return nil
	}

	if resolveErr != nil {
		ui.NewPrinter(cmd.ErrOrStderr()).Fail("invalid", resolveErr.Error())
		return errReported
	}

	ui.NewPrinter(cmd.OutOrStdout()).Println(contentURL)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
