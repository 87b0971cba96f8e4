package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smugembed/internal/formatter"
	"smugembed/internal/ui"
)

var flagID string

var renderCmd = &cobra.Command{
	Use:   "render [url-or-embed-code]",
	Short: "Render the iframe markup for a stored SmugMug value",
	Args:  cobra.ArbitraryArgs,
	RunE:  renderRun,
}

func init() {
	renderCmd.Flags().StringVar(&flagID, "id", "1", "Media record ID used in the iframe's DOM id")
}

// renderResult is the JSON shape of a render result.
type renderResult struct {
	ID        string `json:"id"`
	Markup    string `json:"markup"`
	Thumbnail string `json:"thumbnail"`
	Error     string `json:"error,omitempty"`
}

func renderRun(cmd *cobra.Command, args []string) error {
	input, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	typ := newMediaType()
	f, err := newFormatter(typ)
	if err != nil {
		return err
	}

	rec := newRecord(flagID, input)
	elements := f.View(rec)
	if len(elements) == 0 {
		return fmt.Errorf("media type %q cannot render record %q", typ.ID(), rec.ID)
	}
	markup := formatter.Markup(elements)
	debugf("render record %s: %d element(s)", rec.ID, len(elements))

	var renderErr error
	for _, e := range elements {
		if e.Err != nil {
			renderErr = e.Err
			break
		}
	}

	if flagJSON {
		res := renderResult{ID: rec.ID, Markup: markup, Thumbnail: typ.Thumbnail(rec)}
		if renderErr != nil {
			res.Error = renderErr.Error()
		}
		if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if renderErr != nil {
			return errReported
		}
		return nil
	}

	if renderErr != nil {
		ui.NewPrinter(cmd.ErrOrStderr()).Fail("cannot render", renderErr.Error())
		return errReported
	}

	ui.NewPrinter(cmd.OutOrStdout()).Println(markup)
	return nil
}
