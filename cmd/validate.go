package cmd

import (
	"github.com/spf13/cobra"

	"smugembed/internal/media"
	"smugembed/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate [url-or-embed-code]",
	Short: "Validate an input as the stored value of a SmugMug media record",
	Args:  cobra.ArbitraryArgs,
	RunE:  validateRun,
}

// validateResult is the JSON shape of a validate verdict.
type validateResult struct {
	Field      string             `json:"field"`
	Valid      bool               `json:"valid"`
	Violations []*media.Violation `json:"violations,omitempty"`
}

func validateRun(cmd *cobra.Command, args []string) error {
	input, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	typ := newMediaType()
	rec := newRecord("", input)
	violations := media.Validate(rec, typ)
	debugf("validate %s: %d violation(s)", typ.SourceField(), len(violations))

	if flagJSON {
		res := validateResult{Field: typ.SourceField(), Valid: len(violations) == 0, Violations: violations}
		if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if len(violations) > 0 {
			return errReported
		}
		return nil
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if len(violations) == 0 {
		p.OK("valid", typ.SourceField())
		return nil
	}
	for _, v := range violations {
		p.Fail(v.Message, v.Field)
	}
	return errReported
}
