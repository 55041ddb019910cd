package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantakit/quanta/quantity"
)

// ConvertResult is the payload for a successful conversion.
type ConvertResult struct {
	Input     string  `json:"input"`
	Family    string  `json:"family"`
	Canonical float64 `json:"canonical"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Text      string  `json:"text"`
}

// String renders the result for text output.
func (r ConvertResult) String() string { return r.Text }

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <quantity> [target-unit]",
		Short: "Convert a quantity between units",
		Long: `Convert a quantity string to another unit of the same family.

The quantity is "<number> <symbol>", e.g. "1500 m" or "2.5 kWh". The family
is inferred from the symbol. Without a target unit the result is rendered
in the family's preferred display unit.

Example:
  quanta convert "1500 m" km
  quanta convert "90 km/h" --format json
  quanta convert --catalog ./catalog "3 bar" kPa`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 2 {
				target = args[1]
			}
			return runConvert(rootOpts, args[0], target, cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, input, target string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	families, err := resolveFamilies(opts, formatter)
	if err != nil {
		return err
	}

	fam, canonical, src, perr := quantity.ParseIn(families, input)
	if perr != nil {
		_ = formatter.Error(ErrCodeParseFailed, perr.Error(), nil)
		return NewExitError(ExitFailure, perr.Error())
	}
	formatter.VerboseLog("Parsed %q as %s (%s)", input, fam.Name(), src.Symbol())

	result := ConvertResult{
		Input:     input,
		Family:    fam.Name(),
		Canonical: canonical,
	}
	if target == "" {
		result.Text = fam.FormatCanonical(canonical)
		// Recover the chosen unit so the JSON payload stays structured.
		fields := strings.SplitN(result.Text, " ", 2)
		if len(fields) == 2 {
			result.Unit = fields[1]
			if u, ok := fam.Unit(fields[1]); ok {
				result.Value = u.FromCanonical(canonical)
			}
		}
		return outputConvert(formatter, result)
	}

	dst, ok := fam.Unit(target)
	if !ok {
		msg := fmt.Sprintf("family %s has no unit %q", fam.Name(), target)
		_ = formatter.Error(ErrCodeUnknownUnit, msg, nil)
		return NewExitError(ExitFailure, msg)
	}
	result.Value = dst.FromCanonical(canonical)
	result.Unit = dst.Symbol()
	result.Text = fam.FormatIn(canonical, dst)
	return outputConvert(formatter, result)
}

func outputConvert(formatter *OutputFormatter, result ConvertResult) error {
	if err := formatter.Success(result); err != nil {
		return WrapExitError(ExitCommandError, "writing output", err)
	}
	return nil
}
