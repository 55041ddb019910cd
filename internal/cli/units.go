package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantakit/quanta/quantity"
)

// UnitInfo describes a single unit for listing output.
type UnitInfo struct {
	Symbol    string   `json:"symbol"`
	Aliases   []string `json:"aliases,omitempty"`
	Factor    float64  `json:"factor,omitempty"` // 0 for non-linear units
	Linear    bool     `json:"linear"`
	Canonical bool     `json:"canonical"`
}

// FamilyInfo describes a family and its units for listing output.
type FamilyInfo struct {
	Name      string     `json:"name"`
	Canonical string     `json:"canonical"`
	Units     []UnitInfo `json:"units"`
}

// RelationshipInfo describes a declared cross-family relationship.
type RelationshipInfo struct {
	Left   string `json:"left"`
	Op     string `json:"op"`
	Right  string `json:"right"`
	Result string `json:"result"`
}

// UnitsResult is the payload for the units command.
type UnitsResult struct {
	Families      []FamilyInfo       `json:"families"`
	Relationships []RelationshipInfo `json:"relationships,omitempty"`
}

// String renders the listing for text output.
func (r UnitsResult) String() string {
	var b strings.Builder
	for i, fam := range r.Families {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (canonical: %s)\n", fam.Name, fam.Canonical)
		for _, u := range fam.Units {
			fmt.Fprintf(&b, "  %s", u.Symbol)
			if len(u.Aliases) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(u.Aliases, ", "))
			}
			switch {
			case u.Canonical:
				b.WriteString("  = canonical")
			case u.Linear:
				fmt.Fprintf(&b, "  = %v %s", u.Factor, fam.Canonical)
			default:
				b.WriteString("  = non-linear")
			}
			b.WriteString("\n")
		}
	}
	if len(r.Relationships) > 0 {
		b.WriteString("\nRelationships:\n")
		for _, rel := range r.Relationships {
			fmt.Fprintf(&b, "  %s %s %s = %s\n", rel.Left, rel.Op, rel.Right, rel.Result)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// NewUnitsCommand creates the units command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units [family]",
		Short: "List unit families and their units",
		Long: `List registered unit families, their units and aliases, and the
declared cross-family relationships. With a family argument, lists only
that family.

Example:
  quanta units
  quanta units Mass
  quanta units --catalog ./catalog --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runUnits(rootOpts, name, cmd)
		},
	}

	return cmd
}

func runUnits(opts *RootOptions, name string, cmd *cobra.Command) error {
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

	if name != "" {
		families = filterFamilies(families, name)
		if len(families) == 0 {
			msg := fmt.Sprintf("no family named %q", name)
			_ = formatter.Error(ErrCodeNoSuchFamily, msg, nil)
			return NewExitError(ExitFailure, msg)
		}
	}

	result := UnitsResult{}
	for _, fam := range families {
		result.Families = append(result.Families, describeFamily(fam))
	}

	// Relationships are declared against the compiled-in catalog only;
	// a loaded CUE catalog has no relationship declarations to report.
	if opts.Catalog == "" && name == "" {
		for _, rel := range quantity.Relationships() {
			result.Relationships = append(result.Relationships, RelationshipInfo{
				Left:   rel.Left,
				Op:     string(rel.Op),
				Right:  rel.Right,
				Result: rel.Result,
			})
		}
	}

	if err := formatter.Success(result); err != nil {
		return WrapExitError(ExitCommandError, "writing output", err)
	}
	return nil
}

func filterFamilies(families []*quantity.Family, name string) []*quantity.Family {
	for _, fam := range families {
		if fam.Name() == name {
			return []*quantity.Family{fam}
		}
	}
	return nil
}

func describeFamily(fam *quantity.Family) FamilyInfo {
	info := FamilyInfo{
		Name:      fam.Name(),
		Canonical: fam.Canonical().Symbol(),
	}
	for _, u := range fam.Units() {
		ui := UnitInfo{
			Symbol:    u.Symbol(),
			Aliases:   u.Aliases(),
			Linear:    u.IsLinear(),
			Canonical: u.IsCanonical(),
		}
		if u.IsLinear() {
			ui.Factor = u.Factor()
		}
		info.Units = append(info.Units, ui)
	}
	return info
}
