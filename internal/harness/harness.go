package harness

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/quantakit/quanta/internal/compiler"
	"github.com/quantakit/quanta/quantity"

	// Register the built-in unit catalog.
	_ "github.com/quantakit/quanta/units"
)

// Record is the structured outcome of one scenario step.
type Record struct {
	Input  string  `json:"input"`
	Family string  `json:"family"`
	Unit   string  `json:"unit"`
	Value  float64 `json:"value"`
	Text   string  `json:"text"`
}

// Result holds the outcome of running a scenario.
type Result struct {
	// Pass is true when every step succeeded and every inline
	// expectation matched.
	Pass bool

	// Errors lists step failures and expectation mismatches.
	Errors []string

	// Records holds one record per successfully executed step.
	Records []Record
}

// Run executes a scenario against its catalog and returns the collected
// records. Step failures are reported in the result, not as errors; an
// error return means the scenario itself could not be executed (its
// catalog failed to compile).
func Run(scenario *Scenario) (*Result, error) {
	families, err := loadFamilies(scenario.Catalog)
	if err != nil {
		return nil, err
	}

	result := &Result{Pass: true}
	for i, step := range scenario.Steps {
		rec, err := runStep(families, step)
		if err != nil {
			result.Pass = false
			result.Errors = append(result.Errors, fmt.Sprintf("steps[%d]: %v", i, err))
			continue
		}
		if step.Expect != "" && rec.Text != step.Expect {
			result.Pass = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("steps[%d]: got %q, expected %q", i, rec.Text, step.Expect))
		}
		result.Records = append(result.Records, rec)
	}
	return result, nil
}

func runStep(families []*quantity.Family, step Step) (Record, error) {
	fam, canonical, _, err := quantity.ParseIn(families, step.Parse)
	if err != nil {
		return Record{}, err
	}

	rec := Record{Input: step.Parse, Family: fam.Name()}

	if step.To != "" {
		dst, ok := fam.Unit(step.To)
		if !ok {
			return Record{}, fmt.Errorf("family %s has no unit %q", fam.Name(), step.To)
		}
		rec.Unit = dst.Symbol()
		rec.Value = dst.FromCanonical(canonical)
		rec.Text = fam.FormatIn(canonical, dst)
		return rec, nil
	}

	rec.Text = fam.FormatCanonical(canonical)
	if fields := strings.SplitN(rec.Text, " ", 2); len(fields) == 2 {
		rec.Unit = fields[1]
		if u, ok := fam.Unit(fields[1]); ok {
			rec.Value = u.FromCanonical(canonical)
		}
	}
	return rec, nil
}

// loadFamilies compiles the scenario's CUE catalog, or returns the
// registered built-in families when no catalog is set.
func loadFamilies(dir string) ([]*quantity.Family, error) {
	if dir == "" {
		return quantity.Families(), nil
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances in %s", dir)
	}
	if instances[0].Err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", dir, instances[0].Err)
	}

	value := ctx.BuildInstance(instances[0])
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("building catalog %s: %w", dir, err)
	}

	families, err := compiler.CompileCatalog(value)
	if err != nil {
		return nil, fmt.Errorf("compiling catalog %s: %w", dir, err)
	}
	return families, nil
}
