package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/quantakit/quanta/internal/compiler"
	"github.com/quantakit/quanta/quantity"

	// Register the built-in unit catalog.
	_ "github.com/quantakit/quanta/units"
)

// LoadMode controls how errors are handled during catalog loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the results of loading a CUE unit catalog.
type LoadResult struct {
	Families  []*quantity.Family
	CUEValue  cue.Value // The raw CUE value for additional processing
	FileCount int       // Number of CUE files found
}

// LoadError represents an error that occurred during catalog loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadCatalog loads and compiles a CUE unit catalog from a directory.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all family errors.
func LoadCatalog(dir string, mode LoadMode) (*LoadResult, []error) {
	var errs []error

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &LoadResult{
		CUEValue:  value,
		FileCount: len(cueFiles),
	}

	familiesVal := value.LookupPath(cue.ParsePath("quantity"))
	if !familiesVal.Exists() {
		return result, []error{&LoadError{Code: ErrCodeGeneric, Message: "no quantity declarations found in catalog"}}
	}

	iter, iterErr := familiesVal.Fields()
	if iterErr != nil {
		return result, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating families: %v", iterErr)}}
	}
	for iter.Next() {
		fam, compileErr := compiler.CompileFamily(iter.Label(), iter.Value())
		if compileErr != nil {
			errs = append(errs, convertCompileError(compileErr, "quantity."+iter.Label()))
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		result.Families = append(result.Families, fam)
	}

	if len(result.Families) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no families found in catalog"})
	}

	return result, errs
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// resolveFamilies returns the unit families a command should operate on:
// the compiled catalog when --catalog is set, the built-in catalog otherwise.
func resolveFamilies(opts *RootOptions, formatter *OutputFormatter) ([]*quantity.Family, error) {
	if opts.Catalog == "" {
		return quantity.Families(), nil
	}

	result, loadErrs := LoadCatalog(opts.Catalog, LoadModeFailFast)
	if len(loadErrs) > 0 {
		var loadErr *LoadError
		code := ErrCodeGeneric
		if errors.As(loadErrs[0], &loadErr) {
			code = loadErr.Code
		}
		if err := formatter.Error(code, loadErrs[0].Error(), nil); err != nil {
			return nil, err
		}
		return nil, NewExitError(ExitCommandError, loadErrs[0].Error())
	}
	formatter.VerboseLog("Loaded %d families from %d CUE file(s) in %s",
		len(result.Families), result.FileCount, opts.Catalog)
	return result.Families, nil
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error, context string) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Message: compileErr.Message,
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{
		Code:    ErrCodeGeneric,
		Message: fmt.Sprintf("%s: %v", context, err),
	}
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Catalog validation errors
	ErrCodeCanonical   = "E101" // Missing or inconsistent canonical unit
	ErrCodeUnits       = "E102" // Unit declaration error
	ErrCodeDisplay     = "E103" // Display table error
	ErrCodeDeclaration = "E104" // Engine declaration rule violation

	// Quantity errors
	ErrCodeUnknownUnit  = "E111" // Unit symbol not registered
	ErrCodeParseFailed  = "E112" // Quantity string did not parse
	ErrCodeCrossFamily  = "E113" // Source and target units belong to different families
	ErrCodeNoSuchFamily = "E114" // Family name not found
)

// MapFieldToErrorCode maps a compiler error field path to an error code.
func MapFieldToErrorCode(field string) string {
	switch {
	case field == "declaration":
		return ErrCodeDeclaration
	case strings.HasSuffix(field, ".canonical"):
		return ErrCodeCanonical
	case strings.Contains(field, ".units"):
		return ErrCodeUnits
	case strings.Contains(field, ".display"):
		return ErrCodeDisplay
	default:
		return ErrCodeGeneric
	}
}
