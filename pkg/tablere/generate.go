package tablere

import (
	"fmt"
	"go/token"

	"github.com/KromDaniel/tablere/internal/compiler"
)

// Options configures Go code generation for a pattern.
type Options struct {
	// Pattern is the pattern to compile
	Pattern string

	// Name is the generated type name (e.g., "Email" generates "Email" and "CompiledEmail")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile generates a test file next to OutputFile (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of test inputs for the generated test file. If empty and GenerateTestFile is true, defaults to []string{"example"}
	TestFileInputs []string

	// Verbose enables logging of generation steps to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(o.Name) {
		return fmt.Errorf("name %q is not a Go identifier", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a Go identifier", o.Package)
	}
	return nil
}

// Generate writes a standalone Go matcher for the pattern.
// It returns an error if the pattern is invalid or code generation fails.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	re, err := CompileWithConfig(opts.Pattern, Config{Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}

	generateTestFile := opts.GenerateTestFile
	testInputs := opts.TestFileInputs
	if len(testInputs) > 0 {
		generateTestFile = true
	} else if generateTestFile {
		testInputs = []string{"example"}
	}

	c := compiler.New(compiler.Config{
		Name:             opts.Name,
		Package:          opts.Package,
		FSM:              re.fsm,
		GenerateTestFile: generateTestFile,
		TestFileInputs:   testInputs,
		Verbose:          opts.Verbose,
	})
	c.SetOutputFile(opts.OutputFile)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
