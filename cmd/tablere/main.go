// Command tablere compiles a pattern and matches inputs against it.
//
// Usage:
//
//	tablere -pattern '.bc' -input Hello -input abc
//	tablere -pattern 'a*bc$' -file samples.txt
//	tablere -pattern 'a*bc$' -dump
//	tablere -pattern 'a*bc$' -o bc.go -name BC -package bc -test-input aaabc
//	tablere -pattern 'a*bc$' -save bc.tbl
//	tablere -load bc.tbl -input aaabc
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/tablere/pkg/tablere"
	"github.com/KromDaniel/tablere/stream"
	"github.com/edsrzf/mmap-go"
)

// arrayFlags is a repeatable string flag.
type arrayFlags []string

func (i *arrayFlags) String() string {
	return strings.Join(*i, ", ")
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

type options struct {
	pattern    string
	inputs     arrayFlags
	file       string
	dump       bool
	verbose    bool
	output     string
	name       string
	pkg        string
	testInputs arrayFlags
	save       string
	load       string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("tablere", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.pattern, "pattern", "", "pattern to compile")
	fs.Var(&opts.inputs, "input", "input to match (repeatable); remaining arguments are inputs too")
	fs.StringVar(&opts.file, "file", "", "file with one input per line")
	fs.BoolVar(&opts.dump, "dump", false, "print the transition table")
	fs.BoolVar(&opts.verbose, "verbose", false, "log compilation steps to stderr")
	fs.StringVar(&opts.output, "o", "", "write a generated Go matcher to this file")
	fs.StringVar(&opts.name, "name", "Pattern", "type name of the generated matcher")
	fs.StringVar(&opts.pkg, "package", "main", "package of the generated matcher")
	fs.Var(&opts.testInputs, "test-input", "input for the generated test file (repeatable)")
	fs.StringVar(&opts.save, "save", "", "write the compiled table to this file")
	fs.StringVar(&opts.load, "load", "", "read a compiled table instead of compiling -pattern")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.inputs = append(opts.inputs, fs.Args()...)

	if opts.pattern == "" && opts.load == "" {
		return nil, fmt.Errorf("one of -pattern or -load is required")
	}
	if opts.pattern != "" && opts.load != "" {
		return nil, fmt.Errorf("-pattern and -load are mutually exclusive")
	}
	if opts.output != "" && opts.load != "" {
		return nil, fmt.Errorf("-o requires -pattern")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	re, err := loadRegex(opts, stderr)
	if err != nil {
		return err
	}

	if opts.dump {
		if err := re.WriteDump(stdout); err != nil {
			return fmt.Errorf("failed to dump table: %w", err)
		}
		fmt.Fprintln(stdout, "------------------------")
		fmt.Fprintf(stdout, "Regex: '%s'\n", re.Pattern())
	}

	if opts.output != "" {
		err := tablere.Generate(tablere.Options{
			Pattern:        opts.pattern,
			Name:           opts.name,
			OutputFile:     opts.output,
			Package:        opts.pkg,
			TestFileInputs: opts.testInputs,
			Verbose:        opts.verbose,
		})
		if err != nil {
			return err
		}
	}

	if opts.save != "" {
		data, err := re.MarshalBinary()
		if err != nil {
			return fmt.Errorf("failed to encode table: %w", err)
		}
		if err := os.WriteFile(opts.save, data, 0644); err != nil {
			return fmt.Errorf("failed to save table: %w", err)
		}
	}

	for _, input := range opts.inputs {
		fmt.Fprintf(stdout, "%q => %v\n", input, re.MatchString(input))
	}

	if opts.file != "" {
		if err := matchFile(opts.file, re, stdout); err != nil {
			return err
		}
	}
	return nil
}

func loadRegex(opts *options, stderr io.Writer) (*tablere.Regex, error) {
	if opts.load == "" {
		return tablere.CompileWithConfig(opts.pattern, tablere.Config{
			Verbose:   opts.verbose,
			LogOutput: stderr,
		})
	}

	data, err := os.ReadFile(opts.load)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	re := &tablere.Regex{}
	if err := re.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("failed to load table %s: %w", opts.load, err)
	}
	return re, nil
}

// matchFile maps path into memory and matches it line by line.
func matchFile(path string, re *tablere.Regex, stdout io.Writer) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}
	// Empty files cannot be mapped.
	if info.Size() == 0 {
		return nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to map input file: %w", err)
	}
	defer func() {
		if uerr := data.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("failed to unmap input file: %w", uerr)
		}
	}()

	return stream.MatchReader(bytes.NewReader(data), re, stream.DefaultConfig(), func(l stream.Line) bool {
		fmt.Fprintf(stdout, "%q => %v\n", l.Text, l.Matched)
		return true
	})
}
