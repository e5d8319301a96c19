// Package compiler generates standalone Go matchers from compiled tables.
package compiler

import (
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/tablere/internal/codegen"
	"github.com/KromDaniel/tablere/internal/fsm"
	"github.com/dave/jennifer/jen"
)

var errNoTable = errors.New("no table to generate")

// Config holds the configuration for code generation.
type Config struct {
	Name             string
	OutputFile       string
	Package          string
	FSM              *fsm.FSM
	GenerateTestFile bool     // Generate test file with tests and benchmarks
	TestFileInputs   []string // Test inputs for generated test file
	Verbose          bool     // Enable verbose logging of generation steps
}

// Compiler generates Go code from a compiled table.
type Compiler struct {
	config Config
	file   *jen.File
	logger *fsm.Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: fsm.NewLogger(config.Verbose),
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

// Render writes the generated matcher source to w without formatting it.
func (c *Compiler) Render(w io.Writer) error {
	if c.config.FSM == nil {
		return errNoTable
	}
	c.build()
	return c.file.Render(w)
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	if c.config.FSM == nil {
		return errNoTable
	}
	c.build()

	// Save to file
	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	// Format the generated file
	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}
	c.logger.Log("Wrote %s", c.config.OutputFile)

	// Generate test file if requested
	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

func (c *Compiler) build() {
	c.file = jen.NewFile(c.config.Package)
	f := c.config.FSM

	c.logger.Section("Code Generation")
	c.logger.Log("Pattern: %s", f.Pattern())
	c.logger.Log("States: %d", f.NumStates())

	c.file.Comment(fmt.Sprintf("Code generated by tablere for pattern: %s", f.Pattern()))
	c.file.Comment("DO NOT EDIT.")
	c.file.Line()

	// Generate the main struct type
	c.file.Type().Id(c.config.Name).Struct()
	c.file.Line()

	// Generate convenience variable for direct usage
	c.file.Var().Id(codegen.CompiledName(c.config.Name)).Op("=").Id(c.config.Name).Values()
	c.file.Line()

	c.file.Const().Id(codegen.NumStatesName(c.config.Name)).Op("=").Lit(f.NumStates())
	c.file.Line()

	c.generateTable()

	c.method("MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Bool()).
		Block(c.generateMatchBody()...)

	c.method("MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(c.generateMatchBody()...)

	c.generateSettle()
}

// generateTable emits the packed table. Only entries other than the
// failure action are listed since it packs to zero.
func (c *Compiler) generateTable() {
	f := c.config.FSM
	packed := f.Packed()

	rows := jen.Dict{}
	entries := 0
	for state := 1; state < f.NumStates(); state++ {
		col := jen.Dict{}
		for sym := 0; sym < fsm.AlphabetSize; sym++ {
			if v := packed[state*fsm.AlphabetSize+sym]; v != 0 {
				col[jen.Lit(sym)] = jen.Lit(int(v))
			}
		}
		if len(col) == 0 {
			continue
		}
		entries += len(col)
		rows[jen.Lit(state)] = jen.Values(col)
	}
	c.logger.Log("Table entries: %d", entries)

	c.file.Comment("Each entry is target<<1, with the low bit set for moves that do not consume input.")
	c.file.Var().Id(codegen.TableName(c.config.Name)).Op("=").
		Index(jen.Id(codegen.NumStatesName(c.config.Name))).
		Index(jen.Lit(fsm.AlphabetSize)).
		Uint32().
		Values(rows)
	c.file.Line()
}

// generateMatchBody emits the matching loop. It is identical for string
// and []byte input since both index to a byte.
func (c *Compiler) generateMatchBody() []jen.Code {
	table := codegen.TableName(c.config.Name)
	numStates := codegen.NumStatesName(c.config.Name)

	return []jen.Code{
		jen.Id(codegen.StateName).Op(":=").Uint32().Call(jen.Lit(int(fsm.InitialState))),
		jen.Id(codegen.OffsetName).Op(":=").Lit(0),
		jen.Id(codegen.InputLenName).Op(":=").Len(jen.Id(codegen.InputName)),
		jen.For(
			jen.Id(codegen.StateName).Op(">").Lit(0).
				Op("&&").Id(codegen.StateName).Op("<").Id(numStates).
				Op("&&").Id(codegen.OffsetName).Op("<").Id(codegen.InputLenName),
		).Block(
			jen.Id(codegen.CharName).Op(":=").Id(codegen.InputName).Index(jen.Id(codegen.OffsetName)),
			jen.If(jen.Id(codegen.CharName).Op(">=").Lit(int(fsm.MaxASCIISymbol))).Block(
				jen.Return(jen.False()),
			),
			jen.Id(codegen.ActionName).Op(":=").Id(table).Index(jen.Id(codegen.StateName)).Index(jen.Id(codegen.CharName)),
			jen.Id(codegen.StateName).Op("=").Id(codegen.ActionName).Op(">>").Lit(1),
			jen.If(jen.Id(codegen.ActionName).Op("&").Lit(1).Op("==").Lit(0)).Block(
				jen.Id(codegen.OffsetName).Op("++"),
			),
		),
		jen.Return(jen.Id(codegen.SettleName(c.config.Name)).Call(jen.Id(codegen.StateName))),
	}
}

// generateSettle emits the end-of-input resolution shared by both methods.
func (c *Compiler) generateSettle() {
	table := codegen.TableName(c.config.Name)
	numStates := codegen.NumStatesName(c.config.Name)

	c.file.Func().Id(codegen.SettleName(c.config.Name)).
		Params(jen.Id(codegen.StateName).Uint32()).
		Params(jen.Bool()).
		Block(
			jen.For(
				jen.Id(codegen.StateName).Op(">").Lit(0).
					Op("&&").Id(codegen.StateName).Op("<").Id(numStates),
			).Block(
				jen.Id(codegen.ActionName).Op(":=").Id(table).Index(jen.Id(codegen.StateName)).Index(jen.Lit(int(fsm.EndOfInput))),
				jen.Id(codegen.StateName).Op("=").Id(codegen.ActionName).Op(">>").Lit(1),
				jen.If(jen.Id(codegen.ActionName).Op("&").Lit(1).Op("==").Lit(0)).Block(
					jen.Break(),
				),
			),
			jen.Return(jen.Id(codegen.StateName).Op(">=").Id(numStates)),
		)
}

// generateTestFile writes a _test.go next to the output file. Expected
// results come from matching the inputs against the table now.
func (c *Compiler) generateTestFile() error {
	testPath := strings.TrimSuffix(c.config.OutputFile, ".go") + "_test.go"
	c.logger.Log("Generating test file %s with %d inputs", testPath, len(c.config.TestFileInputs))

	tf := jen.NewFile(c.config.Package)
	tf.Comment(fmt.Sprintf("Code generated by tablere for pattern: %s", c.config.FSM.Pattern()))
	tf.Comment("DO NOT EDIT.")
	tf.Line()

	cases := make([]jen.Code, 0, len(c.config.TestFileInputs))
	for _, input := range c.config.TestFileInputs {
		cases = append(cases, jen.Values(jen.Lit(input), jen.Lit(c.config.FSM.MatchString(input))))
	}

	compiled := codegen.CompiledName(c.config.Name)
	tt := codegen.TestCaseName

	tf.Func().Id("Test"+codegen.UpperFirst(c.config.Name)+"Match").
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(
			jen.Id(codegen.TestCasesName).Op(":=").Index().Struct(
				jen.Id(codegen.InputName).String(),
				jen.Id(codegen.TestWantName).Bool(),
			).Values(cases...),
			jen.Line(),
			jen.For(jen.List(jen.Id("_"), jen.Id(tt)).Op(":=").Range().Id(codegen.TestCasesName)).Block(
				jen.If(
					jen.Id("got").Op(":=").Id(compiled).Dot("MatchString").Call(jen.Id(tt).Dot(codegen.InputName)),
					jen.Id("got").Op("!=").Id(tt).Dot(codegen.TestWantName),
				).Block(
					jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchString(%q) = %v, want %v"), jen.Id(tt).Dot(codegen.InputName), jen.Id("got"), jen.Id(tt).Dot(codegen.TestWantName)),
				),
				jen.If(
					jen.Id("got").Op(":=").Id(compiled).Dot("MatchBytes").Call(jen.Index().Byte().Call(jen.Id(tt).Dot(codegen.InputName))),
					jen.Id("got").Op("!=").Id(tt).Dot(codegen.TestWantName),
				).Block(
					jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchBytes(%q) = %v, want %v"), jen.Id(tt).Dot(codegen.InputName), jen.Id("got"), jen.Id(tt).Dot(codegen.TestWantName)),
				),
			),
		)
	tf.Line()

	inputs := make([]jen.Code, 0, len(c.config.TestFileInputs))
	for _, input := range c.config.TestFileInputs {
		inputs = append(inputs, jen.Lit(input))
	}
	tf.Func().Id("Benchmark"+codegen.UpperFirst(c.config.Name)+"MatchString").
		Params(jen.Id("b").Op("*").Qual("testing", "B")).
		Block(
			jen.Id("inputs").Op(":=").Index().String().Values(inputs...),
			jen.Id("b").Dot("ResetTimer").Call(),
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
				jen.For(jen.List(jen.Id("_"), jen.Id(codegen.InputName)).Op(":=").Range().Id("inputs")).Block(
					jen.Id(compiled).Dot("MatchString").Call(jen.Id(codegen.InputName)),
				),
			),
		)

	if err := tf.Save(testPath); err != nil {
		return err
	}
	return formatFile(testPath)
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
