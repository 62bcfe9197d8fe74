package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"numem/pkg/color"
	"numem/pkg/lexer"
	"numem/pkg/memory"
	"numem/pkg/parser"
)

type DumpFormat string

const (
	DumpText DumpFormat = "text"
	DumpYAML DumpFormat = "yaml"
)

// Interpreter executes statements against a single memory store.
type Interpreter struct {
	mem    *memory.Memory
	out    io.Writer  // output writer for reads and diagnostics
	format DumpFormat // format used by the dump statement

	steps int // statements executed
}

type Option func(*Interpreter)

// WithWriter sets the output writer
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithMemory runs statements against an existing store
func WithMemory(m *memory.Memory) Option {
	return func(i *Interpreter) { i.mem = m }
}

// WithDumpFormat selects how the dump statement renders the store
func WithDumpFormat(f DumpFormat) Option {
	return func(i *Interpreter) { i.format = f }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(opts ...Option) *Interpreter {
	it := &Interpreter{format: DumpText}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.mem == nil {
		it.mem = memory.New()
	}

	return it
}

// Memory returns the store the interpreter writes to
func (i *Interpreter) Memory() *memory.Memory {
	return i.mem
}

// Steps returns how many statements have been executed
func (i *Interpreter) Steps() int {
	return i.steps
}

// Run executes statements in order and stops at the first error
func (i *Interpreter) Run(stmts []parser.Statement) error {
	for _, s := range stmts {
		if err := i.Exec(s); err != nil {
			return err
		}
	}

	return nil
}

// EvalSource parses and runs src. Syntax errors are returned together as a
// *SyntaxError and nothing is executed.
func (i *Interpreter) EvalSource(src string) error {
	p := parser.NewParser(lexer.NewLexer(src))
	stmts := p.Parse()

	if errs := p.Errors(); len(errs) > 0 {
		return &SyntaxError{Messages: errs}
	}

	return i.Run(stmts)
}

// Exec executes a single statement
func (i *Interpreter) Exec(s parser.Statement) error {
	i.steps++

	if err := i.exec(s); err != nil {
		return fmt.Errorf("line %d: %s: %w", s.Pos.Line, s, err)
	}

	return nil
}

func (i *Interpreter) exec(s parser.Statement) error {
	switch s.Kind {
	case parser.StmtAssign:
		v, err := i.eval(s.Expr)
		if err != nil {
			return err
		}
		return i.store(s.Target, v)

	case parser.StmtRead:
		v, err := i.load(s.Target)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.out, formatValue(color.For(i.out), v))
		return err

	case parser.StmtAddrOf:
		addr, err := i.mem.Address(s.Target.Name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.out, addr)
		return err

	case parser.StmtCommand:
		return i.command(s.Command)

	default:
		return fmt.Errorf("%w: statement kind %d", ErrUnknownStatement, s.Kind)
	}
}

func (i *Interpreter) command(cmd lexer.TokenType) error {
	switch cmd {
	case lexer.PRINT:
		return i.mem.Print(i.out)
	case lexer.MAP:
		return i.mem.PrintMap(i.out)
	case lexer.DUMP:
		return i.Dump()
	case lexer.SIZE:
		_, err := fmt.Fprintln(i.out, i.mem.Size())
		return err
	case lexer.CAPACITY:
		_, err := fmt.Fprintln(i.out, i.mem.Capacity())
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStatement, cmd)
	}
}

// Dump writes the whole store in the configured format
func (i *Interpreter) Dump() error {
	switch i.format {
	case DumpText:
		if err := i.mem.Print(i.out); err != nil {
			return err
		}
		return i.mem.PrintMap(i.out)
	case DumpYAML:
		return i.mem.WriteYAML(i.out)
	default:
		return fmt.Errorf("unknown dump format %q", i.format)
	}
}

// eval produces the value of an expression. References are read as copies.
func (i *Interpreter) eval(e parser.Expr) (memory.Value, error) {
	if !e.IsRef {
		return e.Value, nil
	}

	return i.load(e.Ref)
}

func (i *Interpreter) load(r parser.Ref) (memory.Value, error) {
	if r.ByAddr {
		return i.mem.ReadAddr(r.Addr)
	}

	return i.mem.ReadName(r.Name)
}

func (i *Interpreter) store(r parser.Ref, v memory.Value) error {
	if r.ByAddr {
		return i.mem.WriteAddr(v, r.Addr)
	}

	i.mem.WriteName(v, r.Name)
	return nil
}

// SyntaxError carries every parse error of a source text.
type SyntaxError struct {
	Messages []string
}

func (e *SyntaxError) Error() string {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}

	return fmt.Sprintf("%d syntax errors:\n%s", len(e.Messages), strings.Join(e.Messages, "\n"))
}

var (
	ErrUnknownStatement = errors.New("unknown statement")
)
