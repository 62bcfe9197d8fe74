package shell

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"numem/internal/config"
	"numem/pkg/color"
	"numem/pkg/interpreter"
	"numem/pkg/lexer"
	"numem/pkg/memory"
	"numem/pkg/parser"
)

type Shell struct {
	Help        bool   // Show help message
	Verbose     bool   // Enable verbose output
	Interactive bool   // Start the REPL even when a file is given
	DumpOnExit  bool   // Dump the memory after a script finishes
	NoColor     bool   // Disable colored output
	DumpFormat  string // Overrides the configured dump format when set
	ConfigFile  string // Path to the YAML config file
	SourceFile  string // Path to the script to run

	Out io.Writer // Defaults to stdout

	cfg *config.Config
	it  *interpreter.Interpreter
}

// Run loads the config, runs the script if one is given, and starts the REPL
// when requested or when there is no script.
func (s *Shell) Run() error {
	if err := s.setup(); err != nil {
		return err
	}

	if s.SourceFile != "" {
		if err := s.RunFile(s.SourceFile); err != nil {
			return err
		}

		if s.DumpOnExit {
			if err := s.it.Dump(); err != nil {
				return err
			}
		}
	}

	if s.SourceFile == "" || s.Interactive {
		return s.repl()
	}

	return nil
}

func (s *Shell) setup() error {
	cfg, err := config.Load(s.ConfigFile)
	if err != nil {
		return err
	}
	s.cfg = cfg

	if s.DumpFormat != "" {
		cfg.DumpFormat = s.DumpFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if s.NoColor || !cfg.ColorEnabled() {
		color.EnableColor(false)
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	mem := memory.New(memory.WithInitialCapacity(cfg.InitialCapacity))
	s.it = interpreter.NewInterpreter(
		interpreter.WithWriter(s.Out),
		interpreter.WithMemory(mem),
		interpreter.WithDumpFormat(interpreter.DumpFormat(cfg.DumpFormat)),
	)

	log.Debug("Memory ready", "capacity", mem.Capacity(), "dump", cfg.DumpFormat)
	return nil
}

// Memory returns the store used by the shell; nil before Run.
func (s *Shell) Memory() *memory.Memory {
	if s.it == nil {
		return nil
	}
	return s.it.Memory()
}

// RunFile parses the whole file first and executes it only when it has no
// syntax errors. Execution stops at the first runtime error.
func (s *Shell) RunFile(path string) error {
	if s.it == nil {
		if err := s.setup(); err != nil {
			return err
		}
	}

	log.Info("Processing file", "file", path)

	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	p := parser.NewParser(lexer.NewLexer(string(input)))
	stmts := p.Parse()

	syntaxErrors := p.Errors()
	if len(syntaxErrors) > 0 {
		fmt.Fprintln(s.Out, color.BrightRedText("=== Syntax Errors ==="))
		for _, e := range syntaxErrors {
			fmt.Fprintln(s.Out, e)
		}
		return fmt.Errorf("parsing failed with %d errors", len(syntaxErrors))
	}

	if s.Verbose {
		fmt.Fprintln(s.Out, color.GreenText("=== Statements ==="))
		for i, stmt := range stmts {
			fmt.Fprintf(s.Out, "%s: %s\n", color.CyanText(fmt.Sprintf("%d", i)), stmt)
		}
		fmt.Fprintln(s.Out, color.GreenText("=== Output ==="))
	}

	if err := s.it.Run(stmts); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	log.Debug("Script finished", "statements", s.it.Steps(), "size", s.Memory().Size(), "capacity", s.Memory().Capacity())
	return nil
}
