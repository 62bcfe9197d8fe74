package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"

	"numem/pkg/color"
	"numem/pkg/lexer"
)

const banner = "numem memory shell\nCtrl+C cancels input, Ctrl+D exits. Type :help for help."

const helpText = `Statements:
  x = 123 | 1.5 | "text" | True | None | ptr(42)   bind a variable
  y = x, z = @0                                    copy from a variable or address
  @0 = 456                                         overwrite the cell at an address
  x, @0                                            show a value
  addr x                                           show the address of x
  size, capacity                                   show counts
  print, map, dump                                 show the memory
Commands:
  :help    Show this help
  :reset   Drop every variable
  :quit    Exit
`

func (s *Shell) repl() error {
	fmt.Fprintln(s.Out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	histPath := s.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				log.Warn("Could not save history", "file", histPath, "error", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for {
		line, err := ln.Prompt(s.cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		if quit := s.handleLine(line); quit {
			return nil
		}
	}
}

// handleLine runs one line of REPL input. Errors are printed and the session
// continues. It returns true when the user asked to quit.
func (s *Shell) handleLine(line string) bool {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(trimmed) {
		case ":quit", ":q", ":exit":
			return true
		case ":help":
			fmt.Fprint(s.Out, helpText)
		case ":reset":
			s.Memory().Reset()
			fmt.Fprintln(s.Out, color.Info("memory cleared"))
		default:
			fmt.Fprintln(s.Out, color.Error("unknown command "+trimmed+". Type :help for help."))
		}
		return false
	}

	if trimmed == "" {
		return false
	}

	if err := s.it.EvalSource(line); err != nil {
		fmt.Fprintln(s.Out, color.Error(err.Error()))
	}

	return false
}

// complete offers bound variable names and keywords for the word under the
// cursor.
func (s *Shell) complete(line string) []string {
	start := strings.LastIndexAny(line, " \t;=@") + 1
	head, word := line[:start], line[start:]
	if word == "" {
		return nil
	}

	candidates := s.Memory().Names()
	for kw := range lexer.Keywords {
		candidates = append(candidates, kw)
	}
	sort.Strings(candidates)

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			out = append(out, head+c)
		}
	}

	return out
}

func (s *Shell) historyPath() string {
	if s.cfg.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(s.cfg.HistoryFile) {
		return s.cfg.HistoryFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, s.cfg.HistoryFile)
}
