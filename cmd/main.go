package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"numem/internal/logger"
	"numem/internal/shell"
	"numem/pkg/color"
)

// Main entry point for the numem memory shell.
func main() {
	options := shell.Shell{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.Interactive, "i", false, "Start the REPL after running the file")
	flag.BoolVar(&options.DumpOnExit, "d", false, "Dump memory after the file finishes")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.DumpFormat, "f", "", "Dump format (text, yaml); overrides the config file")
	flag.StringVar(&options.ConfigFile, "c", "", "Path to a YAML config file")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if err := options.Run(); err != nil {
		log.Fatal("Run failed", "error", err)
	}
}
