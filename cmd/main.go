package main

import (
	"bfcore/internal/logger"
	"bfcore/internal/runner"
	"bfcore/pkg/color"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the bfcore interpreter.
func main() {
	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode, dumps the final state")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.Source, "e", "", "Program text to run instead of a file")
	flag.StringVar(&options.InputFile, "i", "", "Read program input from file instead of stdin")
	flag.StringVar(&options.ConfigFile, "c", "", "YAML config file (tape_size, loop_limit, max_steps, dump_cells)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 && options.Source == "" {
		log.Fatal("No program provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if err := options.Run(); err != nil {
		log.Fatal("Run failed", "error", err)
	}
}
