package runner

import (
	"bfcore/internal/config"
	"bfcore/pkg/color"
	"bfcore/pkg/console"
	"bfcore/pkg/interpreter"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type Runner struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	SourceFile string // Path to the program file
	Source     string // Inline program text, used instead of SourceFile when set
	InputFile  string // Path to the program input, stdin when empty
	ConfigFile string // Path to a YAML config file

	Stdin  io.Reader // defaults to os.Stdin
	Stdout io.Writer // defaults to os.Stdout
	Report io.Writer // destination of the verbose state dump, defaults to os.Stderr
}

// Run loads the program and its config, executes it once, and reports the final state when verbose.
func (opts *Runner) Run() error {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Debug("Loaded config", "file", cfg.Path, "tape_size", cfg.TapeSize, "loop_limit", cfg.LoopLimit, "max_steps", cfg.MaxSteps)
	}

	source, err := opts.source()
	if err != nil {
		return err
	}

	stdin, closeInput, err := opts.input()
	if err != nil {
		return err
	}
	defer closeInput()

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	reader := console.NewReader(stdin)
	writer := console.NewWriter(stdout)
	intr := interpreter.New(source, reader, writer, cfg.Options()...)

	prog := intr.Program()
	if prog.Truncated() {
		log.Warn("Program longer than tape, truncated", "kept", prog.Len(), "tape_size", prog.Cap())
	}
	log.Debug("Loaded program", "length", prog.Len(), "source", prog.String())

	runErr := intr.Run()
	log.Debug("Run finished", "steps", intr.State().Steps, "written", writer.Count(), "pending_input", reader.Buffered())

	if opts.Verbose {
		opts.dump(intr, cfg.DumpCells, runErr)
	}

	if runErr != nil {
		var execErr *interpreter.ExecError
		if errors.As(runErr, &execErr) {
			log.Error("Execution aborted", "ip", execErr.IP, "op", string(rune(execErr.Op)), "error", execErr.Err)
		}
		return fmt.Errorf("execution failed: %w", runErr)
	}

	return nil
}

// source returns the program text from Source or SourceFile
func (opts *Runner) source() (string, error) {
	if opts.Source != "" {
		log.Info("Processing inline program", "length", len(opts.Source))
		return opts.Source, nil
	}

	if opts.SourceFile == "" {
		return "", errors.New("no program given")
	}

	log.Info("Processing file", "file", opts.SourceFile)

	data, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return "", fmt.Errorf("read program: %w", err)
	}

	return string(data), nil
}

// input opens the program input; the returned func releases it
func (opts *Runner) input() (io.Reader, func(), error) {
	if opts.InputFile != "" {
		f, err := os.Open(opts.InputFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		return f, func() { f.Close() }, nil
	}

	if opts.Stdin != nil {
		return opts.Stdin, func() {}, nil
	}

	return os.Stdin, func() {}, nil
}

// dump prints the registers, any open loops, the run error and the first
// cells of the data tape
func (opts *Runner) dump(intr *interpreter.Interpreter, cells int, runErr error) {
	w := opts.Report
	if w == nil {
		w = os.Stderr
	}

	state := intr.State()
	prog := intr.Program()

	fmt.Fprintln(w, color.GreenText("\n=== Final State ==="))
	fmt.Fprintf(w, "ip: %s\n", color.Instruction(state.IP, rune(prog.At(state.IP))))
	fmt.Fprintf(w, "dp: %s  depth: %d/%d  steps: %d\n", color.CyanText(fmt.Sprintf("%d", state.DP)), state.LoopDepth, state.LoopLimit, state.Steps)

	if len(state.OpenLoops) > 0 {
		open := make([]string, 0, len(state.OpenLoops))
		for _, ip := range state.OpenLoops {
			open = append(open, color.Instruction(ip, rune(prog.At(ip))))
		}
		fmt.Fprintf(w, "open loops: %s\n", strings.Join(open, ", "))
	}

	if runErr != nil {
		fmt.Fprintln(w, color.BrightRedText("=== Execution Error ==="))
		fmt.Fprintln(w, color.RedText(runErr.Error()))
	}

	if cells == 0 {
		return
	}

	parts := make([]string, 0, cells)
	for i, v := range intr.Cells(cells) {
		parts = append(parts, color.Cell(i, v, i == state.DP))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
