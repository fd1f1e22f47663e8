package main

import (
	"fmt"
	"io"
	"os"

	"imp/interpreter-go/pkg/interpreter"
	"imp/interpreter-go/pkg/parser"
	"imp/interpreter-go/pkg/repl"
)

const cliToolVersion = "imp-cli 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runInteractive()
	}

	switch args[0] {
	case "--help", "-h":
		printUsage(os.Stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "imp run requires exactly one source file")
			return 1
		}
		return runFile(args[1])
	default:
		return runFile(args[0])
	}
}

func runInteractive() int {
	cfg, err := repl.LoadConfig(os.Getenv("IMP_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	reader, err := repl.NewTerminalReader(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer reader.Close()

	if err := repl.NewLoop(reader, os.Stdout, os.Stderr).Run(); err != nil {
		return 1
	}
	return 0
}

// runFile executes one program file against a fresh state and prints the
// resulting bindings, mirroring a single REPL turn.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}
	prog, err := parser.Parse(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "syntax error: %v\n", err)
		return 1
	}
	state, err := interpreter.New().EvaluateProgram(prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluation error: %v\n", err)
		return 1
	}
	fmt.Fprintln(os.Stdout, repl.FormatBindings(state))
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imp [command]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  (none)          start the interactive prompt")
	fmt.Fprintln(w, "  run <file>      evaluate a program file and print its bindings")
	fmt.Fprintln(w, "  <file>          shorthand for run <file>")
	fmt.Fprintln(w, "  --version, -V   print the CLI version")
	fmt.Fprintln(w, "  --help, -h      show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  IMP_CONFIG      path to a yaml config file (default ./imp.yml)")
}
