package main

import (
	"fmt"
	"io"

	md2txt "github.com/alnah/go-md2txt"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2txt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files to plain text")
	fmt.Fprintln(w, "  stages      List the transcoding stages in order")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2txt help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2txt convert <input|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to plain text.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "      --stdout              Print text instead of writing files")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Transcoding:")
	fmt.Fprintln(w, "      --front-matter        Strip leading YAML front matter")
	fmt.Fprintln(w, "      --lint                Report constructs rendered lossily")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and debug logs")
	fmt.Fprintln(w, "      --log-format <s>      Log format: console, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2TXT_CONFIG, MD2TXT_INPUT_DIR, MD2TXT_OUTPUT_DIR, MD2TXT_WORKERS,")
	fmt.Fprintln(w, "  MD2TXT_LOG_LEVEL, MD2TXT_LOG_FORMAT, MD2TXT_FRONT_MATTER")
}

// runStages prints the pipeline stages, one numbered line each.
func runStages(w io.Writer) {
	for i, name := range md2txt.Stages() {
		fmt.Fprintf(w, "%2d. %s\n", i+1, name)
	}
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdConvert:
		printConvertUsage(env.Stdout)
	case cmdStages:
		fmt.Fprintln(env.Stdout, "Usage: md2txt stages")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List the transcoding stages in the order they run.")
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: md2txt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: md2txt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
