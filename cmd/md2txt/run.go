package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2txt "github.com/alnah/go-md2txt"
	"github.com/alnah/go-md2txt/internal/config"
	"github.com/alnah/go-md2txt/internal/hints"
)

// Command names.
const (
	cmdConvert    = "convert"
	cmdStages     = "stages"
	cmdVersion    = "version"
	cmdHelp       = "help"
	cmdCompletion = "completion"
)

// ErrUnknownCommand is returned by help for names that are not commands.
var ErrUnknownCommand = errors.New("unknown command")

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case cmdConvert, cmdStages, cmdVersion, cmdHelp, cmdCompletion:
		return true
	}
	return false
}

// runMain dispatches args (program name first) and returns the exit code.
// Anything that is not a command is treated as convert arguments.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		cmd, rest = cmdConvert, args[1:]
	}

	var err error
	switch cmd {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2txt %s\n", Version)
	case cmdStages:
		runStages(env.Stdout)
	case cmdHelp:
		err = runHelp(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	case cmdConvert:
		return runConvertCommand(rest, env)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// runConvertCommand parses convert flags, runs the batch under a signal
// aware context and reports the error with hints.
func runConvertCommand(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConvertUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'md2txt help convert' for usage.")
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err = runConvert(ctx, positional, flags, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, flags, env))
	}
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *convertFlags, env *Environment) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		name := flags.common.config
		if name == "" {
			name = env.getenv(envPrefix + "CONFIG")
		}
		return hints.ForConfigNotFound(config.SearchPaths(name))
	case errors.Is(err, ErrNoMarkdownFiles):
		return hints.ForNoMarkdownFiles()
	case errors.Is(err, config.ErrInvalidExtension):
		return hints.ForInvalidExtension()
	case errors.Is(err, md2txt.ErrInputTooLarge):
		limit := md2txt.DefaultMaxInputSize
		if env.Config != nil && env.Config.Convert.MaxInputSize > 0 {
			limit = env.Config.Convert.MaxInputSize
		}
		return hints.ForInputTooLarge(limit)
	case errors.Is(err, ErrLintFindings):
		return hints.ForLintFindings()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
