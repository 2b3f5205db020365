package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	path   string
	stdout bool
}

// transcodeFlags holds flags that change what a conversion produces.
type transcodeFlags struct {
	frontMatter bool
	lint        bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    outputFlags
	transcode transcodeFlags
	workers   int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and debug logs")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: console, json")
}

// addOutputFlags adds output destination flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file or directory")
	fs.BoolVar(&f.stdout, "stdout", false, "print text to stdout instead of writing files")
}

// addTranscodeFlags adds transcoding flags to a FlagSet.
func addTranscodeFlags(fs *flag.FlagSet, f *transcodeFlags) {
	fs.BoolVar(&f.frontMatter, "front-matter", false, "strip leading YAML front matter")
	fs.BoolVar(&f.lint, "lint", false, "report constructs the transcoder renders lossily")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet.
// Shared by parsing and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addOutputFlags(fs, &f.output)
	addTranscodeFlags(fs, &f.transcode)
	addCommonFlags(fs, &f.common)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// A bare "-" is kept as a positional argument meaning stdin.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
