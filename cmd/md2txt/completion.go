package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2txt/internal/config"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool
}

// completionMeta holds completion hints the FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"log-format": {Values: config.LogFormats},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"output":     {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags come from the same FlagSet the convert command parses with.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:       cmdConvert,
			Desc:       "Convert markdown files to plain text",
			Flags:      extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles: true,
		},
		{Name: cmdStages, Desc: "List the transcoding stages in order"},
		{Name: cmdVersion, Desc: "Show version information"},
		{Name: cmdHelp, Desc: "Show help for a command"},
		{Name: cmdCompletion, Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2txt completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash   Bash completion script")
	fmt.Fprintln(w, "  zsh    Zsh completion script")
	fmt.Fprintln(w, "  fish   Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2txt completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2txt completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2txt completion fish > ~/.config/fish/completions/md2txt.fish")
}

// commandNames returns every command name, space separated.
func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns every long and short spelling of the flags.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// globExtensions turns "*.yaml,*.yml" into "yaml|yml" style alternatives.
func globExtensions(glob, sep string) string {
	parts := strings.Split(glob, ",")
	for i, p := range parts {
		parts[i] = strings.TrimPrefix(p, "*.")
	}
	return strings.Join(parts, sep)
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for md2txt\n")
	b.WriteString("_md2txt() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, c := range cmds {
		switch c.Name {
		case cmdCompletion:
			fmt.Fprintf(&b, "    %s)\n", c.Name)
			b.WriteString("        COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"$cur\"))\n")
			b.WriteString("        ;;\n")
		case cmdHelp:
			fmt.Fprintf(&b, "    %s)\n", c.Name)
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", commandNames(cmds))
			b.WriteString("        ;;\n")
		}
		if len(c.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        case \"$prev\" in\n")
		for _, f := range c.Flags {
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n            return\n            ;;\n",
					pattern, strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\"))\n            return\n            ;;\n",
					pattern, globExtensions(f.FileGlob, "|"))
			case flagDir:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -f -- \"$cur\"))\n            return\n            ;;\n", pattern)
			}
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", flagWords(c.Flags))
		b.WriteString("        else\n")
		b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		b.WriteString("        fi\n")
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _md2txt md2txt\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef md2txt\n\n")
	b.WriteString("_md2txt() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		switch {
		case c.Name == cmdCompletion:
			fmt.Fprintf(&b, "    %s)\n        _values 'shell' bash zsh fish\n        ;;\n", c.Name)
		case c.Name == cmdHelp:
			fmt.Fprintf(&b, "    %s)\n        _describe 'command' commands\n        ;;\n", c.Name)
		case len(c.Flags) > 0:
			fmt.Fprintf(&b, "    %s)\n", c.Name)
			b.WriteString("        _arguments \\\n")
			for _, f := range c.Flags {
				fmt.Fprintf(&b, "            %s \\\n", zshFlagSpec(f))
			}
			b.WriteString("            '*:markdown file:_files -g \"*.(md|markdown)\"'\n")
			b.WriteString("        ;;\n")
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2txt md2txt\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec renders one _arguments spec for a flag.
func zshFlagSpec(f flagDef) string {
	desc := strings.ReplaceAll(f.Desc, "'", "")
	desc = strings.NewReplacer("[", "(", "]", ")", ":", " ").Replace(desc)

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":%s:_files -g \"*.(%s)\"", f.Long, globExtensions(f.FileGlob, "|"))
	case flagDir:
		action = fmt.Sprintf(":%s:_files", f.Long)
	default:
		action = fmt.Sprintf(":%s:", f.Long)
	}

	if f.Short == "" {
		return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for md2txt\n")
	b.WriteString("complete -c md2txt -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c md2txt -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, c.Desc)
	}
	b.WriteString("complete -c md2txt -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'\n")
	fmt.Fprintf(&b, "complete -c md2txt -n '__fish_seen_subcommand_from help' -a '%s'\n", commandNames(cmds))

	for _, c := range cmds {
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c md2txt -n '__fish_seen_subcommand_from %s' -F\n", c.Name)
		}
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c md2txt -n '__fish_seen_subcommand_from %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile, flagDir:
				line += " -r -F"
			case flagString, flagInt:
				line += " -x"
			}
			line += fmt.Sprintf(" -d '%s'", strings.ReplaceAll(f.Desc, "'", ""))
			b.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
