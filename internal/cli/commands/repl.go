package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/seqjoin/pkg/join"
)

const replPrompt = "seqjoin> "

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively split and re-join lines",
		Long: `Start an interactive session. Every line typed is split on whitespace and
joined back with the configured separator.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	sess := &replSession{
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		separator: cmdCtx.Cfg.Separator,
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cmdCtx.Cfg.HistoryFile,
		AutoComplete:    newDotCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	cmdCtx.Logger.Debug("repl started", "history", cmdCtx.Cfg.HistoryFile)
	_, _ = fmt.Fprintln(sess.out, "seqjoin REPL")
	_, _ = fmt.Fprintln(sess.out, "Type .help for commands, .quit to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if sess.eval(line) {
			return nil
		}
	}
}

// replSession evaluates REPL input independently of the terminal.
type replSession struct {
	out       io.Writer
	errOut    io.Writer
	separator string
}

// eval handles one input line and reports whether the session should end.
func (s *replSession) eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	out, err := join.JoinWith[string](join.Split(line), s.separator)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	_, _ = fmt.Fprintln(s.out, out)
	return false
}

func (s *replSession) dotCommand(line string) bool {
	command, arg, _ := strings.Cut(line, " ")

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".separator":
		if arg == "" {
			_, _ = fmt.Fprintf(s.out, "separator: %s\n", strconv.Quote(s.separator))
			return false
		}
		sep, err := strconv.Unquote(arg)
		if err != nil {
			sep = arg
		}
		s.separator = sep
		_, _ = fmt.Fprintf(s.out, "separator set to %s\n", strconv.Quote(s.separator))

	case ".count":
		_, _ = fmt.Fprintln(s.out, join.Split(arg).Size())

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help              Show this help message
  .separator [sep]   Show or set the separator (Go quoted strings allowed, e.g. "\t")
  .count <text>      Count the elements of text
  .quit / .exit      Exit the REPL

Any other line is split on whitespace and joined with the separator.
`
	_, _ = fmt.Fprintln(w, help)
}

func newDotCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".separator"),
		readline.PcItem(".count"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
