package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/seqjoin/internal/cli/output"
	"github.com/leapstack-labs/seqjoin/internal/watch"
	"github.com/leapstack-labs/seqjoin/pkg/join"
	"github.com/leapstack-labs/seqjoin/pkg/sequence"
)

// JoinOptions holds options for the join command.
type JoinOptions struct {
	Files []string
	Watch bool
}

// JoinResult is one joined input.
type JoinResult struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
	Result string `json:"result"`
}

// NewJoinCommand creates the join command.
func NewJoinCommand() *cobra.Command {
	opts := &JoinOptions{}

	cmd := &cobra.Command{
		Use:   "join [elements...]",
		Short: "Join elements with a single separator",
		Long: `Join elements into one line, separated by the configured separator
(a single space by default), with no leading or trailing separator.

Elements come from the arguments, or from --file (one element per line,
blank lines ignored), or from standard input when neither is given.
Input lines may be at most 1 MiB long.
Several --file flags are read concurrently and printed in flag order.
With --watch the command runs until interrupted (Ctrl-C or SIGTERM).`,
		Example: `  # Join arguments
  seqjoin join alpha beta gamma

  # Join the lines of a file
  seqjoin join -f words.txt

  # Join with a different separator
  seqjoin join --separator ", " a b c

  # Re-join whenever the file changes
  seqjoin join -f words.txt --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "File with one element per line (repeatable)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-join the file whenever it changes (requires exactly one --file)")

	return cmd
}

func runJoin(cmd *cobra.Command, args []string, opts *JoinOptions) error {
	cmdCtx := NewCommandContext(cmd)
	sep := cmdCtx.Cfg.Separator
	logger := cmdCtx.Logger

	if len(args) > 0 && len(opts.Files) > 0 {
		return errors.New("elements and --file cannot be combined")
	}

	if opts.Watch {
		if len(opts.Files) != 1 {
			return errors.New("--watch requires exactly one --file")
		}
		path := opts.Files[0]
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("watching file", "path", path)
		return watch.File(ctx, path, watch.DefaultDebounce, func() error {
			res, err := joinFile(path, sep)
			if err != nil {
				return err
			}
			return renderJoin(cmdCtx.Renderer, []JoinResult{res})
		}, logger)
	}

	var results []JoinResult
	switch {
	case len(opts.Files) > 0:
		var err error
		results, err = joinFiles(cmd.Context(), opts.Files, sep)
		if err != nil {
			return err
		}
	case len(args) > 0:
		res, err := joinElements("args", args, sep)
		if err != nil {
			return err
		}
		results = []JoinResult{res}
	default:
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		res, err := joinElements("stdin", lines, sep)
		if err != nil {
			return err
		}
		results = []JoinResult{res}
	}

	for _, res := range results {
		logger.Debug("joined", "source", res.Source, "count", res.Count)
		if res.Count == 0 && res.Source != "stdin" {
			cmdCtx.Renderer.Warning(res.Source + " has no elements")
		}
	}
	return renderJoin(cmdCtx.Renderer, results)
}

func joinElements(source string, elems []string, sep string) (JoinResult, error) {
	s, err := join.JoinWith[string](sequence.Slice[string](elems), sep)
	if err != nil {
		return JoinResult{}, fmt.Errorf("%s: %w", source, err)
	}
	return JoinResult{Source: source, Count: len(elems), Result: s}, nil
}

func joinFile(path, sep string) (JoinResult, error) {
	lines, err := readLinesFile(path)
	if err != nil {
		return JoinResult{}, err
	}
	return joinElements(path, lines, sep)
}

// joinFiles joins every file concurrently. Results keep the order of paths.
func joinFiles(ctx context.Context, paths []string, sep string) ([]JoinResult, error) {
	results := make([]JoinResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := joinFile(path, sep)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderJoin(r *output.Renderer, results []JoinResult) error {
	mode := r.EffectiveMode()
	if mode == output.ModeJSON {
		if len(results) == 1 {
			return r.JSON(results[0])
		}
		return r.JSON(results)
	}

	if len(results) == 1 {
		r.Println(results[0].Result)
		return nil
	}
	markdown := mode == output.ModeMarkdown
	for _, res := range results {
		r.Header(2, res.Source)
		if markdown {
			r.Println("")
		}
		r.Println(res.Result)
		if markdown {
			r.Println("")
		}
	}
	return nil
}
