package commands

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/seqjoin/internal/cli/output"
	"github.com/leapstack-labs/seqjoin/pkg/join"
)

// SplitResult is the JSON form of the split command.
type SplitResult struct {
	Count    int      `json:"count"`
	Elements []string `json:"elements"`
}

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text into whitespace-separated elements",
		Long: `Split text on runs of whitespace and list the resulting elements.

The text is taken from the arguments, or from standard input when none are
given. Leading and trailing whitespace never produces empty elements.`,
		Example: `  # Split a message
  seqjoin split "Hello      World!"

  # Split standard input as JSON
  echo "a  b   c" | seqjoin split -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args)
		},
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		text = string(data)
	}

	elems := slices.Collect(join.Split(text).All())
	cmdCtx.Logger.Debug("split", "count", len(elems))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		if elems == nil {
			elems = []string{}
		}
		return r.JSON(SplitResult{Count: len(elems), Elements: elems})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Elements ("+strconv.Itoa(len(elems))+")"))
		r.Println("")
		for i, e := range elems {
			r.Printf("- %d: `%s`\n", i, e)
		}
		return nil
	default:
		if len(elems) == 0 {
			r.Muted("(0 elements)")
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Element"})
		for i, e := range elems {
			t.AppendRow(table.Row{i, e})
		}
		t.Render()
		return nil
	}
}
