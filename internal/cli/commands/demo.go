package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/seqjoin/pkg/join"
)

// DemoMessage is the message the demo splits and re-joins.
const DemoMessage = "Hello      World!"

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Split and re-join a sample message",
		Long: `Split the sample message "Hello      World!" into a linked list of words
and join it back, printing "Hello World!".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			s, err := join.Join[string](join.Split(DemoMessage))
			if err != nil {
				return err
			}
			r.Println(s)
			return nil
		},
	}
}
