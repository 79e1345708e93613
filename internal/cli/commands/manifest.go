package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/seqjoin/internal/cli/output"
	"github.com/leapstack-labs/seqjoin/internal/manifest"
)

// NewManifestCommand creates the manifest command.
func NewManifestCommand() *cobra.Command {
	var configuration string

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Show the logging module dependency manifest",
		Long: `Show the static manifest describing how the logging module is wired:
its plugins, the dependencies declared per configuration, and the
capabilities those dependencies provide.`,
		Example: `  # Show the whole manifest
  seqjoin manifest

  # Only implementation dependencies, as JSON
  seqjoin manifest --configuration implementation -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifest(cmd, configuration)
		},
	}

	cmd.Flags().StringVarP(&configuration, "configuration", "c", "", "Only show dependencies of this configuration")
	_ = cmd.RegisterFlagCompletionFunc("configuration", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		m, err := manifest.Load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return m.Configurations(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runManifest(cmd *cobra.Command, configuration string) error {
	r := NewCommandContext(cmd).Renderer

	m, err := manifest.Load()
	if err != nil {
		return err
	}

	deps := m.Dependencies
	if configuration != "" {
		deps = m.ByConfiguration(configuration)
		if len(deps) == 0 {
			return fmt.Errorf("no dependencies for configuration %q (available: %s)",
				configuration, strings.Join(m.Configurations(), ", "))
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		filtered := *m
		filtered.Dependencies = deps
		return r.JSON(struct {
			manifest.Manifest
			Capabilities []string `json:"capabilities"`
		}{filtered, m.Capabilities()})

	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Module "+m.Module))
		r.Println("")
		r.Println(m.Description)
		r.Println("")
		r.Printf("- Plugins: %s\n", strings.Join(m.Plugins, ", "))
		r.Printf("- Used in workers: %t\n", m.UsedInWorkers)
		r.Printf("- Capabilities: %s\n", strings.Join(m.Capabilities(), ", "))
		r.Println("")
		current := ""
		for _, d := range deps {
			if d.Configuration != current {
				if current != "" {
					r.Println("")
				}
				current = d.Configuration
				r.Println(output.FormatHeader(2, current))
				r.Println("")
			}
			r.Printf("- `%s` (%s)\n", d.Name, d.Kind)
		}
		return nil

	default:
		styles := r.Styles()
		r.Println(styles.Header.Render(fmt.Sprintf("%s: %s", m.Module, m.Description)))
		r.Printf("Plugins: %s\n", strings.Join(m.Plugins, ", "))
		r.Printf("Capabilities: %s\n", styles.Info.Render(strings.Join(m.Capabilities(), ", ")))

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Configuration", "Kind", "Dependency"})
		for _, d := range deps {
			t.AppendRow(table.Row{d.Configuration, d.Kind, d.Name})
		}
		t.Render()
		return nil
	}
}
