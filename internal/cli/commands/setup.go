package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/seqjoin/internal/cli/config"
	"github.com/leapstack-labs/seqjoin/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the config, logger and renderer for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the loaded configuration, or defaults overlaid with
// SEQJOIN_ environment variables when the command runs without the root.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	cfg := config.Default()
	if v, ok := os.LookupEnv("SEQJOIN_SEPARATOR"); ok {
		cfg.Separator = v
	}
	if v := os.Getenv("SEQJOIN_OUTPUT"); v != "" {
		cfg.OutputFormat = v
	}
	cfg.Verbose = os.Getenv("SEQJOIN_VERBOSE") == "true"
	return cfg
}

// maxLineSize is the longest input line readLines accepts.
const maxLineSize = 1024 * 1024

// readLines returns the non-blank lines of r with surrounding whitespace
// removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("input line %d exceeds the %d byte line limit: %w", lineNo+1, maxLineSize, err)
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

// readLinesFile reads the non-blank lines of the file at path.
func readLinesFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // input path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
