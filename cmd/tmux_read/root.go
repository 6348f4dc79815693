package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tmux_read/pkg/capture"
	"tmux_read/pkg/config"
	"tmux_read/pkg/logging"
	"tmux_read/pkg/version"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootOptions struct {
	configPath string
	logFile    string
	logLevel   string
	logFormat  string
	scrollback int
	strict     bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tmux_read",
		Short: "Print the output of the last command from captured pane text",
		Long: `tmux_read reads captured terminal scrollback on stdin and prints the
output of the most recent command: the lines between the previous shell
prompt and the current one, without surrounding blank lines.

  tmux capture-pane -p -S -200 | tmux_read`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Summary(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			// A broken log destination must not cost the user their output.
			logger, err := logging.Init(cfg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
			}
			if len(args) > 0 {
				logger.Debug("Ignoring positional arguments", "args", args)
			}

			return run(stdin, stdout, cfg, logger)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetVersionTemplate(version.Details())

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a JSON config file")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (disabled when empty)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "json", "Log format: json or text")
	flags.IntVar(&opts.scrollback, "scrollback", 0, "Only consider the last N lines of input (0 for all)")
	flags.BoolVar(&opts.strict, "strict", false, "Require the full prompt prefix when locating the previous prompt")

	return cmd
}

// resolveConfig merges the optional config file with explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("scrollback") {
		cfg.Scrollback = opts.scrollback
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run reads pane text from in and writes the last command's output to out.
// Undecodable or empty input produces no output and no error.
func run(in io.Reader, out io.Writer, cfg config.Config, logger *slog.Logger) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Warn("Reading pane text from an interactive terminal until EOF")
	}

	lines, err := capture.ReadLines(in, cfg.Scrollback)
	if errors.Is(err, capture.ErrUndecodable) {
		logger.Debug("Input is not text, nothing to print")
		return nil
	}
	if err != nil {
		logger.Error("Failed to read input", "error", err)
		return err
	}
	if len(lines) == 0 {
		logger.Debug("Input is empty, nothing to print")
		return nil
	}

	mode := capture.MatchSignature
	if cfg.Strict {
		mode = capture.MatchStrict
	}

	ex := capture.Extract(lines, capture.Options{Mode: mode})
	logger.Debug("Extracted command output",
		"mode", mode.String(),
		"input_lines", len(lines),
		"prompt_matched", ex.Matched,
		"boundary", ex.Boundary,
		"previous_prompt", ex.PreviousPrompt,
		"command", ex.Command,
		"output_lines", len(ex.Lines))
	if ex.Matched && ex.PreviousPrompt < 0 {
		logger.Info("No previous prompt found, printing everything above the current prompt",
			"symbol", string(ex.Terminator.Symbol))
	}

	if err := capture.WriteLines(out, ex.Lines); err != nil {
		logger.Error("Failed to write output", "error", err)
		return err
	}
	return nil
}
