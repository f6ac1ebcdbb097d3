package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/config"
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/report"
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/source"
	"github.com/input-output-hk/catalyst-forge-libs/commitcheck/validate"
)

// errRejected signals a reported rejection; nothing more is printed for it.
var errRejected = stderrors.New("commit message rejected")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// workDir is where the enclosing worktree is searched from. Empty means the process cwd.
	workDir string
	// skipUserConfig ignores the per-user config file.
	skipUserConfig bool
}

type flags struct {
	configPath string
	format     string
	logLevel   string
	noHints    bool
}

func (a *app) run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(a.stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			code = ExitPanic
		}
	}()

	// cobra falls back to os.Args on nil.
	if args == nil {
		args = []string{}
	}

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if err := cmd.Execute(); err != nil {
		if !stderrors.Is(err, errRejected) {
			_, _ = fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return ExitRejected
	}
	return ExitAccepted
}

func (a *app) rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName + " [flags] <commit-message-file>",
		Short: "Validate a commit message against the CATEGORY-NN tag convention",
		Long: `commitcheck validates a commit message before the commit is recorded.

The first line must look like:

  CATEGORY-NN: Title

where CATEGORY is one of FE, BE, CI, DEV, QE, DOC and NN is a two digit
sequence number. Pass "-" to read the message from stdin.

Exit status is 0 when the message is accepted and 1 otherwise.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return a.check(cmd, f, path)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&f.format, "format", "text", "Report format (text, json)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.noHints, "no-hints", false, "Do not print suggestions for malformed messages")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func (a *app) check(cmd *cobra.Command, f flags, path string) error {
	cfg, err := a.loadConfig(cmd, f)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	logger.Debug("configuration loaded",
		"format", cfg.Format,
		"hints", cfg.Hints,
		"sources", cfg.Sources)

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	reporter := report.NewReporter(cmd.OutOrStdout(), format)

	var result validate.Result
	if path == "" {
		logger.Debug("no commit message source given")
		result = validate.MissingInput("no commit message file given")
	} else {
		logger.Debug("reading commit message", "source", source.Describe(path))
		message, err := source.Read(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		v := validate.New(validate.WithLogger(logger), validate.WithHints(cfg.Hints))
		result = v.Validate(message)
	}

	if err := reporter.Report(result); err != nil {
		return err
	}
	if !result.IsAccepted() {
		logger.Info("commit message rejected", "reason", result.Reason().String())
		return errRejected
	}
	return nil
}

func (a *app) loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	opts := config.LoadOptions{
		SkipUser:  a.skipUserConfig,
		File:      f.configPath,
		Overrides: map[string]interface{}{},
	}

	workDir := a.workDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}
	if root, err := source.FindWorktreeRoot(workDir); err == nil {
		opts.RepoDir = root
	} else if !stderrors.Is(err, source.ErrNotRepository) {
		return nil, err
	}

	if cmd.Flags().Changed("format") {
		opts.Overrides[config.KeyFormat] = f.format
	}
	if cmd.Flags().Changed("log-level") {
		opts.Overrides[config.KeyLogLevel] = f.logLevel
	}
	if cmd.Flags().Changed("no-hints") {
		opts.Overrides[config.KeyHints] = !f.noHints
	}

	return config.Load(opts)
}
