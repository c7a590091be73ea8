package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/showcase/internal/config"
	initcmd "github.com/npratt/showcase/internal/init"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	rootCmd := newRootCmd(viper.GetViper(), logger, logLevel)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "command", commandName(os.Args), "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags bind to v so config files,
// SHOWCASE_* variables and flags resolve through one viper instance.
func newRootCmd(v *viper.Viper, logger *slog.Logger, logLevel *slog.LevelVar) *cobra.Command {
	v.SetEnvPrefix("SHOWCASE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	bindFlags := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = v.BindPFlag(f.Name, f)
		})
	}

	// loadConfig applies --verbose and flag overrides on top of LoadConfig.
	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		if v.GetBool(FlagVerbose) {
			logLevel.Set(slog.LevelDebug)
			logger.Debug("verbose logging enabled")
		}

		cfg, err := config.LoadConfig(v)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed(FlagLogFile) {
			cfg.Paths.Log = v.GetString(FlagLogFile)
		}
		if f := flags.Lookup(FlagContent); f != nil && f.Changed {
			cfg.Content.Path = v.GetString(FlagContent)
		}
		if f := flags.Lookup(FlagWatch); f != nil && f.Changed {
			cfg.Content.Watch = v.GetBool(FlagWatch)
		}
		if f := flags.Lookup(FlagInterval); f != nil && f.Changed {
			cfg.Rotation.Interval = v.GetDuration(FlagInterval)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if err := cfg.ResolvePaths(config.FindProjectRoot("")); err != nil {
			return nil, fmt.Errorf("resolve paths: %w", err)
		}
		return cfg, nil
	}

	rootCmd := &cobra.Command{
		Use:   "showcase",
		Short: "Rotating section runtime and terminal preview for the group site",
		Long: `showcase loads the site content exported from the CMS, drives the
rotating sections (clients carousel, solutions selector) on their timers,
and publishes every rotation change as an event.

Use 'showcase preview' to see the page in the terminal and exercise the
hover and details-modal pauses from the keyboard.`,
		SilenceUsage: true,
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .showcase/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Event log path")
	bindFlags(rootCmd.PersistentFlags())

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "showcase %s\n", version)
		},
	}

	// Preview command
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the site with live rotating sections",
		Long: `Preview mounts a rotation controller for each rotating section and
runs them against the content file, reloading it when it changes.

In a terminal the preview is interactive:
  tab        focus the next rotating section (pauses it, like hovering)
  enter      open the details modal (pauses until closed)
  left/right step the focused section
  1-9        jump to an item

When stdout is not a terminal, or with --headless, events are logged
instead until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			headless := v.GetBool(FlagHeadless)
			useTUI := v.GetBool(FlagTUI)
			if headless && useTUI {
				return fmt.Errorf("--tui and --headless flags are incompatible")
			}
			if !headless && !cmd.Flags().Changed(FlagTUI) {
				useTUI = term.IsTerminal(int(os.Stdout.Fd()))
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return runPreview(cmd.Context(), cfg, previewOptions{
				TUI:      useTUI,
				Logger:   logger,
				LogLevel: logLevel,
			})
		},
	}
	previewCmd.Flags().Bool(FlagHeadless, false, "Log events instead of starting the terminal UI")
	previewCmd.Flags().Bool(FlagTUI, false, "Force the terminal UI")
	previewCmd.Flags().String(FlagContent, "", "Content file (yaml, toml or json)")
	previewCmd.Flags().Bool(FlagWatch, true, "Reload when the content file changes")
	previewCmd.Flags().Duration(FlagInterval, 0, "Fallback rotation interval")
	bindFlags(previewCmd.Flags())

	// Validate command
	validateCmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a content file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				path = cfg.Content.Path
			}
			return runValidate(cmd.OutOrStdout(), path, v.GetBool(FlagJSON))
		},
	}
	validateCmd.Flags().Bool(FlagJSON, false, "Output the report as JSON")
	bindFlags(validateCmd.Flags())

	// Events command
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "View recent events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if v.GetBool(FlagFollow) {
				return tailFollow(cmd.Context(), cmd.OutOrStdout(), cfg.Paths.Log)
			}
			return tailLast(cmd.OutOrStdout(), cfg.Paths.Log, v.GetInt(FlagCount))
		},
	}
	eventsCmd.Flags().Bool(FlagFollow, false, "Follow event stream (like tail -f)")
	eventsCmd.Flags().Int(FlagCount, 20, "Number of recent events to show")
	bindFlags(eventsCmd.Flags())

	// Init command
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a starter config and content file",
		Long: `Create a .showcase directory with a starter config and content file.

Creates the following structure:
  .showcase/
    config.yaml
    content.yaml
    .gitignore (managed section, other lines kept)

Existing files that differ are shown as a diff and left alone unless
--force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := initcmd.Run(initcmd.Options{
				DryRun: v.GetBool(FlagDryRun),
				Force:  v.GetBool(FlagForce),
				Dir:    v.GetString(FlagDir),
				Writer: cmd.OutOrStdout(),
			})
			return err
		},
	}
	initCmd.Flags().Bool(FlagDryRun, false, "Show what would be changed without making changes")
	initCmd.Flags().Bool(FlagForce, false, "Overwrite files that differ from the templates")
	initCmd.Flags().String(FlagDir, initcmd.DefaultDir, "Directory to initialize")
	bindFlags(initCmd.Flags())

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(initCmd)

	return rootCmd
}

// commandName returns the subcommand for error logs.
func commandName(args []string) string {
	for _, a := range args[1:] {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return "showcase"
}
