package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akyairhashvil/intervals/internal/config"
	"github.com/akyairhashvil/intervals/internal/tui"
	"github.com/akyairhashvil/intervals/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// boundFlags are the persistent flags mirrored into viper keys.
var boundFlags = []string{config.KeyRun, config.KeyWalk, config.KeyWarmup, config.KeyCount, config.KeyTheme}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Run/walk interval timer for the terminal",
		Long:          "intervals configures run, walk and warmup/cooldown durations plus a repeat count, then runs a fullscreen session that blanks the screen when left untouched.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(settings)
			if err != nil {
				return err
			}
			defer closeLog()
			return runTUI(cmd, settings)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/intervals/config.toml)")
	flags.Int(config.KeyRun, config.DefaultRun, "run duration in minutes")
	flags.Int(config.KeyWalk, config.DefaultWalk, "walk duration in minutes")
	flags.Int(config.KeyWarmup, config.DefaultWarmupCooldown, "warmup and cooldown duration in minutes")
	flags.Int(config.KeyCount, config.DefaultCount, "number of runs")
	flags.String(config.KeyTheme, config.DefaultTheme, "color theme (default, dracula)")
	bindFlags(v, rootCmd, boundFlags)

	rootCmd.AddCommand(
		newPlanCmd(v, &configFile),
		newVersionCmd(),
	)
	return rootCmd
}

func setupLogging(s config.Settings) (func(), error) {
	if s.LogFile == "" {
		util.InitLogger(s.LogLevel, s.LogFormat, io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	util.InitLogger(s.LogLevel, s.LogFormat, f)
	return func() {
		err := f.Close()
		util.InitLogger(s.LogLevel, s.LogFormat, os.Stderr)
		util.LogError("close log file", err)
	}, nil
}

// bindFlags mirrors the named persistent flags into viper keys.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys []string) {
	for _, key := range keys {
		util.LogError("bind flag "+key, v.BindPFlag(key, cmd.PersistentFlags().Lookup(key)))
	}
}

func runTUI(cmd *cobra.Command, s config.Settings) error {
	out := os.Stdout
	width, height, err := term.GetSize(int(out.Fd()))
	if err != nil {
		slog.Debug("terminal size unavailable", "error", err)
		width, height = 0, 0
	}

	model, err := tui.NewModel(tui.Options{
		Configuration: s.Configuration,
		Theme:         s.Theme,
		Surface:       tui.NewTerminalSurface(out),
		Logger:        slog.Default(),
		Width:         width,
		Height:        height,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
