package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olajoao/sticky-one/internal/clip"
	"github.com/olajoao/sticky-one/internal/config"
	"github.com/olajoao/sticky-one/internal/daemon"
	"github.com/olajoao/sticky-one/internal/hotkey"
	"github.com/olajoao/sticky-one/internal/store"
)

func newDaemonCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the clipboard monitoring daemon",
		Long: `Starts the clipboard watcher in the foreground. It polls the system
clipboard, stores new captures, evicts entries past the retention window, and
opens the history popup on the configured hotkey.

Run it from your session startup (or a systemd user unit) to keep history
captured in the background.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runDaemon(v) },
	}

	f := cmd.Flags()
	f.Int("retention-hours", config.DefaultRetentionHours, "history retention window (hours)")
	f.Duration("poll-interval", config.DefaultPollInterval, "clipboard poll interval")
	f.String("data-dir", config.DefaultDataDir(), "data directory (database + pid file)")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	// Hyphenated flags bind onto the underscored config keys.
	_ = v.BindPFlag("retention_hours", f.Lookup("retention-hours"))
	_ = v.BindPFlag("poll_interval", f.Lookup("poll-interval"))
	_ = v.BindPFlag("data_dir", f.Lookup("data-dir"))

	return cmd
}

func runDaemon(v *viper.Viper) error {
	setupLogging(v)

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	combo, err := hotkey.ParseCombo(cfg.Hotkey.Modifiers, cfg.Hotkey.Key)
	if err != nil {
		return fmt.Errorf("hotkey config: %w", err)
	}

	if err := clip.CheckTools(); err != nil {
		return err
	}

	if err := daemon.WritePIDFile(cfg.PIDPath()); err != nil {
		return err
	}

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		_ = daemon.RemovePIDFile(cfg.PIDPath())
		return err
	}
	defer st.Close()

	d, err := daemon.New(cfg, st, clip.New(), combo)
	if err != nil {
		_ = daemon.RemovePIDFile(cfg.PIDPath())
		return err
	}

	slog.Info("syo daemon starting",
		"version", Version,
		"db", cfg.DBPath(),
		"hotkey", fmt.Sprintf("%v+%s", cfg.Hotkey.Modifiers, cfg.Hotkey.Key),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return d.Run(ctx)
}
