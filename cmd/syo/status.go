package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olajoao/sticky-one/internal/daemon"
)

func newStopCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "stop",
		Short:   "Stop the running daemon",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if err := daemon.Stop(cfg.PIDPath()); err != nil {
				return err
			}
			fmt.Println("Daemon stopped")
			return nil
		},
	}

	addDataDirFlag(cmd, v)
	addConfigFlag(cmd)

	return cmd
}

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Check daemon status",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			if pid, running := daemon.RunningPID(cfg.PIDPath()); running {
				fmt.Printf("Daemon running (pid %d)\n", pid)
			} else {
				fmt.Println("Daemon not running")
			}
			return nil
		},
	}

	addDataDirFlag(cmd, v)
	addConfigFlag(cmd)

	return cmd
}
