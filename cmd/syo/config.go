package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olajoao/sticky-one/internal/config"
	"github.com/olajoao/sticky-one/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and STICKYONE_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → STICKYONE_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	config.SetDefaults(v)

	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName(config.AppName)
		v.SetConfigType("toml")
		v.AddConfigPath(fmt.Sprintf("/etc/%s/", config.AppName))
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/%s", home, config.AppName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("STICKYONE")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// loadConfig resolves the typed configuration after bindViper has run.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	return config.FromViper(v)
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "", "log level: debug|info|warn|error (default: info, debug on a TTY)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	interactive := logging.IsTTY(os.Stderr)
	resolveLogging(interactive, v.GetString("log-format"), v.GetString("log-level"))
}
