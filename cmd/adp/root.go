package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type rootConfiguration struct {
	// Configuration file; flags not given on the command line are read from it.
	CfgFile   string
	LogLevel  string
	LogFormat string

	log zerolog.Logger
}

const (
	// The prefix for configuration keys inside environment.
	envPrefix = "ADP"

	keyConfig    = "config"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
)

func newRootCmd() *cobra.Command {
	config := &rootConfiguration{log: zerolog.Nop()}
	rootCmd := &cobra.Command{
		Use:           "adp",
		Short:         "Run the AVL tree, hash table and Dijkstra implementations on datasets",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If subcommand does not define PersistentPreRunE, the one from root cmd is used.
			return initializeConfig(cmd, config)
		},
	}
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, keyConfig, "", "config file (json, yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, keyLogLevel, "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, keyLogFormat, "console", "log format: console or json")

	rootCmd.AddCommand(
		newDijkstraCmd(config),
		newAVLCmd(config),
		newHashTableCmd(config),
		newGenerateCmd(config),
	)

	return rootCmd
}

// initializeConfig reads the config file and ADP_* environment variables
// into every flag the user did not set, then builds the logger.
func initializeConfig(cmd *cobra.Command, rootConfig *rootConfiguration) error {
	v := viper.New()

	if rootConfig.CfgFile != "" {
		v.SetConfigFile(rootConfig.CfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", rootConfig.CfgFile, err)
		}
	}

	// When we bind flags to environment variables expect that the
	// environment variables are prefixed, e.g. a flag like --source
	// binds to an environment variable ADP_SOURCE.
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return fmt.Errorf("bind flags failed: %w", err)
	}

	log, err := newLogger(cmd.ErrOrStderr(), rootConfig.LogLevel, rootConfig.LogFormat)
	if err != nil {
		return err
	}
	rootConfig.log = log
	redirectViperLog(log)
	log.Debug().Str("command", cmd.Name()).Str("config", rootConfig.CfgFile).Msg("configuration loaded")

	return nil
}

// bindFlags applies each viper value (config file or environment) to its
// cobra flag when the flag was not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to ADP_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = fmt.Errorf("could not bind env to flag %s: %w", f.Name, err)
				return
			}
		}

		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, flagValue(v.Get(f.Name))); err != nil {
				bindFlagErr = fmt.Errorf("could not set flag %s: %w", f.Name, err)
			}
		}
	})

	return bindFlagErr
}

// flagValue formats a config value the way pflag parses it; lists become
// comma separated.
func flagValue(val any) string {
	if list, ok := val.([]any); ok {
		parts := make([]string, len(list))
		for i, e := range list {
			parts[i] = fmt.Sprintf("%v", e)
		}
		return strings.Join(parts, ",")
	}

	return fmt.Sprintf("%v", val)
}
