// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaissmai/collections"
)

// config keys
const (
	keyLimit    = "limit"
	keyCapacity = "capacity"
	keyGrowth   = "growth"
	keyLogLevel = "log-level"
	keyConfig   = "config"
)

// defaults, overridden by config file, COLLECTIONS_* environment and flags
var defaults = map[string]any{
	keyLimit:    1024,
	keyCapacity: 0,
	keyGrowth:   collections.DefaultGrowth,
	keyLogLevel: "warn",
}

var rootCmd = &cobra.Command{
	Use:           "collections",
	Short:         "Run scenarios and demos of the generic containers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupConfig(); err != nil {
			return err
		}
		return setupLog()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.String(keyConfig, "", "config file (yaml, toml or json)")
	flags.Int(keyLimit, defaults[keyLimit].(int), "default element limit of a container")
	flags.Int(keyCapacity, defaults[keyCapacity].(int), "default initial capacity of a vector or stack")
	flags.Float64(keyGrowth, defaults[keyGrowth].(float64), "default growth factor of a vector or stack")
	flags.String(keyLogLevel, defaults[keyLogLevel].(string), "log level (trace, debug, info, warn, error)")

	for _, name := range []string{keyConfig, keyLimit, keyCapacity, keyGrowth, keyLogLevel} {
		lo.Must0(viper.BindPFlag(name, flags.Lookup(name)))
	}

	rootCmd.AddCommand(runCmd, demoCmd)
}

// setupConfig merges defaults, config file and environment.
func setupConfig() error {
	viper.SetEnvPrefix("collections")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for name, value := range defaults {
		viper.SetDefault(name, value)
	}

	file := viper.GetString(keyConfig)
	if file == "" {
		return nil
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %q", file)
	}

	return nil
}

// setupLog configures the logrus standard logger, logs go to stderr.
func setupLog() error {
	level, err := logrus.ParseLevel(viper.GetString(keyLogLevel))
	if err != nil {
		return err
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(level)

	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "collections: %s\n", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
