// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Run container scenarios from YAML files",
	Long: `Run container scenarios from YAML files.

Every scenario creates one container of int values and applies its ops,
one output line per op: "op -> result" or "op -> error: reason".
Unset limit, capacity and growth are taken from the configuration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		for _, path := range args {
			scs, err := loadScenarios(path)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{"file": path, "scenarios": len(scs)}).Info("loaded")

			for _, sc := range scs {
				if err := runScenario(w, sc); err != nil {
					return err
				}
			}
		}

		return nil
	},
}
