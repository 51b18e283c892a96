// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaissmai/collections"
)

var demoCmd = &cobra.Command{
	Use:       "demo static|dynamic",
	Short:     "Run a usage demo",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"static", "dynamic"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		limit := viper.GetInt(keyLimit)

		if args[0] == "static" {
			return demoStatic(w, limit, viper.GetFloat64(keyGrowth))
		}
		return demoDynamic(w, limit)
	},
}

// demoStatic inserts plain values into a vector, sorts, prints
// and drains it.
func demoStatic(w io.Writer, limit int, growth float64) error {
	v, err := collections.NewVector[int](limit, 0, growth)
	if err != nil {
		return errors.Wrap(err, "construct vector")
	}
	defer v.Free()

	for i, val := range []int{2, 3, 5, 1, 4} {
		if err := v.Insert(i, val); err != nil {
			return errors.Wrap(err, "insert")
		}
	}

	if err := v.Sort(false, cmp.Compare[int]); err != nil {
		return errors.Wrap(err, "sort")
	}

	if _, err := fmt.Fprintln(w, v); err != nil {
		return err
	}

	for !v.Empty() {
		val, err := v.Remove(0)
		if err != nil {
			return errors.Wrap(err, "remove")
		}
		if _, err := fmt.Fprintln(w, val); err != nil {
			return err
		}
	}

	return nil
}

// demoDynamic stores values with an internal reference in a list,
// the copy and free callbacks manage the referenced strings.
func demoDynamic(w io.Writer, limit int) error {
	var live int

	copyFn := func(src *string) (*string, error) {
		if src == nil {
			return nil, errors.Wrap(collections.ErrInvalidArgument, "nil string")
		}
		dst := strings.Clone(*src)
		live++
		return &dst, nil
	}

	freeFn := func(v *string) {
		live--
		logrus.WithField("value", *v).Debug("free")
	}

	l, err := collections.NewList(limit, collections.WithCopy(copyFn), collections.WithFree(freeFn))
	if err != nil {
		return errors.Wrap(err, "construct list")
	}

	value := "String"
	if err := l.Insert(0, &value); err != nil {
		l.Free()
		return errors.Wrap(err, "insert")
	}

	got, err := l.Get(0)
	if err != nil {
		l.Free()
		return errors.Wrap(err, "get")
	}

	if _, err := fmt.Fprintln(w, *got); err != nil {
		l.Free()
		return err
	}

	// the retrieved duplicate is owned by the caller
	freeFn(got)

	l.Free()
	logrus.WithField("live", live).Debug("list freed")

	if live != 0 {
		return errors.Newf("%d values leaked", live)
	}

	return nil
}
