// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// scenario is one container of int values and a sequence of ops
// applied to it, a scenario file holds a YAML list of scenarios.
//
//	- name: growth
//	  container: vector
//	  limit: 10
//	  ops:
//	    - {op: insert, values: [2, 3, 5, 1, 4]}
//	    - {op: sort, reverse: true}
type scenario struct {
	Name      string  `yaml:"name"`
	Container string  `yaml:"container"`
	Limit     int     `yaml:"limit"`
	Capacity  int     `yaml:"capacity"`
	Growth    float64 `yaml:"growth"`
	Size      int     `yaml:"size"` // bits only
	Ops       []op    `yaml:"ops"`
}

type op struct {
	Op      string `yaml:"op"`
	Index   *int   `yaml:"index"`
	Value   int    `yaml:"value"`
	Values  []int  `yaml:"values"`
	Reverse bool   `yaml:"reverse"`
	Size    int    `yaml:"size"` // other operand of bits algebra
}

// vals returns the values of o, a single value if no list is given.
func (o op) vals() []int {
	return lo.Ternary(len(o.Values) > 0, o.Values, []int{o.Value})
}

var containerKinds = []string{"vector", "stack", "list", "queue", "deque", "bits"}

// loadScenarios reads the scenario list from path.
func loadScenarios(path string) ([]scenario, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load scenarios")
	}

	var scs []scenario
	if err := yaml.Unmarshal(buf, &scs); err != nil {
		return nil, errors.Wrapf(err, "parse scenarios %q", path)
	}

	for i := range scs {
		if scs[i].Name == "" {
			scs[i].Name = fmt.Sprintf("%s#%d", path, i)
		}
		if !lo.Contains(containerKinds, scs[i].Container) {
			return nil, errors.Newf("scenario %q: unknown container %q, want one of %v",
				scs[i].Name, scs[i].Container, containerKinds)
		}
		scs[i].withDefaults()
	}

	return scs, nil
}

// withDefaults fills the unset parameters from the configuration.
func (sc *scenario) withDefaults() {
	if sc.Limit == 0 {
		sc.Limit = viper.GetInt(keyLimit)
	}
	if sc.Capacity == 0 {
		sc.Capacity = min(viper.GetInt(keyCapacity), sc.Limit)
	}
	if sc.Growth == 0 {
		sc.Growth = viper.GetFloat64(keyGrowth)
	}
	if sc.Size == 0 {
		sc.Size = sc.Limit
	}
}

// target is a container under test.
type target interface {
	apply(o op) (string, error)
	Size() int
	String() string
}

func newTarget(sc scenario) (target, error) {
	switch sc.Container {
	case "vector":
		return newVectorTarget(sc)
	case "stack":
		return newStackTarget(sc)
	case "list":
		return newListTarget(sc)
	case "queue":
		return newQueueTarget(sc)
	case "deque":
		return newDequeTarget(sc)
	case "bits":
		return newBitsTarget(sc)
	}
	return nil, errors.Newf("unknown container %q", sc.Container)
}

// runScenario applies all ops of sc and writes one line per op to w,
// failing ops are reported and the run goes on.
func runScenario(w io.Writer, sc scenario) error {
	tg, err := newTarget(sc)
	if err != nil {
		return errors.Wrapf(err, "scenario %q", sc.Name)
	}

	if _, err := fmt.Fprintf(w, "# %s (%s)\n", sc.Name, sc.Container); err != nil {
		return err
	}

	for _, o := range sc.Ops {
		res, opErr := tg.apply(o)

		log := logrus.WithFields(logrus.Fields{
			"scenario":  sc.Name,
			"container": sc.Container,
			"op":        o.Op,
			"size":      tg.Size(),
		})

		line := fmt.Sprintf("%s -> %s", o.Op, res)
		if opErr != nil {
			log.WithError(opErr).Debug("op failed")
			line = fmt.Sprintf("%s -> error: %v", o.Op, opErr)
		} else {
			log.Debug("op applied")
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func errUnknownOp(container, name string) error {
	return errors.Newf("unknown %s op %q", container, name)
}
