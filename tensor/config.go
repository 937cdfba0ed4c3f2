// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/linalg/internal/parallel"
)

// Config holds the worker count and the per-kernel size thresholds above
// which work is split across goroutines.
//
// Example:
//
//	cfg := tensor.DefaultConfig()
//	cfg.NumWorkers = 2
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
type Config = parallel.Config

// DefaultConfig returns the built-in thresholds sized for this machine.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// Sequential returns a configuration that never starts goroutines.
func Sequential() Config { return parallel.Sequential() }

// LoadConfig reads a TOML or YAML file over the built-in defaults.
func LoadConfig(path string) (Config, error) { return parallel.LoadConfig(path) }

// DefaultParallel returns the process-wide configuration. It is loaded on
// first use from $LINALG_CONFIG, or from linalg/config.toml in the user
// config directory, and never changes afterwards.
func DefaultParallel() Config { return parallel.Default() }
