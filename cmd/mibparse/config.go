package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	mibparser "github.com/devg1120/mib-parser"
)

// fileConfig is the YAML config file shape. Flags given on the command
// line take precedence over file values.
type fileConfig struct {
	// Verbose is the logging verbosity: 1 for debug, 2 for trace.
	Verbose int `yaml:"verbose"`
}

type globalFlags struct {
	configPath string
	verbose    int
}

// load merges the optional config file into the flag values.
func (f *globalFlags) load() error {
	if f.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(f.configPath)
	if err != nil {
		return errors.Wrapf(err, "reading config %s", f.configPath)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrapf(err, "parsing config %s", f.configPath)
	}

	if f.verbose == 0 {
		f.verbose = cfg.Verbose
	}
	return nil
}

func (f *globalFlags) options() []mibparser.Option {
	var opts []mibparser.Option
	if logger := newLogger(f.verbose); logger != nil {
		opts = append(opts, mibparser.WithLogger(logger))
	}
	return opts
}
