package main

import (
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

var (
	// VerbosityFlag defines the logrus level.
	VerbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value:   "info",
		EnvVars: []string{"BITSET_VERBOSITY"},
	}
	// LogFormat specifies the log output format.
	LogFormat = &cli.StringFlag{
		Name:    "log-format",
		Usage:   "Specify log formatting. Supports: text, json.",
		Value:   "text",
		EnvVars: []string{"BITSET_LOG_FORMAT"},
	}
	// DefaultOpFlag is the operator used by combine when --op is not given.
	DefaultOpFlag = &cli.StringFlag{
		Name:    "default-op",
		Usage:   "Operator for combine when --op is omitted. Supports: and, or, xor.",
		Value:   "and",
		EnvVars: []string{"BITSET_DEFAULT_OP"},
	}
	// ConfigFileFlag specifies the filepath to load flag values.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with flag values",
	}

	opFlag = &cli.StringFlag{
		Name:  "op",
		Usage: "Operator: and, or, xor",
	}
	sizeFlag = &cli.UintFlag{
		Name:     "size",
		Usage:    "New size in bits",
		Required: true,
	}
	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Target representation: roaring, bits-and-blooms, bitlist",
		Value: "roaring",
	}
)

// wrapFlags lets every flag be filled from the config file.
func wrapFlags(flags []cli.Flag) []cli.Flag {
	wrapped := make([]cli.Flag, 0, len(flags))
	for _, f := range flags {
		switch f := f.(type) {
		case *cli.StringFlag:
			wrapped = append(wrapped, altsrc.NewStringFlag(f))
		default:
			wrapped = append(wrapped, f)
		}
	}
	return wrapped
}
