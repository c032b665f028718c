package main

import "github.com/urfave/cli/v3"

const (
	flagConfig       = "config"
	flagFloatPolicy  = "float-policy"
	flagDoublePolicy = "double-policy"
	flagDisableTier  = "disable-tier"
	flagFormat       = "format"
	flagLogLevel     = "log-level"
	flagLogFormat    = "log-format"
	flagDebug        = "debug"
)

func globalFlags(g *globals) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagConfig,
			Usage:       "path to config.yaml",
			Sources:     cli.EnvVars(envConfig),
			Destination: &g.configPath,
		},
		&cli.StringFlag{
			Name:        flagFloatPolicy,
			Usage:       "float dispatch policy (strict, tolerant)",
			Value:       "tolerant",
			Destination: &g.floatPolicy,
		},
		&cli.StringFlag{
			Name:        flagDoublePolicy,
			Usage:       "double dispatch policy (strict, tolerant)",
			Value:       "strict",
			Destination: &g.doublePolicy,
		},
		&cli.StringSliceFlag{
			Name:        flagDisableTier,
			Usage:       "mask a hardware tier (sse, avx, avx512); repeatable",
			Destination: &g.disableTiers,
		},
		&cli.StringFlag{
			Name:        flagFormat,
			Usage:       "output format (text, json)",
			Value:       "text",
			Destination: &g.outputFormat,
		},
		&cli.StringFlag{
			Name:        flagLogLevel,
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &g.logLevel,
		},
		&cli.StringFlag{
			Name:        flagLogFormat,
			Usage:       "log format (auto, pretty, json, text)",
			Value:       "auto",
			Destination: &g.logFormat,
		},
		&cli.BoolFlag{
			Name:        flagDebug,
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &g.debug,
		},
	}
}
