package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/vecop/internal/hwcaps"
	"github.com/samcharles93/vecop/internal/logger"
	"github.com/samcharles93/vecop/internal/vecop"
)

const envConfig = "VECOP_CONFIG"

// Config is the vecop configuration file (~/.config/vecop/config.yaml).
// Values apply only where the matching flag was not given.
type Config struct {
	FloatPolicy  string   `yaml:"float_policy"`
	DoublePolicy string   `yaml:"double_policy"`
	DisableTiers []string `yaml:"disable_tiers"`

	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	OutputFormat string `yaml:"output_format"`

	ServerAddress string   `yaml:"server_address"`
	RateLimit     *float64 `yaml:"rate_limit"`
	StorePath     string   `yaml:"store_path"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vecop", "config.yaml")
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing default file yields a zero Config; a missing
// explicit path is an error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
		if path == "" {
			return Config{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// globals holds the root flags and what setup derives from them.
type globals struct {
	configPath   string
	floatPolicy  string
	doublePolicy string
	disableTiers []string
	outputFormat string
	logLevel     string
	logFormat    string
	debug        bool

	cfg        Config
	log        logger.Logger
	dispatcher *vecop.Dispatcher
}

// applyGlobalConfig fills root flag values from cfg when the flag was not
// set explicitly.
func (g *globals) applyGlobalConfig(c *cli.Command, cfg Config) {
	if cfg.FloatPolicy != "" && !c.IsSet(flagFloatPolicy) {
		g.floatPolicy = cfg.FloatPolicy
	}
	if cfg.DoublePolicy != "" && !c.IsSet(flagDoublePolicy) {
		g.doublePolicy = cfg.DoublePolicy
	}
	if len(cfg.DisableTiers) > 0 && !c.IsSet(flagDisableTier) {
		g.disableTiers = cfg.DisableTiers
	}
	if cfg.LogLevel != "" && !c.IsSet(flagLogLevel) {
		g.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet(flagLogFormat) {
		g.logFormat = cfg.LogFormat
	}
	if cfg.OutputFormat != "" && !c.IsSet(flagFormat) {
		g.outputFormat = cfg.OutputFormat
	}
}

func (g *globals) setup(ctx context.Context, c *cli.Command, stderr io.Writer) (context.Context, error) {
	cfg, err := LoadConfig(g.configPath)
	if err != nil {
		return ctx, err
	}
	g.cfg = cfg
	g.applyGlobalConfig(c, cfg)

	format, err := logger.ParseFormat(g.logFormat)
	if err != nil {
		return ctx, err
	}
	level := logger.ParseLevel(g.logLevel)
	if g.debug {
		level = logger.ParseLevel("debug")
	}
	g.log = logger.New(stderr, logger.Options{
		Format:   format,
		Level:    level,
		Terminal: writerIsTTY(stderr),
	})

	opts, err := g.dispatchOptions()
	if err != nil {
		return ctx, err
	}
	g.dispatcher = vecop.New(opts)
	g.log.Debug("dispatcher ready",
		"arch", opts.Features.Arch,
		"float_policy", opts.Policies.Float32,
		"double_policy", opts.Policies.Float64,
		"no_simd", opts.NoSIMD,
		"compiled", vecop.CompiledTiers(),
	)
	return logger.WithContext(ctx, g.log), nil
}

func (g *globals) dispatchOptions() (vecop.Options, error) {
	opts := vecop.Options{
		Features: hwcaps.Detect(),
		NoSIMD:   hwcaps.NoSIMDEnv(),
	}
	var err error
	if opts.Policies.Float32, err = vecop.ParsePolicy(g.floatPolicy); err != nil {
		return opts, fmt.Errorf("--%s: %w", flagFloatPolicy, err)
	}
	if opts.Policies.Float64, err = vecop.ParsePolicy(g.doublePolicy); err != nil {
		return opts, fmt.Errorf("--%s: %w", flagDoublePolicy, err)
	}
	for _, raw := range g.disableTiers {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			tier, err := vecop.ParseTier(name)
			if err != nil {
				return opts, fmt.Errorf("--%s: %w", flagDisableTier, err)
			}
			opts.Disabled = append(opts.Disabled, tier)
		}
	}
	return opts, nil
}
