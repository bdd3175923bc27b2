// Package config resolves plotlog settings from flags, environment
// variables, an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/plotlog-go/internal/logger"
	"github.com/ukaji3/plotlog-go/pkg/plotlog"
	"github.com/ukaji3/plotlog-go/pkg/plotlog/scale"
)

// EnvPrefix prefixes every environment variable, e.g. PLOTLOG_DRY_RUN.
const EnvPrefix = "PLOTLOG"

// Flag names.
const (
	FlagConfig        = "config"
	FlagSuffix        = "suffix"
	FlagInPlace       = "in-place"
	FlagDryRun        = "dry-run"
	FlagTicks         = "ticks"
	FlagSkipConverted = "skip-converted"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagLogFile       = "log-file"
	FlagLogMaxSizeMB  = "log-max-size-mb"
	FlagLogMaxBackups = "log-max-backups"
	FlagLogMaxAgeDays = "log-max-age-days"
	FlagLogCompress   = "log-compress"
)

// Config is the resolved configuration of one run.
type Config struct {
	Suffix        string
	InPlace       bool
	DryRun        bool
	Ticks         int
	SkipConverted bool
	Logging       logger.Options
}

// RegisterFlags defines the plotlog flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagConfig, "", "Config file (toml, yaml or json)")
	flags.String(FlagSuffix, plotlog.DefaultSuffix, "Suffix inserted before the extension of converted files")
	flags.Bool(FlagInPlace, false, "Overwrite source files instead of writing siblings")
	flags.Bool(FlagDryRun, false, "Report decisions without writing files")
	flags.Int(FlagTicks, scale.DefaultTickCount, "Target number of log axis ticks")
	flags.Bool(FlagSkipConverted, true, "Skip files that are outputs of an earlier run")
	flags.String(FlagLogLevel, "info", "Log level: debug, info, warn, error")
	flags.String(FlagLogFormat, logger.FormatConsole, "Log format: console, json")
	flags.String(FlagLogFile, "", "Also write JSON logs to this rotating file")
	flags.Int(FlagLogMaxSizeMB, 100, "Rotate the log file after this many megabytes")
	flags.Int(FlagLogMaxBackups, 10, "Number of rotated log files to keep")
	flags.Int(FlagLogMaxAgeDays, 30, "Days to keep rotated log files")
	flags.Bool(FlagLogCompress, true, "Compress rotated log files")
}

// Load resolves the configuration. Precedence, highest first: flags set on
// the command line, PLOTLOG_* environment variables (including those from a
// .env file in the working directory), the config file, flag defaults.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	if file := v.GetString(FlagConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Suffix:        v.GetString(FlagSuffix),
		InPlace:       v.GetBool(FlagInPlace),
		DryRun:        v.GetBool(FlagDryRun),
		Ticks:         v.GetInt(FlagTicks),
		SkipConverted: v.GetBool(FlagSkipConverted),
		Logging: logger.Options{
			Level:      v.GetString(FlagLogLevel),
			Format:     v.GetString(FlagLogFormat),
			File:       v.GetString(FlagLogFile),
			MaxSizeMB:  v.GetInt(FlagLogMaxSizeMB),
			MaxBackups: v.GetInt(FlagLogMaxBackups),
			MaxAgeDays: v.GetInt(FlagLogMaxAgeDays),
			Compress:   v.GetBool(FlagLogCompress),
		},
	}

	if cfg.Suffix == "" {
		return Config{}, errors.New("suffix must not be empty")
	}
	if cfg.Ticks < 2 {
		return Config{}, fmt.Errorf("invalid ticks: %d (must be at least 2)", cfg.Ticks)
	}
	return cfg, nil
}

// Options converts cfg to conversion options. The logger is left unset.
func (cfg Config) Options() plotlog.Options {
	skip := cfg.SkipConverted
	return plotlog.Options{
		Suffix:        cfg.Suffix,
		InPlace:       cfg.InPlace,
		DryRun:        cfg.DryRun,
		TickCount:     cfg.Ticks,
		SkipConverted: &skip,
	}
}
