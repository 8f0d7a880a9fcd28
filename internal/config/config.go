// Package config centralises configuration parsing for the exercise log.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"example.com/exerciselog/internal/calorie"
	"example.com/exerciselog/internal/progress"
)

// Config captures runtime configuration values for the exercise log.
type Config struct {
	HTTPAddress string    `toml:"http_address"`
	CORSOrigin  string    `toml:"cors_origin"`
	Log         Log       `toml:"log"`
	Estimator   Estimator `toml:"estimator"`
	Progress    Progress  `toml:"progress"`
}

// Log configures logrus output.
type Log struct {
	Level    string `toml:"level"`
	JSON     bool   `toml:"json"`
	File     string `toml:"file"`
	ToStdout bool   `toml:"to_stdout"`
}

// Estimator tunes calorie estimation. It is read once at startup.
type Estimator struct {
	DefaultWeightKg float64       `toml:"default_weight_kg"`
	Coefficients    calorie.Table `toml:"coefficients"`
}

// Progress tunes the weekly tracker.
type Progress struct {
	WeeklyTargetMinutes float64 `toml:"weekly_target_minutes"`
	NotifyPolicy        string  `toml:"notify_policy"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		HTTPAddress: ":8080",
		CORSOrigin:  "http://localhost:5173",
		Log: Log{
			Level:    "info",
			ToStdout: true,
		},
		Estimator: Estimator{
			DefaultWeightKg: calorie.DefaultWeightKg,
			Coefficients:    calorie.DefaultTable,
		},
		Progress: Progress{
			WeeklyTargetMinutes: progress.DefaultTargetMinutes,
			NotifyPolicy:        string(progress.PolicyEvery),
		},
	}
}

// Load applies defaults, then the TOML file named by CONFIG_FILE, then
// environment variables, and validates the result.
func Load() (Config, error) {
	cfg := Default()

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	cfg.HTTPAddress = getEnv("HTTP_ADDRESS", cfg.HTTPAddress)
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.CORSOrigin)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.JSON = getBoolEnv("LOG_JSON", cfg.Log.JSON)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
	cfg.Log.ToStdout = getBoolEnv("LOG_TO_STDOUT", cfg.Log.ToStdout)
	cfg.Estimator.DefaultWeightKg = getFloatEnv("DEFAULT_WEIGHT_KG", cfg.Estimator.DefaultWeightKg)
	cfg.Progress.WeeklyTargetMinutes = getFloatEnv("WEEKLY_TARGET_MINUTES", cfg.Progress.WeeklyTargetMinutes)
	cfg.Progress.NotifyPolicy = getEnv("TARGET_NOTIFY_POLICY", cfg.Progress.NotifyPolicy)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var err error
	if strings.TrimSpace(c.HTTPAddress) == "" {
		err = multierr.Append(err, errors.New("http_address is required"))
	}
	if c.Estimator.DefaultWeightKg <= 0 {
		err = multierr.Append(err, errors.New("estimator.default_weight_kg must be > 0"))
	}
	coefficients := map[string]float64{
		"run":      c.Estimator.Coefficients.Run,
		"cycle":    c.Estimator.Coefficients.Cycle,
		"pushup":   c.Estimator.Coefficients.Pushup,
		"yoga":     c.Estimator.Coefficients.Yoga,
		"fallback": c.Estimator.Coefficients.Fallback,
	}
	for _, name := range []string{"run", "cycle", "pushup", "yoga", "fallback"} {
		if coefficients[name] <= 0 {
			err = multierr.Append(err, fmt.Errorf("estimator.coefficients.%s must be > 0", name))
		}
	}
	if c.Progress.WeeklyTargetMinutes <= 0 {
		err = multierr.Append(err, errors.New("progress.weekly_target_minutes must be > 0"))
	}
	if _, perr := progress.ParsePolicy(c.Progress.NotifyPolicy); perr != nil {
		err = multierr.Append(err, perr)
	}
	return err
}

// NotifyPolicy returns the parsed policy. Validate has already rejected bad values.
func (c Config) NotifyPolicy() progress.Policy {
	p, err := progress.ParsePolicy(c.Progress.NotifyPolicy)
	if err != nil {
		return progress.PolicyEvery
	}
	return p
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
