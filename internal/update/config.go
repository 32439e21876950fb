package update

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/habitflower/internal/ui"
)

type RuntimeConfig struct {
	Theme         ui.Scheme
	HistoryDBPath string
	LogFile       string
	LogLevel      slog.Level
	ShowCompleted bool
	Density       int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Theme:    ui.SchemeLight,
		LogLevel: slog.LevelInfo,
		Density:  1,
	}
}

// RuntimeConfigFromEnv overlays HABITFLOWER_* variables on base. Malformed
// values are ignored.
func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := ui.ParseScheme(os.Getenv("HABITFLOWER_THEME")); ok {
		cfg.Theme = v
	}
	if v, ok := getEnvString("HABITFLOWER_HISTORY_DB"); ok {
		cfg.HistoryDBPath = v
	}
	if v, ok := getEnvString("HABITFLOWER_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvLevel("HABITFLOWER_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvBool("HABITFLOWER_SHOW_COMPLETED"); ok {
		cfg.ShowCompleted = v
	}
	if v, ok := getEnvInt("HABITFLOWER_DENSITY"); ok && v >= 1 && v <= maxDensity {
		cfg.Density = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

func getEnvLevel(name string) (slog.Level, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		return 0, false
	}
	return lvl, true
}
