package config

import (
	"commute-monitor/internal/domain"
	"fmt"
	"os"
	"strings"
	"time"
)

const defaultTimezone = "America/New_York"

// Config is the immutable configuration of one sampler invocation, built
// once at process start and passed into component constructors. Components
// never read the environment themselves.
type Config struct {
	APIKey      string
	HomeLabel   string
	HomeAddress string
	WorkLabel   string
	WorkAddress string
	// Storage is a SQLite file path or a postgres:// URL.
	Storage string
	// Local is the timezone the sampling windows are evaluated in.
	Local *time.Location
	// Forced overrides the time-of-day direction choice; domain.Skip means
	// no override.
	Forced domain.Direction
}

// Load builds the configuration from the environment. A missing required
// value is a fatal configuration error before any component runs.
func Load() (*Config, error) {
	cfg := &Config{
		Storage: Get("DB_PATH", "commute.db"),
	}

	required := []struct {
		key string
		dst *string
	}{
		{"GOOGLE_MAPS_API_KEY", &cfg.APIKey},
		{"HOME_LABEL", &cfg.HomeLabel},
		{"HOME_ADDRESS", &cfg.HomeAddress},
		{"WORK_LABEL", &cfg.WorkLabel},
		{"WORK_ADDRESS", &cfg.WorkAddress},
	}

	var missing []string
	for _, r := range required {
		v := strings.TrimSpace(os.Getenv(r.key))
		if v == "" {
			missing = append(missing, r.key)
			continue
		}
		*r.dst = v
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config: missing required settings: %s", strings.Join(missing, ", "))
	}

	tz := Get("LOCAL_TZ", defaultTimezone)
	local, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid LOCAL_TZ %q: %w", tz, err)
	}
	cfg.Local = local

	forced, err := parseDirection(os.Getenv("DIRECTION"))
	if err != nil {
		return nil, err
	}
	cfg.Forced = forced

	return cfg, nil
}

func parseDirection(v string) (domain.Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "":
		return domain.Skip, nil
	case "H2W":
		return domain.HomeToWork, nil
	case "W2H":
		return domain.WorkToHome, nil
	}
	return domain.Skip, fmt.Errorf("config: invalid DIRECTION %q (want H2W or W2H)", v)
}

// Get returns the value of an environment variable or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
