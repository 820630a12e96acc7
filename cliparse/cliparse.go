package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	CatalogPort    int
	TrackerPort    int
	DatabaseURL    string
	DatabaseType   string
	PlantsFile     string
	TreatmentsFile string
}

// ParseFlags validates flags and fills defaults from the environment.
// A .env file in the working directory is loaded first, if present.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; explicit env vars and flags still apply.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("floraheal", flag.ContinueOnError)

	fs.IntVar(&cfg.CatalogPort, "catalog-port", 0, "Catalog service port")
	fs.IntVar(&cfg.TrackerPort, "tracker-port", 0, "Tracker service port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (tracker only)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.PlantsFile, "plants", "", "Path to plants dataset (default: embedded)")
	fs.StringVar(&cfg.TreatmentsFile, "treatments", "", "Path to treatments dataset (default: embedded)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.CatalogPort == 0 {
		port, err := portFromEnv("CATALOG_PORT", 3000)
		if err != nil {
			return Config{}, err
		}
		cfg.CatalogPort = port
	}
	if cfg.TrackerPort == 0 {
		port, err := portFromEnv("TRACKER_PORT", 4000)
		if err != nil {
			return Config{}, err
		}
		cfg.TrackerPort = port
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.PlantsFile == "" {
		cfg.PlantsFile = os.Getenv("PLANTS_FILE")
	}
	if cfg.TreatmentsFile == "" {
		cfg.TreatmentsFile = os.Getenv("TREATMENTS_FILE")
	}

	return cfg, nil
}

// RequireDatabase checks the settings only the tracker service needs.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	return nil
}

func portFromEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + key + " env variable")
	}
	return port, nil
}
