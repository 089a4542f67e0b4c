package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL    string `env:"DATABASE_URL"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"campus_incidents.db"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config. Пустой адрес отключает кеш и вебхуки
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// SnapshotLimit ограничивает число инцидентов в одном снимке для анализа
	SnapshotLimit int `env:"SNAPSHOT_LIMIT" envDefault:"5000"`

	// Uploads
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	// Analysis tunables
	ClusterDistance      float64 `env:"CLUSTER_DISTANCE_DEG" envDefault:"0.001"`
	BufferRadius         float64 `env:"BUFFER_RADIUS_METERS" envDefault:"100"`
	GridCellSize         float64 `env:"GRID_CELL_SIZE_DEG" envDefault:"0.001"`
	DensityNormalization float64 `env:"DENSITY_NORMALIZATION" envDefault:"3"`
	EllipseMinPoints     int     `env:"ELLIPSE_MIN_POINTS" envDefault:"3"`
	EllipseSegments      int     `env:"ELLIPSE_SEGMENTS" envDefault:"64"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	def := analysis.DefaultParams()
	cfg := &Config{
		DatabaseDriver:         getEnv("DATABASE_DRIVER", DriverPostgres),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		SQLitePath:             getEnv("SQLITE_PATH", "campus_incidents.db"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "migrations"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		CacheTTL:               getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		SnapshotLimit:          getEnvAsInt("SNAPSHOT_LIMIT", 5000),
		UploadDir:              getEnv("UPLOAD_DIR", "static/uploads"),
		MaxUploadBytes:         int64(getEnvAsInt("MAX_UPLOAD_BYTES", 5<<20)),
		ClusterDistance:        getEnvAsFloat("CLUSTER_DISTANCE_DEG", def.ClusterDistance),
		BufferRadius:           getEnvAsFloat("BUFFER_RADIUS_METERS", def.BufferRadius),
		GridCellSize:           getEnvAsFloat("GRID_CELL_SIZE_DEG", def.GridCellSize),
		DensityNormalization:   getEnvAsFloat("DENSITY_NORMALIZATION", def.DensityNormalization),
		EllipseMinPoints:       getEnvAsInt("ELLIPSE_MIN_POINTS", def.EllipseMinPoints),
		EllipseSegments:        getEnvAsInt("ELLIPSE_SEGMENTS", def.EllipseSegments),
	}

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	return cfg, nil
}

// AnalysisParams возвращает параметры анализа с учётом переопределений из окружения
func (c *Config) AnalysisParams() analysis.Params {
	p := analysis.DefaultParams()
	if c.ClusterDistance > 0 {
		p.ClusterDistance = c.ClusterDistance
	}
	if c.BufferRadius > 0 {
		p.BufferRadius = c.BufferRadius
	}
	if c.GridCellSize > 0 {
		p.GridCellSize = c.GridCellSize
	}
	if c.DensityNormalization > 0 {
		p.DensityNormalization = c.DensityNormalization
	}
	if c.EllipseMinPoints > 0 {
		p.EllipseMinPoints = c.EllipseMinPoints
	}
	if c.EllipseSegments > 0 {
		p.EllipseSegments = c.EllipseSegments
	}
	return p
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
