package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Log      LogConfig
	Progress ProgressConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ProgressConfig governs the progress metrics engine. Loosely typed upstream
// settings (such as the comma-separated module list) are normalised here so
// the services only ever see typed values.
type ProgressConfig struct {
	Enabled         bool
	IncludeHidden   bool
	Modules         []string
	MinParticipants int
	UserCacheTTL    time.Duration
	CourseCacheTTL  time.Duration
	ResultsLimit    int
	ShowPercentile  bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret: v.GetString("JWT_SECRET"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	modules := splitAndTrim(v.GetString("PROGRESS_MODULES"))
	if len(modules) == 0 {
		modules = []string{"quiz", "assign"}
	}
	minParticipants := v.GetInt("PROGRESS_MIN_PARTICIPANTS")
	if minParticipants < 2 {
		minParticipants = 2
	}
	cfg.Progress = ProgressConfig{
		Enabled:         v.GetBool("ENABLE_PROGRESS"),
		IncludeHidden:   v.GetBool("PROGRESS_INCLUDE_HIDDEN"),
		Modules:         modules,
		MinParticipants: minParticipants,
		UserCacheTTL:    parseDuration(v.GetString("PROGRESS_USER_CACHE_TTL"), 5*time.Minute),
		CourseCacheTTL:  parseDuration(v.GetString("PROGRESS_COURSE_CACHE_TTL"), 5*time.Minute),
		ResultsLimit:    v.GetInt("PROGRESS_RESULTS_LIMIT"),
		ShowPercentile:  v.GetBool("PROGRESS_SHOW_PERCENTILE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "progress_analytics")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_PROGRESS", true)
	v.SetDefault("PROGRESS_INCLUDE_HIDDEN", false)
	v.SetDefault("PROGRESS_MODULES", "quiz,assign")
	v.SetDefault("PROGRESS_MIN_PARTICIPANTS", 2)
	v.SetDefault("PROGRESS_USER_CACHE_TTL", "5m")
	v.SetDefault("PROGRESS_COURSE_CACHE_TTL", "5m")
	v.SetDefault("PROGRESS_RESULTS_LIMIT", 4)
	v.SetDefault("PROGRESS_SHOW_PERCENTILE", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
