package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "LEGALDOC"

// unprefixed variables kept for existing deployments
var legacyEnv = map[string]string{
	"server.port":                   "PORT",
	"database.url":                  "DATABASE_URL",
	"gemini.api_key":                "GEMINI_API_KEY",
	"translate.api_key":             "GOOGLE_TRANSLATE_API_KEY",
	"storage.type":                  "STORAGE_TYPE",
	"storage.local_path":            "STORAGE_LOCAL_PATH",
	"storage.s3_bucket":             "AWS_S3_BUCKET",
	"storage.s3_region":             "AWS_REGION",
	"storage.aws_access_key_id":     "AWS_ACCESS_KEY_ID",
	"storage.aws_secret_access_key": "AWS_SECRET_ACCESS_KEY",
	"redis.addr":                    "REDIS_ADDR",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.max_upload_bytes", 10<<20)
	v.SetDefault("server.require_login", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("nlp.backend", BackendRule)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.summary_chunk_size", 1000)
	v.SetDefault("translate.backend", BackendGoogle)
	v.SetDefault("translate.api_key", "")
	v.SetDefault("history.backend", BackendFile)
	v.SetDefault("history.file_path", "history.json")
	v.SetDefault("database.url", "")
	v.SetDefault("storage.type", "none")
	v.SetDefault("storage.local_path", "./storage/documents")
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_region", "us-east-1")
	v.SetDefault("storage.aws_access_key_id", "")
	v.SetDefault("storage.aws_secret_access_key", "")
	v.SetDefault("session.backend", BackendMemory)
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("admin.name", "")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("lawyers.path", "data/lawyers.json")
	v.SetDefault("report.chrome_path", "")
	v.SetDefault("report.timeout", 30*time.Second)
	v.SetDefault("analysis.include_insights", true)
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	for key, legacy := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("config: failed to bind %s: %w", key, err)
		}
	}
	return v, nil
}

// Load reads .env (when present), the optional YAML file at configPath and
// LEGALDOC_* environment variables, then validates the result.
func Load(configPath string) (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
