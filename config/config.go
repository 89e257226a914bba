// Package config loads service settings from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all service settings
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	NLP       NLPConfig       `mapstructure:"nlp"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Translate TranslateConfig `mapstructure:"translate"`
	History   HistoryConfig   `mapstructure:"history"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Session   SessionConfig   `mapstructure:"session"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Lawyers   LawyersConfig   `mapstructure:"lawyers"`
	Report    ReportConfig    `mapstructure:"report"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	RequireLogin   bool   `mapstructure:"require_login"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type NLPConfig struct {
	Backend string `mapstructure:"backend"`
}

type GeminiConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model"`
	SummaryChunkSize int    `mapstructure:"summary_chunk_size"`
}

type TranslateConfig struct {
	Backend string `mapstructure:"backend"`
	APIKey  string `mapstructure:"api_key"`
}

type HistoryConfig struct {
	Backend  string `mapstructure:"backend"`
	FilePath string `mapstructure:"file_path"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type StorageConfig struct {
	Type         string `mapstructure:"type"`
	LocalPath    string `mapstructure:"local_path"`
	S3Bucket     string `mapstructure:"s3_bucket"`
	S3Region     string `mapstructure:"s3_region"`
	AWSAccessKey string `mapstructure:"aws_access_key_id"`
	AWSSecretKey string `mapstructure:"aws_secret_access_key"`
}

type SessionConfig struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AdminConfig struct {
	Name         string `mapstructure:"name"`
	Email        string `mapstructure:"email"`
	PasswordHash string `mapstructure:"password_hash"`
}

type LawyersConfig struct {
	Path string `mapstructure:"path"`
}

type ReportConfig struct {
	ChromePath string        `mapstructure:"chrome_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type AnalysisConfig struct {
	IncludeInsights bool `mapstructure:"include_insights"`
}

// normalize lower-cases the backend selectors so that Validate and the
// constructors that switch on them agree
func (c *Config) normalize() {
	for _, field := range []*string{
		&c.NLP.Backend,
		&c.Translate.Backend,
		&c.History.Backend,
		&c.Storage.Type,
		&c.Session.Backend,
		&c.Log.Format,
	} {
		*field = strings.ToLower(strings.TrimSpace(*field))
	}
}

// Backend names
const (
	BackendRule     = "rule"
	BackendGemini   = "gemini"
	BackendGoogle   = "google"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
)

// Validate checks backend names and the settings each backend requires
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if c.Server.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("server.max_upload_bytes must be positive"))
	}

	switch c.NLP.Backend {
	case BackendRule:
	case BackendGemini:
		if c.Gemini.APIKey == "" {
			errs = append(errs, errors.New("gemini.api_key is required for the gemini nlp backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("nlp.backend %q is not one of rule, gemini", c.NLP.Backend))
	}

	// Translation runs without credentials; /translate then reports the failure.
	switch c.Translate.Backend {
	case BackendGoogle, BackendGemini:
	default:
		errs = append(errs, fmt.Errorf("translate.backend %q is not one of google, gemini", c.Translate.Backend))
	}

	switch c.History.Backend {
	case BackendFile:
		if c.History.FilePath == "" {
			errs = append(errs, errors.New("history.file_path is required for the file history backend"))
		}
	case BackendPostgres:
		if c.Database.URL == "" {
			errs = append(errs, errors.New("database.url is required for the postgres history backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("history.backend %q is not one of file, postgres", c.History.Backend))
	}

	switch c.Storage.Type {
	case "none", "":
	case "local", "s3":
		if c.Storage.Type == "s3" && c.Storage.S3Bucket == "" {
			errs = append(errs, errors.New("storage.s3_bucket is required for s3 storage"))
		}
		if c.Database.URL == "" {
			errs = append(errs, errors.New("database.url is required when storage is enabled"))
		}
		// analyzed_documents.entry_id references history_entries
		if c.History.Backend != BackendPostgres {
			errs = append(errs, errors.New("history.backend must be postgres when storage is enabled"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.type %q is not one of none, local, s3", c.Storage.Type))
	}

	switch c.Session.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr is required for the redis session backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("session.backend %q is not one of memory, redis", c.Session.Backend))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}

	return errors.Join(errs...)
}
