package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"lessongest/internal/assemble"
	"lessongest/internal/classify"
	"lessongest/internal/segment"
)

type Config struct {
	Port string

	// Auth for the HTTP service.
	APIKey string

	// Worker pool
	WorkerCount           int
	MaxQueueSize          int
	MaxConcurrentClassify int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool

	// Engine tunables. The defaults are the values the heuristics were
	// tuned with; they are exposed rather than buried as magic numbers.
	HeaderPrefixMin int
	MaxTopics       int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("LESSONGEST_API_KEY"),

		WorkerCount:           envInt("WORKER_COUNT", 2),
		MaxQueueSize:          envInt("MAX_QUEUE_SIZE", 50),
		MaxConcurrentClassify: envInt("MAX_CONCURRENT_CLASSIFY", 4),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		HeaderPrefixMin: envInt("HEADER_PREFIX_MIN", 15),
		MaxTopics:       envInt("MAX_TOPICS", 10),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxConcurrentClassify <= 0 {
		cfg.MaxConcurrentClassify = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.HeaderPrefixMin <= 0 {
		cfg.HeaderPrefixMin = 15
	}
	if cfg.MaxTopics <= 0 {
		cfg.MaxTopics = 10
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("LESSONGEST_API_KEY is required")
	}
	return nil
}

// EngineConfig maps the service configuration onto the parsing engine.
func (c Config) EngineConfig() assemble.Config {
	return assemble.Config{
		Splitter: segment.Config{TitlePrefixMin: c.HeaderPrefixMin},
		Classify: classify.Config{MaxTopics: c.MaxTopics},
		Workers:  c.MaxConcurrentClassify,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
