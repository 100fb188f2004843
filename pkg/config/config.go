package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	NewsAPIKey      string
	NewsAPIURL      string
	NewsHTTPTimeout time.Duration

	InferenceToken   string
	InferenceBaseURL string
	InferenceModel   string
	SummaryMaxTokens int

	DefaultLanguage string

	CacheBackend string
	CacheTTL     time.Duration
	RedisURL     string

	KafkaBrokers []string
	KafkaTopic   string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Brokers are optional; an empty value disables event publishing
	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = strings.Split(v, ",")
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		NewsAPIKey:       getEnv("NEWS_API_KEY", ""),
		NewsAPIURL:       getEnv("NEWS_API_URL", "https://newsapi.org/v2/everything"),
		NewsHTTPTimeout:  getDurationEnv("NEWS_HTTP_TIMEOUT", 60*time.Second),
		InferenceToken:   getEnv("HF_API_TOKEN", ""),
		InferenceBaseURL: getEnv("INFERENCE_BASE_URL", "https://router.huggingface.co/v1"),
		InferenceModel:   getEnv("INFERENCE_MODEL", "meta-llama/Llama-3.1-8B-Instruct"),
		SummaryMaxTokens: getIntEnv("SUMMARY_MAX_TOKENS", 2000),
		DefaultLanguage:  getEnv("DEFAULT_LANGUAGE", "en"),
		CacheBackend:     getEnv("CACHE_BACKEND", "memory"),
		CacheTTL:         getDurationEnv("CACHE_TTL", 300*time.Second),
		RedisURL:         getEnv("REDIS_URL", ""),
		KafkaBrokers:     brokers,
		KafkaTopic:       getEnv("KAFKA_TOPIC", "news_summaries"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "1m", "60s")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
