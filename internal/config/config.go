package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// StoreRedis keeps bookmarks and content in Redis
	StoreRedis = "redis"
	// StoreMemory keeps bookmarks in process memory (lost on restart)
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 5s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Store          string        // "redis" | "memory"
	ContentFile    string        // path to the content.yaml file
	ReloadInterval time.Duration // interval to reload the content file (default: 1h)

	// Redis (only read when Store is "redis")
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict ops endpoints to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateBurst  int // bookmark mutations allowed in a burst per client IP
	RatePerMin int // bookmark mutations refilled per client IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("QUIZAPP_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("QUIZAPP_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("QUIZAPP_REQUEST_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("QUIZAPP_LOG_LEVEL", "info"),
		PrettyLog: mustBool("QUIZAPP_PRETTY_LOG", true),

		// Storage and content
		Store:          strings.ToLower(getenv("QUIZAPP_STORE", StoreRedis)),
		ContentFile:    getenv("QUIZAPP_CONTENT_FILE", "/app/content.yaml"),
		ReloadInterval: mustDuration("QUIZAPP_RELOAD_INTERVAL", time.Hour),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("QUIZAPP_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("QUIZAPP_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("QUIZAPP_TRUST_PROXY", true),

		// Rate limiting
		RateBurst:  getenvInt("QUIZAPP_RATE_BURST", 30),
		RatePerMin: getenvInt("QUIZAPP_RATE_PER_MIN", 60),
	}

	switch cfg.Store {
	case StoreRedis:
		loadRedis(cfg)
	case StoreMemory:
	default:
		panic(fmt.Sprintf("❌ FATAL: QUIZAPP_STORE must be %q or %q, got %q", StoreRedis, StoreMemory, cfg.Store))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func loadRedis(cfg *Config) {
	cfg.RedisAddr = requireEnv("QUIZAPP_REDIS_ADDR")
	cfg.RedisUser = getenv("QUIZAPP_REDIS_USERNAME", "default")
	cfg.RedisPasswordRequired = mustBool("QUIZAPP_REDIS_PASSWORD_REQUIRED", true)
	cfg.RedisPassword = getenv("QUIZAPP_REDIS_PASSWORD", "")
	cfg.RedisDB = requireEnvInt("QUIZAPP_REDIS_DB")
	cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
	cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
	cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
	cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
	cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
	cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: QUIZAPP_REDIS_PASSWORD is required when QUIZAPP_REDIS_PASSWORD_REQUIRED=true")
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

// mustDuration reads a positive duration; zero, negative and unparsable values fall back to def
func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
