package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the storefront configuration, read once at startup from the
// environment (and a .env file when present).
type Config struct {
	Port     string
	Env      string
	LogLevel string

	APIBaseURL string
	APITimeout time.Duration
	APIDebug   bool

	CacheDriver   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	HeroCacheTTL     time.Duration
	AdCacheTTL       time.Duration
	EventCacheTTL    time.Duration
	BrandCacheTTL    time.Duration
	CategoryCacheTTL time.Duration

	CarouselInterval    time.Duration
	CarouselResumeDelay time.Duration
	SwipeThreshold      float64

	HeroRefreshInterval  time.Duration
	AdRefreshInterval    time.Duration
	EventRefreshInterval time.Duration

	PublicBaseURL        string
	DefaultBannerLink    string
	DefaultBrandLogo     string
	DefaultCategoryImage string

	JWTSecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	CORSAllowedOrigins []string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "production"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000/api"), "/"),
		APITimeout: getDuration("API_TIMEOUT", 15*time.Second),
		APIDebug:   getBool("API_DEBUG", false),

		CacheDriver:   getEnv("CACHE_DRIVER", "redis"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", "storefront:"),

		HeroCacheTTL:     getDuration("HERO_CACHE_TTL", 10*time.Second),
		AdCacheTTL:       getDuration("AD_CACHE_TTL", 10*time.Second),
		EventCacheTTL:    getDuration("EVENT_CACHE_TTL", 10*time.Second),
		BrandCacheTTL:    getDuration("BRAND_CACHE_TTL", 5*time.Minute),
		CategoryCacheTTL: getDuration("CATEGORY_CACHE_TTL", 5*time.Minute),

		CarouselInterval:    getDuration("CAROUSEL_INTERVAL", 5*time.Second),
		CarouselResumeDelay: getDuration("CAROUSEL_RESUME_DELAY", time.Second),
		SwipeThreshold:      getFloat("SWIPE_THRESHOLD", 50),

		HeroRefreshInterval:  getDuration("HERO_REFRESH_INTERVAL", 30*time.Second),
		AdRefreshInterval:    getDuration("AD_REFRESH_INTERVAL", time.Minute),
		EventRefreshInterval: getDuration("EVENT_REFRESH_INTERVAL", time.Minute),

		PublicBaseURL:        strings.TrimRight(getEnv("PUBLIC_BASE_URL", "https://barrim.com"), "/"),
		DefaultBannerLink:    getEnv("DEFAULT_BANNER_LINK", "/shop"),
		DefaultBrandLogo:     getEnv("DEFAULT_BRAND_LOGO", "/assets/brand-placeholder.png"),
		DefaultCategoryImage: getEnv("DEFAULT_CATEGORY_IMAGE", "/assets/category-placeholder.png"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getInt("SMTP_PORT", 2525),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Warning: %s=%q is not an integer, using %d", key, v, fallback)
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Warning: %s=%q is not a number, using %v", key, v, fallback)
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getDuration accepts Go duration strings ("10s", "5m") and plain integers,
// which are read as milliseconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	log.Printf("Warning: %s=%q is not a duration, using %s", key, v, fallback)
	return fallback
}

func getList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SMTPEnabled reports whether outgoing mail is configured.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}
