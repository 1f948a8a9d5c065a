package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvProduction = "production"

	StoreDriverRedis    = "redis"
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

// Config is the full process configuration, read once from the environment.
type Config struct {
	Port           int
	Environment    string
	AllowedOrigins []string
	FormSchemaFile string

	Log       LogConfig
	Zoho      ZohoConfig
	Email     EmailConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
	Features  FeatureConfig
	Minio     MinioConfig
	Nats      NatsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// ZohoConfig covers both the identity provider and the CRM API.
type ZohoConfig struct {
	AccountsURL   string
	ClientID      string
	ClientSecret  string
	RefreshToken  string
	APIDomain     string
	Module        string
	APITimeout    time.Duration
	TokenCacheTTL time.Duration
}

type EmailConfig struct {
	APIKey     string
	APIURL     string
	From       string
	ReplyTo    string
	AdminEmail string
}

type StoreConfig struct {
	Driver         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	TTLTable       string
	AWSRegion      string
	DynamoEndpoint string
}

type RateLimitConfig struct {
	Enabled     bool
	IPWindow    time.Duration
	IPMax       int
	EmailWindow time.Duration
	EmailMax    int
}

type UploadConfig struct {
	MaxFileSize       int64
	MaxFiles          int
	AllowedTypes      []string
	AllowedExtensions []string
}

type FeatureConfig struct {
	DuplicateCheck     bool
	EmailNotifications bool
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

type NatsConfig struct {
	URL     string
	Subject string
}

// Load reads the configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	var errs []string
	dur := func(key string, def time.Duration) time.Duration {
		v, err := getenvDuration(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}
	num := func(key string, def int) int {
		v, err := getenvInt(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	cfg := &Config{
		Port:           num("PORT", 8080),
		Environment:    strings.ToLower(getenvDefault("ENVIRONMENT", "development")),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		FormSchemaFile: os.Getenv("FORM_SCHEMA_FILE"),
		Log: LogConfig{
			Level:  getenvDefault("LOG_LEVEL", "info"),
			Format: getenvDefault("LOG_FORMAT", "json"),
		},
		Zoho: ZohoConfig{
			AccountsURL:   strings.TrimRight(getenvDefault("ZOHO_ACCOUNTS_URL", "https://accounts.zoho.com"), "/"),
			ClientID:      os.Getenv("ZOHO_CLIENT_ID"),
			ClientSecret:  os.Getenv("ZOHO_CLIENT_SECRET"),
			RefreshToken:  os.Getenv("ZOHO_REFRESH_TOKEN"),
			APIDomain:     strings.TrimRight(getenvDefault("ZOHO_API_DOMAIN", "https://www.zohoapis.com"), "/"),
			Module:        getenvDefault("ZOHO_MODULE", "Vendors"),
			APITimeout:    dur("ZOHO_API_TIMEOUT", 30*time.Second),
			TokenCacheTTL: dur("TOKEN_CACHE_TTL", 55*time.Minute),
		},
		Email: EmailConfig{
			APIKey:     os.Getenv("RESEND_API_KEY"),
			APIURL:     strings.TrimRight(getenvDefault("RESEND_API_URL", "https://api.resend.com"), "/"),
			From:       os.Getenv("EMAIL_FROM"),
			ReplyTo:    os.Getenv("EMAIL_REPLY_TO"),
			AdminEmail: os.Getenv("ADMIN_EMAIL"),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(getenvDefault("STORE_DRIVER", StoreDriverRedis)),
			RedisAddr:      getenvDefault("REDIS_ADDR", "127.0.0.1:6379"),
			RedisPassword:  os.Getenv("REDIS_PASSWORD"),
			RedisDB:        num("REDIS_DB", 0),
			TTLTable:       getenvDefault("TTL_TABLE", "ttl_store"),
			AWSRegion:      getenvDefault("AWS_REGION", "us-east-1"),
			DynamoEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     getenvBool("RATE_LIMIT_ENABLED", true),
			IPWindow:    dur("RATE_LIMIT_IP_WINDOW", time.Hour),
			IPMax:       num("RATE_LIMIT_IP_MAX", 10),
			EmailWindow: dur("RATE_LIMIT_EMAIL_WINDOW", 24*time.Hour),
			EmailMax:    num("RATE_LIMIT_EMAIL_MAX", 3),
		},
		Upload: UploadConfig{
			MaxFileSize: int64(num("MAX_FILE_SIZE", 10*1024*1024)),
			MaxFiles:    num("MAX_FILES", 5),
			AllowedTypes: splitList(getenvDefault("ALLOWED_FILE_TYPES",
				"application/pdf,image/jpeg,image/png,application/msword,application/vnd.openxmlformats-officedocument.wordprocessingml.document")),
			AllowedExtensions: splitList(getenvDefault("ALLOWED_FILE_EXTENSIONS", "pdf,jpg,jpeg,png,doc,docx")),
		},
		Features: FeatureConfig{
			DuplicateCheck:     getenvBool("ENABLE_DUPLICATE_CHECK", true),
			EmailNotifications: getenvBool("ENABLE_EMAIL_NOTIFICATIONS", true),
		},
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenvDefault("MINIO_BUCKET", "vendor-documents"),
			Region:    os.Getenv("MINIO_REGION"),
			UseSSL:    getenvBool("MINIO_USE_SSL", false),
		},
		Nats: NatsConfig{
			URL:     os.Getenv("NATS_URL"),
			Subject: getenvDefault("NATS_SUBJECT", "vendor.registered"),
		},
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// ZohoConfigured reports whether every credential needed for the token
// exchange is present.
func (c *Config) ZohoConfigured() bool {
	return c.Zoho.ClientID != "" && c.Zoho.ClientSecret != "" && c.Zoho.RefreshToken != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %q is not an integer", key, v)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	// Plain integers are taken as seconds.
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return def, fmt.Errorf("%s: %q is not a duration", key, v)
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
