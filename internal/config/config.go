package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the server's runtime configuration
type Config struct {
	Env   string
	Debug bool
	Build string
	Host  string

	MongoURI string
	MongoDB  string
	RedisURI string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	UploadDir   string
	MaxUploadMB int64

	CatalogCacheTTL time.Duration

	RollbarToken       string
	CORSAllowedOrigins []string

	OCR *OCRConfig
}

// Load reads config/.env.<env> when present, then the process environment.
// ENV selects the file: DEV (default), TEST, QA or PROD.
func Load() (*Config, error) {
	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}

	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("DEBUG", env == "DEV")
	v.SetDefault("BUILD", "dev")
	v.SetDefault("HOST", "localhost")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "certpoints")
	v.SetDefault("REDIS_URI", "localhost:6379")
	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_SECRET", "dev-secret-change-in-production")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_MB", int64(10))
	v.SetDefault("CATALOG_CACHE_TTL", 5*time.Minute)
	v.SetDefault("ROLLBAR_TOKEN", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	conf := &Config{
		Env:                env,
		Debug:              v.GetBool("DEBUG"),
		Build:              v.GetString("BUILD"),
		Host:               v.GetString("HOST"),
		MongoURI:           v.GetString("MONGO_URI"),
		MongoDB:            v.GetString("MONGO_DB"),
		RedisURI:           v.GetString("REDIS_URI"),
		Port:               v.GetString("PORT"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTTTL:             v.GetDuration("JWT_TTL"),
		UploadDir:          v.GetString("UPLOAD_DIR"),
		MaxUploadMB:        v.GetInt64("MAX_UPLOAD_MB"),
		CatalogCacheTTL:    v.GetDuration("CATALOG_CACHE_TTL"),
		RollbarToken:       v.GetString("ROLLBAR_TOKEN"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		OCR:                loadOCRConfig(v),
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// RedisAddr strips the redis:// scheme go-redis' Addr does not accept
func (c *Config) RedisAddr() string {
	return strings.TrimPrefix(c.RedisURI, "redis://")
}

// MaxUploadBytes is the upload size limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func (c *Config) validate() error {
	if c.Env == "PROD" && c.JWTSecret == "dev-secret-change-in-production" {
		return errors.New("JWT_SECRET must be set in PROD")
	}
	if c.MaxUploadMB <= 0 {
		return errors.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
