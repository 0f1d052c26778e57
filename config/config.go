package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Blob     BlobConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	R2       R2Config
	GCS      GCSConfig
	Auth     AuthConfig
	Upload   UploadConfig
	Sync     SyncConfig
	Shop     ShopConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type LoggerConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"production"`
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
}

// BlobConfig selects where the catalog document lives. Driver is one of
// memory, r2 (alias s3), gcs, mongo or postgres.
type BlobConfig struct {
	Driver   string `envconfig:"DRIVER" default:"memory"`
	Document string `envconfig:"DOCUMENT" default:"admin-data.json"`
}

type MongoConfig struct {
	URI        string `envconfig:"MONGODB_URI"`
	Database   string `envconfig:"DATABASE_NAME" default:"storefront"`
	Collection string `envconfig:"MONGODB_COLLECTION" default:"documents"`
}

type PostgresConfig struct {
	DSN             string        `envconfig:"DSN"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

type R2Config struct {
	Bucket          string `envconfig:"BUCKET"`
	AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	Endpoint        string `envconfig:"ENDPOINT"`
	PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
}

type GCSConfig struct {
	Bucket          string `envconfig:"BUCKET"`
	CredentialsFile string `envconfig:"CREDENTIALS_FILE"`
}

type AuthConfig struct {
	AdminPassword     string `envconfig:"ADMIN_PASSWORD" default:"barin2026"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `envconfig:"JWT_SECRET"`
	AccessTTLMinutes  int    `envconfig:"ACCESS_TOKEN_TTL_MINUTES" default:"720"`
}

type UploadConfig struct {
	MaxSizeMB    int `envconfig:"MAX_UPLOAD_SIZE_MB" default:"5"`
	MaxDimension int `envconfig:"IMAGE_MAX_DIMENSION" default:"1600"`
	JPEGQuality  int `envconfig:"IMAGE_JPEG_QUALITY" default:"85"`
}

type SyncConfig struct {
	SaveDebounce     time.Duration `envconfig:"SAVE_DEBOUNCE" default:"500ms"`
	LoadTimeout      time.Duration `envconfig:"LOAD_TIMEOUT" default:"15s"`
	PushTimeout      time.Duration `envconfig:"PUSH_TIMEOUT" default:"15s"`
	SeedSampleOrders bool          `envconfig:"SEED_SAMPLE_ORDERS"`
}

type ShopConfig struct {
	ClearCartOnCheckout bool          `envconfig:"CLEAR_CART_ON_CHECKOUT"`
	CartIdleTTL         time.Duration `envconfig:"CART_IDLE_TTL" default:"24h"`
}

// AccessTTL is the lifetime of an admin token.
func (a AuthConfig) AccessTTL() time.Duration {
	if a.AccessTTLMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(a.AccessTTLMinutes) * time.Minute
}

func (c *Config) IsDevelopment() bool {
	return c.Logger.AppEnv == "development" || c.Logger.AppEnv == "dev"
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	sections := []struct {
		prefix string
		target any
	}{
		{"", &cfg.Server},
		{"", &cfg.Logger},
		{"BLOB", &cfg.Blob},
		{"", &cfg.Mongo},
		{"POSTGRES", &cfg.Postgres},
		{"R2", &cfg.R2},
		{"GCS", &cfg.GCS},
		{"", &cfg.Auth},
		{"", &cfg.Upload},
		{"", &cfg.Sync},
		{"", &cfg.Shop},
	}
	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.target); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	cfg.Server.AllowedOrigins = origins
	cfg.Blob.Driver = strings.ToLower(strings.TrimSpace(cfg.Blob.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the selected blob driver has the settings it needs.
func (c *Config) Validate() error {
	switch c.Blob.Driver {
	case "memory":
	case "r2", "s3":
		if c.R2.Bucket == "" || c.R2.AccessKeyID == "" || c.R2.SecretAccessKey == "" || c.R2.Endpoint == "" {
			return fmt.Errorf("config: missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
		}
	case "gcs":
		if c.GCS.Bucket == "" {
			return fmt.Errorf("config: missing GCS_BUCKET")
		}
	case "mongo":
		if c.Mongo.URI == "" {
			return fmt.Errorf("config: missing MONGODB_URI")
		}
	case "postgres":
		if c.Postgres.DSN == "" {
			return fmt.Errorf("config: missing POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("config: unknown BLOB_DRIVER %q", c.Blob.Driver)
	}

	if c.Auth.AdminPassword == "" && c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("config: ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_SIZE_MB must be positive")
	}
	if c.Sync.SaveDebounce < 0 {
		return fmt.Errorf("config: SAVE_DEBOUNCE must not be negative")
	}
	return nil
}
