package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Blog    BlogConfig    `yaml:"blog"`
	Events  EventsConfig  `yaml:"events"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// AllowedOrigins feeds the CORS middleware. Empty means "*".
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StorageConfig selects the repository implementation.
// Driver is "memory" or "mongo".
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	MongoURI    string `yaml:"mongo_uri"`
	MongoDBName string `yaml:"mongo_db_name"`
}

type AuthConfig struct {
	JWTIssuer string        `yaml:"jwt_issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
	Users     []UserConfig  `yaml:"users"`
	// LoginRatePerMinute limits login attempts per client IP. 0 or less disables it.
	LoginRatePerMinute int `yaml:"login_rate_per_minute"`
}

// UserConfig is a statically configured account. PasswordHash is a bcrypt hash.
type UserConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	IsAdmin      bool   `yaml:"is_admin"`
}

type BlogConfig struct {
	WordsPerMinute int    `yaml:"words_per_minute"`
	ExcerptLength  int    `yaml:"excerpt_length"`
	SiteTitle      string `yaml:"site_title"`
	SiteURL        string `yaml:"site_url"`
}

// EventsConfig configures the domain event bus. No brokers means events are only logged.
type EventsConfig struct {
	KafkaBrokers string `yaml:"kafka_brokers"`
	Topic        string `yaml:"topic"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = c
}

// Load reads a yaml config file, applies env overrides and fills in defaults.
// A missing file is not an error: the defaults and environment are enough to boot.
func Load(path string) (*AppConfig, error) {
	var c AppConfig
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	}
	c.applyEnv()
	c.applyDefaults()
	return &c, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Storage.MongoURI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		c.Storage.MongoDBName = v
	}
	if v := os.Getenv("JWT_ISSUER"); v != "" {
		c.Auth.JWTIssuer = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.Events.KafkaBrokers = v
	}
	// A single admin account can be supplied through the environment.
	user := os.Getenv("ADMIN_USERNAME")
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if user != "" && hash != "" {
		c.Auth.Users = append(c.Auth.Users, UserConfig{Username: user, PasswordHash: hash, IsAdmin: true})
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.Storage.MongoURI == "" {
		c.Storage.MongoURI = "mongodb://localhost:27017/blog"
	}
	if c.Storage.MongoDBName == "" {
		c.Storage.MongoDBName = "blog"
	}
	if c.Auth.JWTIssuer == "" {
		c.Auth.JWTIssuer = "blog-backend"
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Blog.WordsPerMinute <= 0 {
		c.Blog.WordsPerMinute = 200
	}
	if c.Blog.ExcerptLength <= 0 {
		c.Blog.ExcerptLength = 200
	}
	if c.Blog.SiteTitle == "" {
		c.Blog.SiteTitle = "Blog"
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "blog.events"
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
