package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/na2na-p/compoundname/internal/domain"
)

// ErrInvalidConfig は設定値が不正な場合のエラー
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "NAMESVC"

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readtimeout"`
	WriteTimeout      time.Duration `mapstructure:"writetimeout"`
	IdleTimeout       time.Duration `mapstructure:"idletimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdowntimeout"`
	TrustedProxyCIDRs []string      `mapstructure:"trustedproxycidrs"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type NamesConfig struct {
	// Representation は /names 系APIで表現が省略されたときに使う "array" または "string"
	Representation string `mapstructure:"representation"`
}

type TreeConfig struct {
	Delimiter string `mapstructure:"delimiter"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// StoreConfig は保存済み名前の永続化先
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	// Cache はpostgresドライバの前段にRedisの読み取りキャッシュを置くかどうか
	Cache    bool          `mapstructure:"cache"`
	CacheTTL time.Duration `mapstructure:"cachettl"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"poolsize"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	CAFile   string `mapstructure:"cafile"`
	PoolSize int    `mapstructure:"poolsize"`
}

// AuthConfig はJWTSecretが空のとき認証を無効にする
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtsecret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Names    NamesConfig    `mapstructure:"names"`
	Tree     TreeConfig     `mapstructure:"tree"`
	Store    StoreConfig    `mapstructure:"store"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readtimeout", 30*time.Second)
	v.SetDefault("server.writetimeout", 30*time.Second)
	v.SetDefault("server.idletimeout", 120*time.Second)
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("names.representation", "array")
	v.SetDefault("tree.delimiter", "/")
	v.SetDefault("store.driver", StoreDriverMemory)
	v.SetDefault("store.cache", false)
	v.SetDefault("store.cachettl", 10*time.Minute)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.poolsize", 10)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "namesvc")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "namesvc")
	v.SetDefault("database.sslmode", "require")
	v.SetDefault("database.cafile", "")
	v.SetDefault("database.poolsize", 10)
	// AutomaticEnvはデフォルトのないキーをUnmarshalに渡さない
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")
}

// Load はカレントディレクトリの config.yaml（任意）と NAMESVC_ で始まる環境変数から設定を読み込む。
// 環境変数のキーは "." を "_" に置き換えたもの（例: NAMESVC_SERVER_PORT）。
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port must be between 1 and 65535, got %d", ErrInvalidConfig, c.Server.Port)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be one of debug, info, warn, error, got %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Names.Representation {
	case "array", "string":
	default:
		return fmt.Errorf("%w: names.representation must be 'array' or 'string', got %q", ErrInvalidConfig, c.Names.Representation)
	}
	if _, err := domain.NewStringNameWithDelimiter("", c.Tree.Delimiter); err != nil {
		return fmt.Errorf("%w: tree.delimiter %q: %v", ErrInvalidConfig, c.Tree.Delimiter, err)
	}
	return c.validateStore()
}

func (c *Config) validateStore() error {
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverRedis, StoreDriverPostgres:
	default:
		return fmt.Errorf("%w: store.driver must be one of memory, redis, postgres, got %q", ErrInvalidConfig, c.Store.Driver)
	}
	if c.Store.Cache {
		if c.Store.Driver != StoreDriverPostgres {
			return fmt.Errorf("%w: store.cache requires store.driver=postgres, got %q", ErrInvalidConfig, c.Store.Driver)
		}
		if c.Store.CacheTTL <= 0 {
			return fmt.Errorf("%w: store.cachettl must be positive, got %s", ErrInvalidConfig, c.Store.CacheTTL)
		}
	}
	if c.UsesRedis() && (c.Redis.Port <= 0 || c.Redis.Port > 65535) {
		return fmt.Errorf("%w: redis.port must be between 1 and 65535, got %d", ErrInvalidConfig, c.Redis.Port)
	}
	if c.Store.Driver == StoreDriverPostgres {
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			return fmt.Errorf("%w: database.port must be between 1 and 65535, got %d", ErrInvalidConfig, c.Database.Port)
		}
		switch c.Database.SSLMode {
		case "disable", "require":
		case "verify-ca", "verify-full":
			if c.Database.CAFile == "" {
				return fmt.Errorf("%w: database.cafile is required for sslmode %s", ErrInvalidConfig, c.Database.SSLMode)
			}
		default:
			return fmt.Errorf("%w: database.sslmode must be one of disable, require, verify-ca, verify-full, got %q", ErrInvalidConfig, c.Database.SSLMode)
		}
	}
	return nil
}

// UsesRedis はRedisへの接続が必要な構成かどうかを返す
func (c *Config) UsesRedis() bool {
	return c.Store.Driver == StoreDriverRedis || (c.Store.Driver == StoreDriverPostgres && c.Store.Cache)
}

func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, SSLMode: %s}",
		c.Host, c.Port, c.User, c.DBName, c.SSLMode)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c AuthConfig) String() string {
	return fmt.Sprintf("AuthConfig{Enabled: %t, JWTSecret: ***, Issuer: %s, Audience: %s}",
		c.Enabled(), c.Issuer, c.Audience)
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
