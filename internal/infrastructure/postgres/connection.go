package postgres

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
	SSLMode  string
	CAFile   string
}

// NewPoolConfig は接続せずにプール設定を組み立てる
func NewPoolConfig(cfg PostgresConfig) (*pgxpool.Config, error) {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port number: %d, must be between 1 and 65535", cfg.Port)
	}

	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 10
	}

	config, err := pgxpool.ParseConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to create base config: %w", err)
	}

	config.ConnConfig.Host = cfg.Host
	config.ConnConfig.Port = uint16(cfg.Port)
	config.ConnConfig.User = cfg.User
	config.ConnConfig.Password = cfg.Password
	config.ConnConfig.Database = cfg.Database
	config.MaxConns = int32(cfg.PoolSize)

	tlsConfig, err := newTLSConfig(cfg)
	if err != nil {
		return nil, err
	}
	config.ConnConfig.TLSConfig = tlsConfig

	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute

	return config, nil
}

// NewPostgresConnection はプールを作成し、Pingで疎通を確認する
func NewPostgresConnection(cfg PostgresConfig) (*pgxpool.Pool, error) {
	config, err := NewPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// newTLSConfig はsslModeに応じたTLS設定を返す。disableの場合はnil。
func newTLSConfig(cfg PostgresConfig) (*tls.Config, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	switch sslMode {
	case "disable":
		return nil, nil
	case "require":
		return &tls.Config{InsecureSkipVerify: true}, nil
	case "verify-ca":
		return tlsConfigWithCA(cfg.CAFile)
	case "verify-full":
		tlsConfig, err := tlsConfigWithCA(cfg.CAFile)
		if err != nil {
			return nil, err
		}
		tlsConfig.ServerName = cfg.Host
		return tlsConfig, nil
	default:
		return nil, fmt.Errorf("unknown sslMode: %s", sslMode)
	}
}

func tlsConfigWithCA(caFile string) (*tls.Config, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA file: %w", err)
	}

	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("failed to parse CA certificate")
	}

	return &tls.Config{RootCAs: certPool}, nil
}
