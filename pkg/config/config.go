// Package config handles application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level configuration for a pgsqlite server instance,
// covering the wire listener, SQLite storage, caches, buffer pool, memory
// monitor and TLS.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Pool     PoolConfig     `mapstructure:"pool"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Buffer   BufferConfig   `mapstructure:"buffer"`
	Memory   MemoryConfig   `mapstructure:"memory"`
	TLS      TLSConfig      `mapstructure:"tls"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// StorageConfig.Database is the directory holding one SQLite file per
// client-requested database name (the teacher's DataDir model), matching
// the per-connection "database" startup parameter rather than naming a
// single file.
type StorageConfig struct {
	Database       string `mapstructure:"database"`
	JournalMode    string `mapstructure:"journal_mode"`
	Synchronous    string `mapstructure:"synchronous"`
	CacheSizePages int    `mapstructure:"cache_size"`
	MmapSize       int64  `mapstructure:"mmap_size"`
}

type PoolConfig struct {
	UsePooling     bool          `mapstructure:"use_pooling"`
	PoolSize       int           `mapstructure:"pool_size"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
}

// CacheConfig holds size/TTL pairs for each cache tier named in spec §4.6:
// statement plans, translated SQL, table metadata and type-conversion
// results.
type CacheConfig struct {
	StatementCacheSize int           `mapstructure:"statement_cache_size"`
	StatementCacheTTL  time.Duration `mapstructure:"statement_cache_ttl"`
	TranslationCacheSize int         `mapstructure:"translation_cache_size"`
	TranslationCacheTTL  time.Duration `mapstructure:"translation_cache_ttl"`
	MetadataCacheSize  int           `mapstructure:"metadata_cache_size"`
	MetadataCacheTTL   time.Duration `mapstructure:"metadata_cache_ttl"`
	ConversionCacheSize int          `mapstructure:"conversion_cache_size"`
	ConversionCacheTTL  time.Duration `mapstructure:"conversion_cache_ttl"`
}

type BufferConfig struct {
	MaxPoolSize      int  `mapstructure:"max_pool_size"`
	InitialCapacity  int  `mapstructure:"initial_capacity"`
	MaxCapacity      int  `mapstructure:"max_capacity"`
	EnableMonitoring bool `mapstructure:"enable_monitoring"`
}

type MemoryConfig struct {
	HighWatermarkBytes int64         `mapstructure:"high_watermark_bytes"`
	CheckInterval      time.Duration `mapstructure:"check_interval"`
	AutoCleanup        bool          `mapstructure:"auto_cleanup"`
}

type TLSConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	CertFile  string `mapstructure:"cert_file"`
	KeyFile   string `mapstructure:"key_file"`
	Ephemeral bool   `mapstructure:"ephemeral"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the configuration a fresh install boots with.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 5432,
		},
		Storage: StorageConfig{
			Database:       defaultDataDir(),
			JournalMode:    "WAL",
			Synchronous:    "NORMAL",
			CacheSizePages: -2000,
			MmapSize:       268435456,
		},
		Pool: PoolConfig{
			UsePooling:     false,
			PoolSize:       10,
			ConnectTimeout: 10 * time.Second,
			IdleTimeout:    5 * time.Minute,
		},
		Cache: CacheConfig{
			StatementCacheSize:   1000,
			StatementCacheTTL:    10 * time.Minute,
			TranslationCacheSize: 1000,
			TranslationCacheTTL:  10 * time.Minute,
			MetadataCacheSize:    500,
			MetadataCacheTTL:     5 * time.Minute,
			ConversionCacheSize:  2000,
			ConversionCacheTTL:   10 * time.Minute,
		},
		Buffer: BufferConfig{
			MaxPoolSize:      256,
			InitialCapacity:  4096,
			MaxCapacity:      1 << 20,
			EnableMonitoring: true,
		},
		Memory: MemoryConfig{
			HighWatermarkBytes: 512 * 1024 * 1024,
			CheckInterval:      30 * time.Second,
			AutoCleanup:        true,
		},
		TLS: TLSConfig{
			Enabled:   false,
			Ephemeral: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./pgsqlite.db"
	}
	return filepath.Join(home, ".pgsqlite", "pgsqlite.db")
}

// Load reads configuration from command-line flags bound to the global
// viper instance (cmd/pgsqlite), PGSQLITE_-prefixed environment variables,
// configPath (if set) or a config.yaml found on the search path, and
// finally viper defaults, in that order of precedence.
func Load(configPath string) (*Config, error) {
	v := viper.GetViper()
	bindDefaults(v, DefaultConfig())

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(defaultDataDir()))
		v.AddConfigPath("/etc/pgsqlite")
	}

	v.SetEnvPrefix("pgsqlite")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func bindDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("storage.database", d.Storage.Database)
	v.SetDefault("storage.journal_mode", d.Storage.JournalMode)
	v.SetDefault("storage.synchronous", d.Storage.Synchronous)
	v.SetDefault("storage.cache_size", d.Storage.CacheSizePages)
	v.SetDefault("storage.mmap_size", d.Storage.MmapSize)
	v.SetDefault("pool.use_pooling", d.Pool.UsePooling)
	v.SetDefault("pool.pool_size", d.Pool.PoolSize)
	v.SetDefault("pool.connect_timeout", d.Pool.ConnectTimeout)
	v.SetDefault("pool.idle_timeout", d.Pool.IdleTimeout)
	v.SetDefault("cache.statement_cache_size", d.Cache.StatementCacheSize)
	v.SetDefault("cache.statement_cache_ttl", d.Cache.StatementCacheTTL)
	v.SetDefault("cache.translation_cache_size", d.Cache.TranslationCacheSize)
	v.SetDefault("cache.translation_cache_ttl", d.Cache.TranslationCacheTTL)
	v.SetDefault("cache.metadata_cache_size", d.Cache.MetadataCacheSize)
	v.SetDefault("cache.metadata_cache_ttl", d.Cache.MetadataCacheTTL)
	v.SetDefault("cache.conversion_cache_size", d.Cache.ConversionCacheSize)
	v.SetDefault("cache.conversion_cache_ttl", d.Cache.ConversionCacheTTL)
	v.SetDefault("buffer.max_pool_size", d.Buffer.MaxPoolSize)
	v.SetDefault("buffer.initial_capacity", d.Buffer.InitialCapacity)
	v.SetDefault("buffer.max_capacity", d.Buffer.MaxCapacity)
	v.SetDefault("buffer.enable_monitoring", d.Buffer.EnableMonitoring)
	v.SetDefault("memory.high_watermark_bytes", d.Memory.HighWatermarkBytes)
	v.SetDefault("memory.check_interval", d.Memory.CheckInterval)
	v.SetDefault("memory.auto_cleanup", d.Memory.AutoCleanup)
	v.SetDefault("tls.enabled", d.TLS.Enabled)
	v.SetDefault("tls.ephemeral", d.TLS.Ephemeral)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Storage.Database == "" {
		return fmt.Errorf("storage.database is required")
	}
	if c.TLS.Enabled && !c.TLS.Ephemeral && (c.TLS.CertFile == "" || c.TLS.KeyFile == "") {
		return fmt.Errorf("tls.cert_file and tls.key_file are required unless tls.ephemeral is set")
	}
	return nil
}
