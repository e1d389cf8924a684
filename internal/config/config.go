// Package config loads mleader settings.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults
//  2. the config file (mleader.yaml or mleader.yml in the working directory,
//     or the path given with --config)
//  3. MLEADER_* environment variables
//  4. command line flags that were set explicitly
//
// Nested keys are addressed with a dot in files and flags and with the first
// underscore in environment variables: MLEADER_REDIS_ADDR sets redis.addr.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "MLEADER_"

// Store backends.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
)

// Config holds all settings.
type Config struct {
	// Catalog is a TOML catalog file used to resolve handles. Empty means
	// no catalog.
	Catalog  string      `koanf:"catalog"`
	CacheDir string      `koanf:"cache_dir"`
	NoCache  bool        `koanf:"no_cache"`
	Verbose  bool        `koanf:"verbose"`
	Redis    RedisConfig `koanf:"redis"`
	Store    StoreConfig `koanf:"store"`
	Mongo    MongoConfig `koanf:"mongo"`
}

// RedisConfig selects a Redis cache. An empty Addr means the file cache.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Prefix   string `koanf:"prefix"`
}

type StoreConfig struct {
	Backend string `koanf:"backend"`
	Dir     string `koanf:"dir"`
}

type MongoConfig struct {
	URI        string `koanf:"uri"`
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`
}

// sections are the nested keys that environment variables can address.
var sections = []string{"redis", "store", "mongo"}

// flagKeys maps flag names to config keys where the two differ.
var flagKeys = map[string]string{
	"store":       "store.backend",
	"store-dir":   "store.dir",
	"redis-addr":  "redis.addr",
	"mongo-uri":   "mongo.uri",
	"config":      "",
	"interactive": "",
}

func defaults() map[string]any {
	return map[string]any{
		"catalog":          "",
		"cache_dir":        "",
		"no_cache":         false,
		"verbose":          false,
		"redis.addr":       "",
		"redis.db":         0,
		"redis.prefix":     "mleader:",
		"store.backend":    BackendFile,
		"store.dir":        "",
		"mongo.uri":        "mongodb://localhost:27017",
		"mongo.database":   "mleader",
		"mongo.collection": "documents",
	}
}

// FindFile returns explicit if set, otherwise the first of mleader.yaml and
// mleader.yml that exists in the working directory, or "".
func FindFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"mleader.yaml", "mleader.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds a Config from all sources. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := FindFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			if key == "" {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey turns MLEADER_REDIS_ADDR into redis.addr and MLEADER_CACHE_DIR
// into cache_dir.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(key, sec+"_"); ok {
			return sec + "." + rest
		}
	}
	return key
}

// Validate checks values that cannot be checked by type alone.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMongo:
	default:
		return fmt.Errorf("invalid store backend %q (want %s or %s)", c.Store.Backend, BackendFile, BackendMongo)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid redis db %d", c.Redis.DB)
	}
	return nil
}
