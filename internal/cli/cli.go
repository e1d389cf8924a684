// Package cli implements the mleader command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mleader/internal/config"
	"github.com/matzehuels/mleader/pkg/buildinfo"
	"github.com/matzehuels/mleader/pkg/cache"
	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/observability"
	"github.com/matzehuels/mleader/pkg/pipeline"
	"github.com/matzehuels/mleader/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "mleader"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Logs go to the logger's writer.
	Out io.Writer
	// SpinnerOut receives spinner frames. Nil disables the spinner.
	SpinnerOut io.Writer

	cfgFile string
	cfg     *config.Config
}

// New creates a new CLI instance writing output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(logw, level),
		Out:        out,
		SpinnerOut: logw,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Config returns the loaded configuration, loading defaults if no command
// has run yet.
func (c *CLI) Config() *config.Config {
	if c.cfg == nil {
		cfg, err := config.Load(c.cfgFile, nil)
		if err != nil {
			c.Logger.Warn("using default config", "err", err)
			cfg = &config.Config{Store: config.StoreConfig{Backend: config.BackendFile}}
		}
		c.cfg = cfg
	}
	return c.cfg
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "mleader inspects and converts multi-leader annotation data",
		Long: `mleader reads multi-leader annotation geometry from DXF-style tagged
streams, JSON or YAML, and converts, duplicates, stores and diagrams it.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			c.cfg = cfg
			if cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}
			hooks := logHooks{logger: c.Logger}
			observability.SetCodecHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default mleader.yaml)")
	pf.BoolP("verbose", "v", false, "enable verbose logging")
	pf.String("catalog", "", "TOML catalog used to resolve line type and block handles")
	pf.Bool("no-cache", false, "disable caching")
	pf.String("cache-dir", "", "cache directory")
	pf.String("redis-addr", "", "use a Redis cache at this address")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.duplicateCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The returned cache must be
// closed by the caller.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, cache.Cache, error) {
	cfg := c.Config()
	ch, err := c.newCache(ctx)
	if err != nil {
		return nil, nil, err
	}
	// Entries written by one build are not read by another.
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
	r := pipeline.NewRunner(ch, keyer, c.Logger)

	cat, err := c.loadCatalog()
	if err != nil {
		ch.Close()
		return nil, nil, err
	}
	if err := r.SetCatalog(cat); err != nil {
		ch.Close()
		return nil, nil, err
	}
	if cat != nil {
		c.Logger.Debug("loaded catalog", "path", cfg.Catalog, "records", cat.Len())
	}
	return r, ch, nil
}

func (c *CLI) loadCatalog() (*catalog.Catalog, error) {
	path := c.Config().Catalog
	if path == "" {
		return nil, nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, pipeline.Classify(err, "load catalog %s", path)
	}
	return cat, nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.Config()
	if cfg.NoCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, pipeline.Classify(err, "connect to redis at %s", cfg.Redis.Addr)
		}
		return rc, nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore opens the configured document store.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	cfg := c.Config()
	if cfg.Store.Backend == config.BackendMongo {
		s, err := store.NewMongoStore(ctx, store.MongoOptions{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
		if err != nil {
			return nil, pipeline.Classify(err, "connect to mongo")
		}
		return s, nil
	}
	dir := cfg.Store.Dir
	if dir == "" {
		var err error
		if dir, err = dataDir(); err != nil {
			return nil, fmt.Errorf("get data dir: %w", err)
		}
	}
	return store.NewFileStore(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/mleader/).
func (c *CLI) cacheDir() (string, error) {
	if dir := c.Config().CacheDir; dir != "" {
		return dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// dataDir returns the document store directory (~/.local/share/mleader/documents).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "documents"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "documents"), nil
}
