// Package cli implements the sedlog command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pont-us/sedlog-ffq/pkg/buildinfo"
	"github.com/pont-us/sedlog-ffq/pkg/cache"
	"github.com/pont-us/sedlog-ffq/pkg/config"
	"github.com/pont-us/sedlog-ffq/pkg/observability"
	"github.com/pont-us/sedlog-ffq/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "sedlog"

	// projectFile is looked up in the working directory when no project
	// is named on the command line.
	projectFile = "sedlog.toml"

	// cacheURLEnv supplies the default for --cache-url.
	cacheURLEnv = "SEDLOG_CACHE_URL"
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

	// CacheURL selects a Redis page cache instead of the file cache.
	CacheURL string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "sedlog draws stratigraphic logs from field tables",
		Long:         `sedlog renders sedimentary logs (lithology, grain size, glauconite, trace fossils, magnetic susceptibility and paleomagnetic directions) from tabular field data into paginated PDF, SVG or PNG sheets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := &logHooks{logger: c.Logger}
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.CacheURL, "cache-url", os.Getenv(cacheURLEnv), "Redis URL of a shared page cache (default: file cache)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. project is the path
// given on the command line, if any.
func (c *CLI) newRunner(ctx context.Context, project string, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, c.newKeyer(project, noCache), c.Logger), nil
}

// newKeyer scopes keys by project directory when pages go to a shared
// Redis cache. A nil keyer selects the default.
func (c *CLI) newKeyer(project string, noCache bool) cache.Keyer {
	if noCache || c.CacheURL == "" {
		return nil
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), projectScope(project))
}

// projectScope names a project by the directory holding its file.
func projectScope(project string) string {
	dir := "."
	if project != "" {
		dir = filepath.Dir(project)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return strings.ToLower(filepath.Base(dir)) + ":"
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.CacheURL != "" {
		rc, err := cache.NewRedisCache(ctx, c.CacheURL, cache.DefaultRedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", c.CacheURL, err)
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("no cache directory; caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir, c.Logger)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/sedlog/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadProject loads the named project file. Without a name it loads
// sedlog.toml from the working directory, or the built-in defaults when
// there is none.
func loadProject(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(projectFile); err == nil {
		return config.Load(projectFile)
	}
	cfg := config.Default()
	return cfg, cfg.Validate()
}

// parseFormats parses a comma-separated format string into a slice.
// An empty string leaves the choice to the project file.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// projectArg returns the optional project argument.
func projectArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
