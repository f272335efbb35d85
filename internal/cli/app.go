// Package cli wires the ghostedit commands to the config engine.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/cli/styles"
	"github.com/bnema/ghostedit/internal/domain/build"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/repository"
	"github.com/bnema/ghostedit/internal/domain/schema"
	"github.com/bnema/ghostedit/internal/infrastructure/config"
	"github.com/bnema/ghostedit/internal/infrastructure/filesystem"
	"github.com/bnema/ghostedit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/ghostedit/internal/infrastructure/xdg"
	"github.com/bnema/ghostedit/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	Schema     *schema.Schema

	Store     port.ConfigFileStore
	Formatter port.DiffFormatter
	Paths     port.XDGPaths
	Recent    repository.RecentFileRepository

	db       *sqlite.LazyDB
	settings *config.Manager

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. The recent
// files database is opened on first use only.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()
	cfgFile := ""
	if mgr != nil {
		cfgFile = mgr.GetConfigFile()
	}

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: logging.ConsoleTimeFormat,
		},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default settings")
	}
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	s, err := schema.Default()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("load ghostty schema: %w", err)
	}

	lazyDB := sqlite.NewLazyDB(cfg.Database.Path)

	logger.Debug().
		Str("settings", cfgFile).
		Str("db_path", cfg.Database.Path).
		Int("schema_keys", s.Len()).
		Msg("app initialized")

	return &App{
		Config:     cfg,
		ConfigFile: cfgFile,
		Theme:      themeFor(cfg),
		Schema:     s,
		Store:      filesystem.New(),
		Formatter:  config.NewDiffFormatter(),
		Paths:      xdg.New(),
		Recent:     sqlite.NewLazyRecentFileRepository(lazyDB, cfg.Database.RecentLimit),
		db:         lazyDB,
		settings:   mgr,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Bind returns a copy of ctx carrying the application logger.
func (a *App) Bind(ctx context.Context) context.Context {
	return logging.WithContext(ctx, *logging.FromContext(a.ctx))
}

// ConfigPath resolves the Ghostty config file: the explicit flag value
// first, then the settings override, then the platform default.
func (a *App) ConfigPath(flag string) (string, error) {
	if flag != "" {
		abs, err := filepath.Abs(flag)
		if err != nil {
			return "", fmt.Errorf("resolve config path: %w", err)
		}
		return abs, nil
	}
	path, err := a.Config.GhosttyConfigPath()
	if err != nil {
		return "", fmt.Errorf("resolve ghostty config path: %w", err)
	}
	return path, nil
}

// NewEditUseCase creates an edit session honoring the editor settings.
// skipBackup forces SkipBackup on top of the backup setting.
func (a *App) NewEditUseCase(skipBackup bool) *usecase.EditConfigUseCase {
	return usecase.NewEditConfigUseCase(a.Schema, a.Store, a.Recent, usecase.EditConfigOptions{
		Marker:     a.Config.Editor.Marker,
		SkipBackup: skipBackup || !a.Config.Editor.Backup,
	})
}

// NewCheckUseCase creates a read-only checker.
func (a *App) NewCheckUseCase() *usecase.CheckConfigUseCase {
	return usecase.NewCheckConfigUseCase(a.Schema, a.Store)
}

// NewDiffUseCase creates a file comparer.
func (a *App) NewDiffUseCase() *usecase.DiffConfigUseCase {
	return usecase.NewDiffConfigUseCase(a.Schema, a.Store, a.Formatter)
}

// NewSchemaUseCase creates a schema lister backed by the built-in schema.
func (a *App) NewSchemaUseCase() *usecase.GetConfigSchemaUseCase {
	return usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider(a.Schema))
}

// NewRecentFilesUseCase creates a recent files lister.
func (a *App) NewRecentFilesUseCase() *usecase.RecentFilesUseCase {
	return usecase.NewRecentFilesUseCase(a.Recent)
}

// Platform returns the platform schema listings are limited to, or "" for
// no filter.
func (a *App) Platform(override string) entity.Platform {
	p := override
	if p == "" {
		p = a.Config.Editor.Platform
	}
	switch p {
	case config.PlatformAll:
		return ""
	case config.PlatformAuto, "":
		return schema.CurrentPlatform()
	default:
		return entity.Platform(p)
	}
}

// WatchSettings reloads the settings file whenever it changes and passes the
// new values to onChange. Without a settings file it does nothing.
func (a *App) WatchSettings(ctx context.Context, onChange func(*config.Config)) error {
	if a.settings == nil {
		return nil
	}
	a.settings.OnConfigChange(onChange)
	if err := a.settings.Watch(ctx); err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	return nil
}

// ApplySettings swaps in reloaded settings and the theme they select.
// The logger and database keep the values they were opened with.
func (a *App) ApplySettings(cfg *config.Config) {
	a.Config = cfg
	a.Theme = themeFor(cfg)
}

func themeFor(cfg *config.Config) *styles.Theme {
	if cfg.Editor.Accent != "" {
		return styles.NewThemeFromPalette(styles.PaletteFromAccent(cfg.Editor.Accent))
	}
	return styles.NewTheme()
}

// loadConfig loads the editor settings from standard locations. It falls
// back to the defaults, with a nil manager, and reports why.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fallbackConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, fallbackConfig(), err
	}

	return mgr, mgr.Get(), nil
}

func fallbackConfig() *config.Config {
	cfg := config.DefaultConfig()
	if level := os.Getenv("GHOSTEDIT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	return cfg
}
