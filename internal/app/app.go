package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/config"
	"github.com/five82/platter/internal/content"
	"github.com/five82/platter/internal/logging"
	"github.com/five82/platter/internal/nav"
	"github.com/five82/platter/internal/prefs"
	"github.com/five82/platter/internal/state"
	"github.com/five82/platter/internal/ui"
)

// Options configure the Platter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/platter/prefs.toml
	StartPage  string // overrides start_page from the config
	Theme      string // overrides the saved theme
}

// Run boots the Platter TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	start := cfg.StartPage
	if opts.StartPage != "" {
		p, ok := nav.Parse(opts.StartPage)
		if !ok {
			return fmt.Errorf("unknown page %q", opts.StartPage)
		}
		start = p
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	if opts.Theme != "" {
		userPrefs.Theme = opts.Theme
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer func() { _ = logger.Close() }()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	pages, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	store := &state.Store{}
	if cfg.LogFile != "" {
		src := Source{Path: cfg.LogFile, Lines: cfg.ActivityLines}
		g.Go(func() error {
			return Poll(gctx, store, src, cfg.ActivityPoll, logger.Module("poller"))
		})
	}

	appLog := logger.Module("app")
	appLog.Info("session started",
		zap.String("page", start.String()),
		zap.String("theme", userPrefs.Theme),
	)

	g.Go(func() error {
		// Leaving the UI stops the poller.
		defer cancel()
		return uiExit(parent, ui.Run(ui.Options{
			Context:   gctx,
			Store:     store,
			Catalog:   cat,
			Renderer:  content.NewRenderer(pages),
			Logger:    logger,
			StartPage: start,
			Prefs:     userPrefs,
			PrefsPath: opts.PrefsPath,
			LogFile:   cfg.LogFile,
		}))
	})
	err = g.Wait()
	appLog.Info("session ended")
	return err
}

// uiExit treats a program stopped by the caller's cancellation (SIGINT,
// SIGTERM) as a normal exit.
func uiExit(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
