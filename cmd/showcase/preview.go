package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/npratt/showcase/internal/config"
	"github.com/npratt/showcase/internal/content"
	"github.com/npratt/showcase/internal/events"
	"github.com/npratt/showcase/internal/shutdown"
	"github.com/npratt/showcase/internal/site"
	"github.com/npratt/showcase/internal/tui"
)

const (
	shutdownTimeout = 5 * time.Second
	tuiEventBuffer  = 1000
)

// previewOptions carries the runtime choices that are not part of Config.
type previewOptions struct {
	TUI      bool
	Logger   *slog.Logger
	LogLevel slog.Leveler
}

// runPreview mounts the site for the configured content and runs it until
// the user quits, a signal arrives, or ctx is cancelled.
func runPreview(ctx context.Context, cfg *config.Config, opts previewOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := content.Load(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	// TUI mode: redirect logger to file before anything else logs
	if opts.TUI {
		tuiLog := SetupTUILogger(cfg.Paths.TUILog, opts.LogLevel, cfg.LogRotation)
		defer func() { _ = tuiLog.Close() }()
		logger = tuiLog.Logger
		prev := slog.Default()
		slog.SetDefault(logger)
		defer slog.SetDefault(prev)
	}

	router := events.NewRouter(events.DefaultBufferSize, events.WithRouterLogger(logger))
	logSink := events.NewLogSink(cfg.Paths.Log, logger)
	if err := logSink.Start(context.Background(), router.Subscribe()); err != nil {
		router.Close()
		return fmt.Errorf("start log sink: %w", err)
	}

	// Subscribe before mounting so the initial state changes are seen.
	var tuiEvents, headlessEvents <-chan events.Event
	if opts.TUI {
		tuiEvents = router.SubscribeBuffered(tuiEventBuffer)
	} else {
		headlessEvents = router.Subscribe()
	}

	s := site.New(doc, router,
		site.WithLogger(logger),
		site.WithContentPath(cfg.Content.Path),
		site.WithDefaults(site.Defaults{
			Interval:        cfg.Rotation.Interval,
			Enabled:         cfg.Rotation.Enabled,
			VisibilityDelay: cfg.Rotation.VisibilityDelay,
		}),
	)

	router.Emit(&events.PreviewStartEvent{
		BaseEvent:   events.NewInternalEvent(events.EventPreviewStart),
		ContentPath: cfg.Content.Path,
		Headless:    !opts.TUI,
	})
	logger.Info("preview starting",
		"version", version,
		"content", cfg.Content.Path,
		"log_file", cfg.Paths.Log,
		"tui", opts.TUI,
	)

	watcher := newWatcher(cfg, s, router, logger)

	if opts.TUI {
		err = runTUI(ctx, cfg, s, tuiEvents, watcher)
	} else {
		err = shutdown.RunWithGracefulShutdown(ctx, logger, shutdownTimeout,
			func(runCtx context.Context) error {
				return runHeadless(runCtx, headlessEvents, watcher, logger)
			},
			nil,
		)
	}

	reason := ""
	if err != nil {
		reason = err.Error()
	}
	s.Close()
	router.Emit(&events.PreviewStopEvent{
		BaseEvent: events.NewInternalEvent(events.EventPreviewStop),
		Reason:    reason,
	})

	// Closing the router closes the sink's channel; Stop drains it.
	router.Close()
	if stopErr := logSink.Stop(); stopErr != nil {
		logger.Warn("close event log", "error", stopErr)
	}
	if dropped := router.Dropped(); dropped > 0 {
		logger.Warn("events dropped during preview", "count", dropped)
	}

	return err
}

// newWatcher returns nil when content watching is disabled.
func newWatcher(cfg *config.Config, s *site.Site, pub events.Publisher, logger *slog.Logger) *content.Watcher {
	if !cfg.Content.Watch {
		return nil
	}
	return content.NewWatcher(cfg.Content.Path, s.Reload,
		content.WithDebounce(cfg.Content.Debounce),
		content.WithWatcherLogger(logger),
		content.WithOnError(func(err error) {
			pub.Emit(&events.ErrorEvent{
				BaseEvent: events.NewContentEvent(events.EventError),
				Message:   err.Error(),
				Severity:  events.SeverityWarning,
				Context:   map[string]string{"path": cfg.Content.Path},
			})
		}),
	)
}

// runTUI runs the preview in the foreground with the watcher alongside.
// Quitting the TUI stops the watcher.
func runTUI(ctx context.Context, cfg *config.Config, s *site.Site, eventChan <-chan events.Event, watcher *content.Watcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	g.Go(func() error {
		defer cancel()
		app := tui.New(s, eventChan,
			tui.WithTick(cfg.Preview.Tick),
			tui.WithMarkdown(cfg.Preview.MarkdownStyle, cfg.Preview.WordWrap),
		)
		return app.Run(gctx)
	})
	return g.Wait()
}

// runHeadless logs every event until ctx is cancelled.
func runHeadless(ctx context.Context, eventChan <-chan events.Event, watcher *content.Watcher, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case e, ok := <-eventChan:
				if !ok {
					return nil
				}
				logger.Info(events.Format(e), "type", e.Type(), "source", e.Source())
			}
		}
	})
	return g.Wait()
}
