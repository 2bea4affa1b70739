package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/rook-computer/wmdecor/internal/app/screens"
	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/decor"
	"github.com/rook-computer/wmdecor/internal/menu"
	"github.com/rook-computer/wmdecor/internal/render"
	"github.com/rook-computer/wmdecor/internal/state"
	"github.com/rook-computer/wmdecor/internal/system"
	"github.com/rook-computer/wmdecor/internal/x11"
)

type App struct {
	Store     *state.Store
	Render    render.Renderer
	Manager   *decor.Manager
	Menu      *menu.Styler
	Publisher *x11.Publisher
	Logger    Logger

	// ConfigPath is the theme file; empty means config.Load's lookup.
	ConfigPath string
	// Console switches the VT to graphics mode while running.
	Console bool
	// Keys enables the evdev bindings: F1-F3 hover a button, Esc clears
	// the hover, F5 reloads, F4 exits.
	Keys bool
	// Once exits after the first frame, for batch PNG output.
	Once bool

	currentScreen render.Screen

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(store *state.Store, renderer render.Renderer, manager *decor.Manager, styler *menu.Styler) *App {
	return &App{Store: store, Render: renderer, Manager: manager, Menu: styler, Logger: NoopLogger{}, exitCh: make(chan error, 1)}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

func (app *App) loadConfig() (*config.Config, error) {
	if app.ConfigPath != "" {
		return config.LoadFromPath(app.ConfigPath)
	}
	return config.Load()
}

// Initialize loads the theme and builds the first set. A theme that fails to
// load is logged and replaced by the defaults.
func (app *App) Initialize() error {
	cfg, loadErr := app.loadConfig()
	if loadErr != nil {
		app.Logger.Errorf("config", "load failed, using defaults: %v", loadErr)
		cfg = nil
	}
	if err := app.Manager.Initialize(cfg); err != nil {
		app.Store.Failed(err)
		app.Logger.Errorf("decor", "initialize failed: %v", err)
		return err
	}
	app.Store.Built(app.Manager.Current().BackgroundResult.String())
	if loadErr != nil {
		// Keep the load error visible next to the default theme.
		app.Store.Failed(loadErr)
	}
	return nil
}

// Reload re-reads the theme and rebuilds. On failure the previous set stays
// current and the error is recorded in the store.
func (app *App) Reload() error {
	app.Store.SetPhase(state.RELOADING)
	cfg, err := app.loadConfig()
	if err == nil {
		err = app.Manager.Reinitialize(cfg)
	}
	if err != nil {
		app.Logger.Errorf("decor", "reload failed: %v", err)
		app.Store.Failed(err)
	} else {
		app.Store.Built(app.Manager.Current().BackgroundResult.String())
		app.Logger.Infof("decor", "reloaded theme (generation %d)", app.Store.Snapshot().Generation)
	}
	app.redraw()
	return err
}

func (app *App) setHover(button int) {
	app.Store.SetHover(button)
	app.redraw()
}

func (app *App) redraw() {
	if app.Render != nil {
		app.Render.RedrawWithState(app.Store.Snapshot())
	}
}

func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)
	if app.Render == nil {
		app.Render = &render.NoopRenderer{}
	}

	if app.Publisher != nil {
		app.Manager.OnSwap(app.Publisher.OnSwap)
	}
	if err := app.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := app.Manager.Close(); err != nil {
			app.Logger.Errorf("decor", "close: %v", err)
		}
	}()

	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	if app.Console {
		restore := system.EnterGraphicsConsole(app.Logger)
		defer restore()
	}

	preview := screens.NewPreviewScreen(app.Manager, app.Menu, app.Logger)
	if err := app.setScreen(ctx, preview); err != nil {
		return err
	}
	defer func() { _ = preview.Stop() }()

	// Force immediate first redraw to ensure text shows without waiting for loop.
	app.redraw()
	if app.Once {
		app.Exit(nil)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx, app.Store)
	}()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	if app.Keys {
		system.WatchKeys(loopCtx, app.Logger, map[system.Key]func(){
			system.KeyF1:  func() { app.setHover(int(decor.Close)) },
			system.KeyF2:  func() { app.setHover(int(decor.Maximize)) },
			system.KeyF3:  func() { app.setHover(int(decor.Minimize)) },
			system.KeyEsc: func() { app.setHover(-1) },
			system.KeyF5:  func() { _ = app.Reload() },
			system.KeyF4:  func() { app.Exit(nil) },
		})
	}

	var err error
loop:
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break loop
		case err = <-app.exitCh:
			break loop
		case <-hup:
			app.Logger.Infof("app", "SIGHUP: reloading theme")
			_ = app.Reload()
		}
	}
	cancel()
	wg.Wait()
	return err
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}
