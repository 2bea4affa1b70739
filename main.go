package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/rook-computer/wmdecor/internal/app"
	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/decor"
	"github.com/rook-computer/wmdecor/internal/menu"
	"github.com/rook-computer/wmdecor/internal/render"
	"github.com/rook-computer/wmdecor/internal/state"
	"github.com/rook-computer/wmdecor/internal/x11"
)

func main() {
	var logCfg app.LogConfig
	flags := pflag.NewFlagSet("wmdecor", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "theme file (default $"+config.EnvConfigPath+" or ~/.config/wmdecor/theme.yaml)")
	debug := flags.Bool("debug", false, "log at debug level to stderr")
	pngPath := flags.String("png", "", "render the preview to this PNG file instead of the framebuffer")
	useFB := flags.Bool("fb", false, "render the preview on the Linux framebuffer")
	useX11 := flags.Bool("x11", false, "publish buttons, background and cursor to an X server")
	display := flags.String("display", "", "X display to connect to (default $DISPLAY)")
	width := flags.Int("width", render.CanvasWidth, "preview width for --png")
	height := flags.Int("height", render.CanvasHeight, "preview height for --png")
	maxPixels := flags.Int("max-pixels", 0, "limit on live image pixels (0 is unlimited)")
	once := flags.Bool("once", false, "exit after the first frame (useful with --png)")
	keys := flags.Bool("keys", true, "enable F1-F5 key bindings via evdev")
	stdioLog := flags.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via WMDECOR_STDIO_LOG")
	logCfg.AddFlags(flags)
	_ = flags.Parse(os.Args[1:])

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("WMDECOR_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	if *debug {
		logCfg.Level = "debug"
		logCfg.Stdout = true
	}
	var logger app.Logger = app.NoopLogger{}
	if logCfg.Path != "" || logCfg.Stdout {
		l, err := app.NewLogger(logCfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger error:", err)
			os.Exit(2)
		}
		logger = l
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := state.NewStore()
	styler := menu.NewStyler()
	mem := render.NewMemDisplay()
	mem.MaxPixels = *maxPixels
	manager := decor.NewManager(mem, styler, logger)

	var renderer render.Renderer = &render.NoopRenderer{}
	switch {
	case *pngPath != "":
		png := render.NewPNGRenderer(*pngPath, *width, *height, nil)
		png.Logger = logger
		renderer = png
	case *useFB:
		fb := render.NewFBRenderer(nil)
		fb.Logger = logger
		renderer = fb
	}

	a := app.New(store, renderer, manager, styler)
	a.Logger = logger
	a.ConfigPath = *configPath
	a.Console = *useFB
	a.Once = *once
	a.Keys = *keys && (*useFB || *useX11)

	if *useX11 {
		conn, err := x11.NewConnection(*display)
		if err != nil {
			fmt.Fprintln(os.Stderr, "x11 connect error:", err)
			os.Exit(1)
		}
		defer conn.Close()
		pub := x11.NewPublisher(conn, logger)
		defer pub.Close()
		a.Publisher = pub
	}

	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "wmdecor:", err)
		os.Exit(1)
	}
}
