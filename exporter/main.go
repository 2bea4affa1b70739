// Command exporter builds the decoration set for a theme and writes every
// image, plus the cursors, to a directory of PNG files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/rook-computer/wmdecor/internal/app"
	"github.com/rook-computer/wmdecor/internal/config"
	"github.com/rook-computer/wmdecor/internal/decor"
	"github.com/rook-computer/wmdecor/internal/export"
	"github.com/rook-computer/wmdecor/internal/render"
)

func main() {
	flags := pflag.NewFlagSet("exporter", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "theme file; also configurable via "+config.EnvConfigPath)
	outDir := flags.StringP("out", "o", "wmdecor-assets", "output directory")
	cursors := flags.Bool("cursors", true, "also write the cursor images")
	double := flags.Bool("hidpi", false, "write 32x32 cursors instead of 16x16")
	verbose := flags.BoolP("verbose", "v", false, "log to stderr")
	_ = flags.Parse(os.Args[1:])

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		l, err := app.NewLogger(app.LogConfig{Stdout: true, Level: "info"})
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger error:", err)
			os.Exit(2)
		}
		logger = l
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(2)
	}

	manager := decor.NewManager(render.NewMemDisplay(), nil, logger)
	if err := manager.Initialize(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "build error:", err)
		os.Exit(1)
	}
	defer manager.Close()

	set := manager.Current()
	files, err := export.WriteSet(*outDir, set)
	if err == nil && *cursors {
		var more []export.File
		more, err = export.WriteCursors(*outDir, *double)
		files = append(files, more...)
	}
	for _, f := range files {
		fmt.Println(f.Path)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "export error:", err)
		manager.Close()
		os.Exit(1)
	}
	fmt.Printf("title bar %dpx, buttons %dpx, background %s\n", set.TitleHeight, set.ButtonSize, set.BackgroundResult)
}
