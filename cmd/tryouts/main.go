// Command tryouts renders the geometry tryouts described by a scene file:
// shape blueprints, circular and stacked text, Cartesian rotation debugging
// and 3D transform effects.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/tryouts"
	"github.com/gogpu/tryouts/cmd/tryouts/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "scene.yaml", "scene file")
		outDir     = flag.String("out", ".", "output directory")
		format     = flag.String("format", "", "output format overriding the scene file (svg, png, pdf)")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	tryouts.SetLogger(logger)

	if err := run(*configPath, *outDir, *format); err != nil {
		logger.Error("tryouts failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, outDir, format string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if format != "" {
		cfg.Format = format
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files, err := renderAll(cfg, outDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		tryouts.Logger().Info("rendered", "file", f)
	}
	return nil
}
