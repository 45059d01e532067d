package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"aerospace-tamp-sim/internal/scenario"
	"aerospace-tamp-sim/internal/visualization"
	"aerospace-tamp-sim/internal/visualization/screen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		configPath  string
		seed        int64
		headless    bool
		geojsonPath string
		logLevel    string
		ticks       int
	)
	flag.StringVar(&configPath, "config", "", "Path to scenario YAML. Empty runs the built-in demo scenario.")
	flag.Int64Var(&seed, "seed", 0, "Override the scenario seed (0 keeps the configured value).")
	flag.BoolVar(&headless, "headless", false, "Skip the animation window.")
	flag.StringVar(&geojsonPath, "geojson", "", "Write the final state as GeoJSON to this file.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.IntVar(&ticks, "ticks", screen.DefaultTicks, "Animation time steps.")
	flag.Parse()

	logger := newLogger(logLevel)
	if err := run(logger, configPath, seed, headless, geojsonPath, ticks); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath string, seed int64, headless bool, geojsonPath string, ticks int) error {
	cfg := scenario.Default()
	if configPath != "" {
		loaded, err := scenario.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	sim, err := scenario.Build(cfg, logger)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	if err := sim.Run(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	frame := visualization.Capture(sim.World, sim.Agents())
	if geojsonPath != "" {
		data, err := visualization.EncodeGeoJSON(frame)
		if err != nil {
			return fmt.Errorf("encode geojson: %w", err)
		}
		if err := os.WriteFile(geojsonPath, data, 0o644); err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
		logger.Info("wrote geojson", "path", geojsonPath, "bytes", len(data))
	}

	if headless {
		logger.Info("simulation finished", "seed", sim.Seed())
		return nil
	}

	ebiten.SetWindowSize(1000, 700)
	ebiten.SetWindowTitle("Aerospace Task and Motion Planning Simulation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(screen.NewRenderer(frame, ticks)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
