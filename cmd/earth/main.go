// Package main is the entry point for the Earth viewer.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/earthview/internal/assets"
	"github.com/Faultbox/earthview/internal/config"
	"github.com/Faultbox/earthview/internal/earth"
	"github.com/Faultbox/earthview/internal/engine/debug"
	"github.com/Faultbox/earthview/internal/engine/input"
	"github.com/Faultbox/earthview/internal/engine/renderer"
	"github.com/Faultbox/earthview/internal/engine/scene"
	"github.com/Faultbox/earthview/internal/engine/texture"
	"github.com/Faultbox/earthview/internal/engine/window"
	"github.com/Faultbox/earthview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config save error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Earth ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("earth error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("earth closed normally")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create window (this also creates OpenGL context)
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		MSAA:       cfg.Window.MSAA,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	w, h := win.GetSize()
	vp := scene.Viewport{
		Width:            w,
		Height:           h,
		DevicePixelRatio: win.PixelRatio(),
		MaxPixelRatio:    cfg.Window.MaxPixelRatio,
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	rend, err := renderer.New(vp, cfg.Window.MSAA)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer rend.Close()

	manager := assets.NewManager(cfg.Assets.HTTPTimeout)
	loader := texture.NewLoader(manager, cfg.Assets.MaxTextureSize)

	s := scene.New(vp.Aspect(), rand.New(rand.NewSource(time.Now().UnixNano())))
	indicator := earth.NewTitleIndicator(win, cfg.Window.Title)

	e, err := earth.New(s, rend, indicator, loader, cfg.Assets, cfg.Window.MaxPixelRatio)
	if err != nil {
		loader.Close()
		return fmt.Errorf("failed to create earth: %w", err)
	}
	defer e.Close()

	shots := debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "earth", rend)
	loop := earth.NewLoop(e, win, input.New(), shots)
	loop.ShowFPS = cfg.Debug.ShowFPS

	if err := loop.Run(ctx); err != nil {
		return err
	}

	hits, misses := manager.Cache().Stats()
	logger.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
	return nil
}
