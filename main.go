package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/canvas"
	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// options holds everything the command line can configure
type options struct {
	sceneType  string
	width      int
	height     int
	output     string
	workers    int
	noBackdrop bool
	backdrop   string // Image drawn over the gradient before rendering
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	output := flag.String("output", "render.png", "Output file (.png, .jpg, .bmp, .tif)")
	workers := flag.Int("workers", 0, "Parallel workers (0 = sequential, -1 = one per CPU)")
	noBackdrop := flag.Bool("no-backdrop", false, "Skip the gradient backdrop")
	backdropImage := flag.String("backdrop-image", "", "Image drawn at the top-left corner before rendering")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Orthographic Sphere Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	opts := options{
		sceneType:  *sceneType,
		width:      *width,
		height:     *height,
		output:     *output,
		workers:    *workers,
		noBackdrop: *noBackdrop,
		backdrop:   *backdropImage,
	}

	if err := run(context.Background(), opts, renderer.NewDefaultLogger()); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// createScene builds the named scene and applies size overrides
func createScene(opts options) (*scene.Scene, scene.Config, error) {
	s, cfg, err := scene.Create(opts.sceneType)
	if err != nil {
		return nil, scene.Config{}, err
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	return s, cfg, nil
}

// run renders a scene to opts.output
func run(ctx context.Context, opts options, logger core.Logger) error {
	if _, err := canvas.FormatFromPath(opts.output); err != nil {
		return err
	}

	s, cfg, err := createScene(opts)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene with %d objects at %dx%d...\n", opts.sceneType, s.Len(), cfg.Width, cfg.Height)

	c, err := canvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	if !opts.noBackdrop {
		backdrop := scene.Backdrop(cfg.Width, cfg.Height, cfg.BackdropTop, cfg.BackdropBottom)
		if err := c.DrawArea(0, 0, cfg.Width, backdrop); err != nil {
			return fmt.Errorf("failed to draw backdrop: %w", err)
		}
	}

	if opts.backdrop != "" {
		img, err := loaders.LoadImage(opts.backdrop)
		if err != nil {
			return err
		}
		if err := c.DrawArea(0, 0, img.Width, img.Pixels); err != nil {
			return fmt.Errorf("failed to draw backdrop image %s: %w", opts.backdrop, err)
		}
		logger.Printf("Drew %dx%d %s backdrop from %s\n", img.Width, img.Height, img.Format, opts.backdrop)
	}

	raytracer := renderer.NewRaytracer(s, cfg.HitColor, logger)

	startTime := time.Now()
	if opts.workers == 0 {
		_, err = raytracer.Render(c)
	} else {
		config := renderer.DefaultParallelConfig()
		config.NumWorkers = opts.workers
		if opts.workers < 0 {
			config.NumWorkers = runtime.NumCPU()
		}
		_, err = raytracer.RenderParallel(ctx, c, config)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Render completed in %v\n", time.Since(startTime))

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := c.Save(opts.output); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.output)
	return nil
}
