package renderer

import (
	"context"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-raycaster/pkg/canvas"
)

// ParallelConfig contains configuration for tiled parallel rendering
type ParallelConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Tile is a rectangular region of the canvas rendered by one worker
type Tile struct {
	ID     int             // Position in row-major tile order
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// RenderParallel renders the same pixels as Render, splitting the canvas into
// disjoint tiles that are traced concurrently. The scene is only read. Each
// pixel belongs to exactly one tile, so the canvas needs no locking.
// Cancelling ctx stops tiles that have not started yet.
func (rt *Raytracer) RenderParallel(ctx context.Context, c *canvas.Canvas, config ParallelConfig) (RenderStats, error) {
	startTime := time.Now()
	width, height := c.Dimensions()

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tiles := NewTileGrid(width, height, config.TileSize)
	results := make([]RenderStats, len(tiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for _, tile := range tiles {
		tile := tile // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats, err := rt.renderBounds(c, tile.Bounds)
			results[tile.ID] = stats
			return err
		})
	}

	err := g.Wait()

	var stats RenderStats
	for _, r := range results {
		stats.merge(r)
	}
	stats.Duration = time.Since(startTime)
	if err != nil {
		return stats, err
	}

	rt.logger.Printf("Rendered %d tiles with %d workers\n", len(tiles), numWorkers)
	rt.logRender(width, height, stats)
	return stats, nil
}
