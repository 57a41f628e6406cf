package frontmap

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// tileState is the lifecycle of one cache slot. Keys never observed are
// implicitly NotRequested.
type tileState uint8

const (
	tileLoading tileState = iota
	tileLoaded
	tileFailed
)

type tileEntry struct {
	state tileState
	img   *ebiten.Image
}

// TileFetcher loads the raster tile at (zoom, x, y). Called from a
// goroutine; it must be safe for concurrent use. The returned image is
// consumed only for blitting.
type TileFetcher func(z, x, y int) (*ebiten.Image, error)

type tileResult struct {
	key string
	img *ebiten.Image
	err error
}

// TileCache owns the basemap tiles: it computes the visible tile window for
// a viewport, issues de-duplicated asynchronous fetches, and blits loaded
// tiles. The cache map is touched only from the logical main thread; fetch
// goroutines hand results back through a channel drained by Drain. Entries
// are never evicted in-session, and a failed key is permanently absent.
type TileCache struct {
	fetch    TileFetcher
	tiles    map[string]*tileEntry
	results  chan tileResult
	zoom     int
	onLoaded func()
}

// NewTileCache creates a cache backed by the given fetcher. A nil fetcher
// leaves the basemap empty until SetFetcher is called.
func NewTileCache(fetch TileFetcher) *TileCache {
	return &TileCache{
		fetch:   fetch,
		tiles:   make(map[string]*tileEntry),
		results: make(chan tileResult, 64),
		zoom:    defaultZoom,
	}
}

// SetFetcher installs or replaces the tile source. Already-cached tiles
// stay valid.
func (c *TileCache) SetFetcher(fetch TileFetcher) { c.fetch = fetch }

// SetOnLoaded registers a callback invoked from Drain whenever a fetch
// completes successfully, typically to request a re-render.
func (c *TileCache) SetOnLoaded(fn func()) { c.onLoaded = fn }

// Len returns the number of cache slots in any state. Exposed so hosts can
// watch unbounded growth (the cache deliberately never evicts).
func (c *TileCache) Len() int { return len(c.tiles) }

// Zoom returns the zoom level of the last requested window.
func (c *TileCache) Zoom() int { return c.zoom }

func tileKey(z, x, y int) string {
	return fmt.Sprintf("%d/%d/%d", z, x, y)
}

// visibleRange computes the inclusive tile index window covering the
// viewport: the center tile plus half the viewport in tiles each way, a
// one-tile margin, clamped to [0, 2^zoom - 1].
func visibleRange(v Viewport) (xStart, xEnd, yStart, yEnd int) {
	n := int(math.Exp2(float64(v.Zoom)))
	center := GeoToTile(v.Center, v.Zoom)
	cx, cy := int(math.Floor(center.X)), int(math.Floor(center.Y))

	tilesH := int(math.Ceil(v.Width/TileSize)) + 2
	tilesV := int(math.Ceil(v.Height/TileSize)) + 2

	xStart = max(0, cx-tilesH/2)
	xEnd = min(n-1, cx+tilesH/2)
	yStart = max(0, cy-tilesV/2)
	yEnd = min(n-1, cy+tilesV/2)
	return xStart, xEnd, yStart, yEnd
}

// RequestVisible issues a fetch for every tile in the viewport's visible
// window that has not been requested before. A key already Loading, Loaded,
// or Failed is never re-fetched.
func (c *TileCache) RequestVisible(v Viewport) {
	c.zoom = v.Zoom
	// Capture the fetcher so a SetFetcher swap while fetches are in
	// flight never races the goroutines: each fetch completes with the
	// fetcher it was issued under.
	fetch := c.fetch
	if fetch == nil {
		return
	}
	xStart, xEnd, yStart, yEnd := visibleRange(v)
	for x := xStart; x <= xEnd; x++ {
		for y := yStart; y <= yEnd; y++ {
			key := tileKey(v.Zoom, x, y)
			if _, ok := c.tiles[key]; ok {
				continue
			}
			c.tiles[key] = &tileEntry{state: tileLoading}
			go func(key string, z, x, y int) {
				img, err := fetch(z, x, y)
				c.results <- tileResult{key: key, img: img, err: err}
			}(key, v.Zoom, x, y)
		}
	}
}

// Drain applies completed fetches. Must be called from the logical main
// thread (once per frame). Completions for keys outside the current visible
// window are still cached; they are simply not drawn.
func (c *TileCache) Drain() {
	for {
		select {
		case res := <-c.results:
			entry, ok := c.tiles[res.key]
			if !ok {
				// The cache moved on; keep the result anyway.
				entry = &tileEntry{}
				c.tiles[res.key] = entry
			}
			if res.err != nil || res.img == nil {
				entry.state = tileFailed
				entry.img = nil
				continue
			}
			entry.state = tileLoaded
			entry.img = res.img
			if c.onLoaded != nil {
				c.onLoaded()
			}
		default:
			return
		}
	}
}

// tileOrigin returns the rounded screen position of tile (0, 0)'s corner.
// Rounding once here keeps every tile an exact TileSize multiple from its
// neighbors; rounding per tile can open 1-px seams at fractional centers.
func tileOrigin(v Viewport) (ox, oy float64) {
	center := GeoToTile(v.Center, v.Zoom)
	ox = math.Round(v.Width/2 - center.X*TileSize)
	oy = math.Round(v.Height/2 - center.Y*TileSize)
	return ox, oy
}

// Draw blits every loaded tile of the visible window at its projected pixel
// position relative to the viewport center. Loading and failed tiles are
// skipped, leaving the background visible.
func (c *TileCache) Draw(dst *ebiten.Image, v Viewport) {
	xStart, xEnd, yStart, yEnd := visibleRange(v)
	ox, oy := tileOrigin(v)

	for x := xStart; x <= xEnd; x++ {
		for y := yStart; y <= yEnd; y++ {
			entry, ok := c.tiles[tileKey(v.Zoom, x, y)]
			if !ok || entry.state != tileLoaded {
				continue
			}
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(ox+float64(x)*TileSize, oy+float64(y)*TileSize)
			dst.DrawImage(entry.img, &op)
		}
	}
}

// OSMTileFetcher returns a TileFetcher for a standard {z}/{x}/{y} raster
// tile server URL template.
func OSMTileFetcher(urlTemplate string) TileFetcher {
	return func(z, x, y int) (*ebiten.Image, error) {
		url := strings.NewReplacer(
			"{z}", fmt.Sprint(z),
			"{x}", fmt.Sprint(x),
			"{y}", fmt.Sprint(y),
		).Replace(urlTemplate)

		resp, err := http.Get(url)
		if err != nil {
			return nil, fmt.Errorf("fetch tile %d/%d/%d: %w", z, x, y, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch tile %d/%d/%d: status %s", z, x, y, resp.Status)
		}
		img, _, err := image.Decode(resp.Body)
		if err != nil {
			log.Printf("frontmap: decode tile %d/%d/%d: %v", z, x, y, err)
			return nil, fmt.Errorf("decode tile %d/%d/%d: %w", z, x, y, err)
		}
		return ebiten.NewImageFromImage(img), nil
	}
}
