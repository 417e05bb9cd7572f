package boulder

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config tunes frame decoding.
type Config struct {
	// Workers bounds the number of tiles decoded in parallel. Zero or less
	// means runtime.GOMAXPROCS(0).
	Workers int
	// Logger receives tile failures and table commits. Nil is silent.
	Logger *log.Logger
	// CheckCausality enables the neighbour read check in every tile.
	CheckCausality bool
}

// Decoder decodes the tiles of one frame into a shared block grid. It owns
// the frame-level probability tables each tile starts from and the tables
// saved for later frames.
type Decoder struct {
	cfg  Config
	seq  *SequenceHeader
	fh   *FrameHeader
	grid *BlockGrid
	cdf  *CdfContext

	mu    sync.Mutex
	saved *CdfContext
}

// TileResult is the outcome of one tile.
type TileResult struct {
	TileNum int
	// Blocks is the number of blocks decoded, including those before a failure.
	Blocks int
	Err    error
}

// DecoderResult collects the per-tile outcomes of a frame in input order.
type DecoderResult struct {
	Tiles []TileResult
}

// Failed returns the results that carry an error.
func (r DecoderResult) Failed() []TileResult {
	var failed []TileResult
	for _, tr := range r.Tiles {
		if tr.Err != nil {
			failed = append(failed, tr)
		}
	}
	return failed
}

// NewDecoder prepares decoding of one frame. ref holds the tables saved with
// the primary reference frame; nil selects the defaults for fh.BaseQIdx.
func NewDecoder(cfg Config, seq *SequenceHeader, fh *FrameHeader, ref *CdfContext) *Decoder {
	cdf := DefaultCdfContext(fh.BaseQIdx)
	if ref != nil {
		cdf = ref.Clone()
	}
	grid := NewBlockGrid(fh.MiRows, fh.MiCols)
	grid.AllocRestoration(seq, fh)
	return &Decoder{
		cfg:  cfg,
		seq:  seq,
		fh:   fh,
		grid: grid,
		cdf:  cdf,
	}
}

// Grid returns the frame's block grid.
func (d *Decoder) Grid() *BlockGrid {
	return d.grid
}

// NewTileCopy returns a private copy of the frame tables for one tile.
func (d *Decoder) NewTileCopy() *CdfContext {
	return d.cdf.Clone()
}

// CommitIfLastTile saves the final tables of the tile designated by
// context_update_tile_id. It reports whether cdf was kept.
func (d *Decoder) CommitIfLastTile(tileNum int, cdf *CdfContext) bool {
	if tileNum != d.fh.ContextUpdateTileId || d.fh.DisableFrameEndUpdateCdf {
		return false
	}
	saved := cdf.Clone()
	saved.ResetCounters()
	d.mu.Lock()
	d.saved = saved
	d.mu.Unlock()
	d.logf("tile %d: committed frame end tables", tileNum)
	return true
}

// EndFrame returns the tables to store with the decoded frame: the committed
// tile tables when frame end update is enabled, the frame start tables
// otherwise.
func (d *Decoder) EndFrame() *CdfContext {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.saved != nil {
		return d.saved
	}
	return d.cdf.Clone()
}

// DecodeTiles decodes tiles in parallel. A failing tile does not stop its
// siblings; cancelling ctx skips the tiles not yet started. sinkFor may be nil.
func (d *Decoder) DecodeTiles(ctx context.Context, tiles []TileInfo, sinkFor func(TileInfo) BlockSink) DecoderResult {
	workers := d.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	result := DecoderResult{Tiles: make([]TileResult, len(tiles))}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, info := range tiles {
		i, info := i, info
		result.Tiles[i].TileNum = info.TileNum
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				result.Tiles[i].Err = wrapTileError(err, info.TileNum)
				return nil
			}
			var sink BlockSink
			if sinkFor != nil {
				sink = sinkFor(info)
			}
			t := NewTile(d.seq, d.fh, d.grid, d.NewTileCopy(), info, sink)
			t.CheckCausality = d.cfg.CheckCausality
			err := t.Decode()
			result.Tiles[i].Blocks = t.Blocks()
			if err != nil {
				result.Tiles[i].Err = wrapTileError(err, info.TileNum)
				d.logf("tile %d: %v", info.TileNum, err)
				return nil
			}
			d.CommitIfLastTile(info.TileNum, t.Cdf())
			return nil
		})
	}
	_ = g.Wait()
	return result
}

func (d *Decoder) logf(format string, args ...any) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Printf(format, args...)
	}
}
