package boulder

import (
	"bytes"
	"context"
	"log"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// block64 codes one unsplit 64x64 superblock with a skipped intra block.
func block64(yMode int) []byte {
	return newStreamWriter().symbol(ElemPartition, PARTITION_NONE, 4, 0).
		symbol(ElemSkip, 1, 0).
		symbol(ElemIntraFrameYMode, yMode, 0, 0).
		bytes()
}

func twoTileFrame() (*SequenceHeader, *FrameHeader, []TileInfo) {
	seq, fh := testHeaders(16, 32, 2)
	tiles := []TileInfo{
		fh.Tile(0, block64(SMOOTH_V_PRED)),
		fh.Tile(1, block64(PAETH_PRED)),
	}
	return seq, fh, tiles
}

func TestDecodeTiles(t *testing.T) {
	seq, fh, tiles := twoTileFrame()
	d := NewDecoder(Config{Workers: 2, CheckCausality: true}, seq, fh, nil)
	sinks := make([]*recordingSink, len(tiles))
	result := d.DecodeTiles(context.Background(), tiles, func(info TileInfo) BlockSink {
		sinks[info.TileNum] = &recordingSink{}
		return sinks[info.TileNum]
	})

	require.Len(t, result.Tiles, 2)
	assert.Empty(t, result.Failed())
	for i, tr := range result.Tiles {
		assert.Equal(t, i, tr.TileNum)
		assert.Equal(t, 1, tr.Blocks)
		require.Len(t, sinks[i].blocks, 1)
		assert.Equal(t, BLOCK_64X64, sinks[i].blocks[0].MiSize)
	}
	g := d.Grid()
	assert.Equal(t, uint8(SMOOTH_V_PRED), g.YModes[g.index(15, 15)])
	assert.Equal(t, uint8(PAETH_PRED), g.YModes[g.index(0, 16)])
	assert.Equal(t, uint8(TX_64X64), g.TxSizes[g.index(8, 31)])
}

func TestTileResultsDoNotDependOnOrder(t *testing.T) {
	seq, fh, tiles := twoTileFrame()
	parallel := NewDecoder(Config{Workers: 2}, seq, fh, nil)
	parallel.DecodeTiles(context.Background(), tiles, nil)

	reversed := []TileInfo{tiles[1], tiles[0]}
	serial := NewDecoder(Config{Workers: 1}, seq, fh, nil)
	result := serial.DecodeTiles(context.Background(), reversed, nil)

	assert.Equal(t, 1, result.Tiles[0].TileNum)
	assert.Equal(t, parallel.Grid().YModes, serial.Grid().YModes)
	assert.Equal(t, parallel.Grid().order, serial.Grid().order)
}

func TestFailedTileDoesNotStopSiblings(t *testing.T) {
	seq, fh, tiles := twoTileFrame()
	tiles[0].Data = append(tiles[0].Data, 0x01)
	var buf bytes.Buffer
	d := NewDecoder(Config{Logger: log.New(&buf, "", 0)}, seq, fh, nil)

	result := d.DecodeTiles(context.Background(), tiles, nil)

	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, 0, failed[0].TileNum)
	assert.Contains(t, failed[0].Err.Error(), "tile 0")
	de, ok := AsDecodeError(failed[0].Err)
	require.True(t, ok)
	assert.Equal(t, BitstreamConformance, de.Kind)
	assert.NoError(t, result.Tiles[1].Err)
	assert.Equal(t, uint8(PAETH_PRED), d.Grid().YModes[d.Grid().index(0, 16)])
	assert.Contains(t, buf.String(), "tile 0: ")
}

func TestCanceledContextSkipsTiles(t *testing.T) {
	seq, fh, tiles := twoTileFrame()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewDecoder(Config{}, seq, fh, nil).DecodeTiles(ctx, tiles, nil)

	for _, tr := range result.Tiles {
		assert.ErrorIs(t, tr.Err, context.Canceled)
		assert.Equal(t, context.Canceled, errors.Cause(tr.Err))
		assert.Zero(t, tr.Blocks)
	}
}

func TestCommitIfLastTile(t *testing.T) {
	seq, fh, _ := twoTileFrame()
	fh.ContextUpdateTileId = 1
	d := NewDecoder(Config{}, seq, fh, nil)

	cdf := d.NewTileCopy()
	cdf.NonCoeff.Skip[0][0] = 1000
	cdf.NonCoeff.Skip[0][1] = 7

	assert.False(t, d.CommitIfLastTile(0, cdf))
	assert.Equal(t, DefaultCdfContext(fh.BaseQIdx), d.EndFrame())

	assert.True(t, d.CommitIfLastTile(1, cdf))
	saved := d.EndFrame()
	assert.Equal(t, uint16(1000), saved.NonCoeff.Skip[0][0])
	assert.Equal(t, uint16(0), saved.NonCoeff.Skip[0][1])
	assert.Equal(t, uint16(7), cdf.NonCoeff.Skip[0][1])

	fh.DisableFrameEndUpdateCdf = true
	d = NewDecoder(Config{}, seq, fh, nil)
	assert.False(t, d.CommitIfLastTile(1, cdf))
	assert.Equal(t, DefaultCdfContext(fh.BaseQIdx), d.EndFrame())
}

func TestDecodeTilesCommitsDesignatedTile(t *testing.T) {
	seq, fh, tiles := twoTileFrame()
	// Each table row is used once per tile, so the streams decode the same
	// with adaptation enabled.
	fh.DisableCdfUpdate = false
	fh.ContextUpdateTileId = 1
	d := NewDecoder(Config{}, seq, fh, nil)

	result := d.DecodeTiles(context.Background(), tiles, nil)

	require.Empty(t, result.Failed())
	saved := d.EndFrame()
	def := DefaultCdfContext(fh.BaseQIdx)
	assert.NotEqual(t, def.NonCoeff.Skip[0][0], saved.NonCoeff.Skip[0][0])
	assert.Equal(t, uint16(0), saved.NonCoeff.Skip[0][1])
}

func TestNewDecoderLoadsReferenceTables(t *testing.T) {
	seq, fh, _ := twoTileFrame()
	ref := DefaultCdfContext(0)
	ref.NonCoeff.Skip[1][0] = 1234

	d := NewDecoder(Config{}, seq, fh, ref)
	c := d.NewTileCopy()
	assert.Equal(t, uint16(1234), c.NonCoeff.Skip[1][0])

	c.NonCoeff.Skip[1][0] = 1
	assert.Equal(t, uint16(1234), ref.NonCoeff.Skip[1][0])
	assert.Equal(t, uint16(1234), d.NewTileCopy().NonCoeff.Skip[1][0])
}

func TestTileDecodeIsDeterministic(t *testing.T) {
	seq, fh := testHeaders(8, 8, 1)
	fh.DisableCdfUpdate = false
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 64)
	rng.Read(data)

	run := func() (*CdfContext, *recordingSink, error) {
		sink := &recordingSink{}
		tile := newTestTile(seq, fh, data, sink)
		err := tile.Decode()
		return tile.Cdf(), sink, err
	}
	cdf1, sink1, err1 := run()
	cdf2, sink2, err2 := run()

	if err1 != nil {
		assert.EqualError(t, err2, err1.Error())
	} else {
		assert.NoError(t, err2)
	}
	assert.Equal(t, sink1, sink2)
	assert.Equal(t, cdf1, cdf2)
}
