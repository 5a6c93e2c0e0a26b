package tileatlas

import (
	"errors"
	"fmt"
)

// Builder errors.
var (
	// ErrEmptyAtlas is returned by Finish when no tiles were added.
	ErrEmptyAtlas = errors.New("tileatlas: the atlas does not contain any tiles")

	// ErrBuilderConsumed is returned when a builder is used again after
	// Finish. Builders are single-use.
	ErrBuilderConsumed = errors.New("tileatlas: builder already consumed by Finish")
)

// InvalidTileSizeError is returned by AddTexture when a candidate tile
// does not fit the established tile size. The tile is not added; the
// builder is otherwise unchanged.
type InvalidTileSizeError struct {
	Expected Size
	Found    Size
}

func (e *InvalidTileSizeError) Error() string {
	return fmt.Sprintf("tileatlas: tile does not fit the current tile size (expected %v, found %v)",
		e.Expected, e.Found)
}

// FormatMismatchError is returned by Finish when a tile's format
// differs from the atlas format and automatic conversion is disabled.
// The whole build is aborted; no atlas is produced.
type FormatMismatchError struct {
	Texture Format
	Atlas   Format
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("tileatlas: texture format %v does not match atlas format %v and auto conversion is disabled",
		e.Texture, e.Atlas)
}

// config holds builder configuration shared by options and setters.
type config struct {
	tileSize    Size
	hasTileSize bool
	maxColumns  int // 0 means unset: a single row
	format      Format
	autoConvert bool
}

// Option configures a TileAtlasBuilder during creation.
type Option func(*config)

// WithTileSize fixes the tile size instead of auto-detecting it from
// the first added texture.
func WithTileSize(size Size) Option {
	return func(c *config) {
		c.tileSize = size
		c.hasTileSize = true
	}
}

// WithMaxColumns sets the maximum number of tiles per row before
// wrapping. Zero means no wrapping (a single row).
func WithMaxColumns(n int) Option {
	return func(c *config) {
		c.maxColumns = max(n, 0)
	}
}

// WithFormat sets the pixel format of the composed atlas texture.
// The default is FormatRGBA8.
func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithAutoConvert controls whether tiles whose format differs from the
// atlas format are converted automatically (the default) or cause
// Finish to fail.
func WithAutoConvert(enabled bool) Option {
	return func(c *config) {
		c.autoConvert = enabled
	}
}

// TileAtlasBuilder accumulates an ordered list of tile textures and
// composes them into a single atlas texture on a uniform grid.
//
// Unlike general rect-packing atlas builders, the tile order is
// preserved exactly: the i-th texture added occupies tile index i in
// the result. Known, stable indices make the atlas usable for tile
// animations, where frames are designated by index ranges, and for
// addressing tiles without holding their handles.
//
// H is the host's opaque texture handle type (see TextureStore).
//
// A builder is a transient, single-use value: construct it, add tiles
// in the desired order, then call Finish exactly once. It is not safe
// for concurrent use; build one atlas per builder.
type TileAtlasBuilder[H comparable] struct {
	config

	// handles is the ordered collection of tile handles. Order is the
	// only index-assignment rule.
	handles []H

	// consumed is set by Finish; all further operations fail.
	consumed bool
}

// New creates a builder with default configuration: tile size
// auto-detected from the first added texture, a single row, FormatRGBA8
// atlas format, automatic format conversion enabled.
func New[H comparable](opts ...Option) *TileAtlasBuilder[H] {
	c := config{
		format:      FormatRGBA8,
		autoConvert: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &TileAtlasBuilder[H]{config: c}
}

// TileSize returns the current tile size, or false if it has not been
// fixed or auto-detected yet.
func (b *TileAtlasBuilder[H]) TileSize() (Size, bool) {
	return b.tileSize, b.hasTileSize
}

// SetTileSize fixes the tile size.
//
// All previously added tiles are discarded: their indices cannot be
// guaranteed valid against the new size. This is a deliberate side
// effect of re-configuration, not incidental.
func (b *TileAtlasBuilder[H]) SetTileSize(size Size) {
	b.tileSize = size
	b.hasTileSize = true
	b.handles = b.handles[:0]
}

// MaxColumns returns the effective number of columns: the configured
// value, or the current number of added tiles if unset.
func (b *TileAtlasBuilder[H]) MaxColumns() int {
	if b.maxColumns > 0 {
		return b.maxColumns
	}
	return len(b.handles)
}

// SetMaxColumns sets the maximum number of tiles per row before
// wrapping. Zero or negative clears the limit (a single row).
// Already-added tiles are unaffected.
func (b *TileAtlasBuilder[H]) SetMaxColumns(n int) {
	b.maxColumns = max(n, 0)
}

// SetFormat sets the pixel format of the composed atlas texture.
func (b *TileAtlasBuilder[H]) SetFormat(format Format) {
	b.format = format
}

// SetAutoConvert controls automatic per-tile format conversion.
func (b *TileAtlasBuilder[H]) SetAutoConvert(enabled bool) {
	b.autoConvert = enabled
}

// Len returns the current number of added tiles.
func (b *TileAtlasBuilder[H]) Len() int {
	return len(b.handles)
}

// AddTexture registers a texture to be copied into the atlas and
// returns its tile index.
//
// If no tile size has been set, the texture's own dimensions become the
// tile size for the atlas. Otherwise the texture must fit within the
// tile size in both dimensions; an oversized texture is rejected with
// *InvalidTileSizeError and the builder state is left unchanged.
// Textures smaller than the tile size are accepted and leave an
// unfilled border in their cell.
//
// The texture's pixel data is validated here but fetched again from the
// store at Finish time; the caller must keep the handle resolvable
// until then.
func (b *TileAtlasBuilder[H]) AddTexture(handle H, tex *Texture) (int, error) {
	if b.consumed {
		return 0, ErrBuilderConsumed
	}

	if b.hasTileSize {
		if !b.tileSize.Contains(tex.Size()) {
			err := &InvalidTileSizeError{Expected: b.tileSize, Found: tex.Size()}
			Logger().Warn("tileatlas: texture does not fit tile size, skipping",
				"expected", err.Expected.String(), "found", err.Found.String())
			return 0, err
		}
	} else {
		b.tileSize = tex.Size()
		b.hasTileSize = true
	}

	b.handles = append(b.handles, handle)
	return len(b.handles) - 1, nil
}

// Finish composes the atlas and registers it with the store.
//
// Tiles are placed in insertion order on a uniform grid: MaxColumns
// tiles per row, wrapping to as many rows as needed. The composed
// texture is zero-filled (transparent black) before tiles are blitted,
// so cells of tiles smaller than the tile size keep a transparent
// border.
//
// Tiles whose format differs from the atlas format are converted when
// automatic conversion is enabled; if conversion itself fails, the
// failure is logged and that tile's region is left blank, with no error
// surfaced. With automatic conversion disabled, the first
// differing tile aborts the whole build with *FormatMismatchError and
// any partial work is discarded. Callers choosing strict mode must be
// aware of this asymmetry.
//
// Every added handle must still resolve through the store; a missing
// handle is a contract violation and panics.
//
// Finish consumes the builder: subsequent calls return
// ErrBuilderConsumed.
func (b *TileAtlasBuilder[H]) Finish(store TextureStore[H]) (*TileAtlas[H], error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}

	total := len(b.handles)
	if total == 0 {
		return nil, ErrEmptyAtlas
	}

	cols := b.MaxColumns()
	rows := (total + cols - 1) / cols

	handles := b.handles
	b.handles = nil
	b.consumed = true

	atlasTex, err := NewTexture(cols*b.tileSize.Width, rows*b.tileSize.Height, b.format)
	if err != nil {
		return nil, fmt.Errorf("tileatlas: allocate atlas texture: %w", err)
	}

	rects := make([]Rect, 0, total)
	indices := make(map[H]int, total)

	row, col := 0, 0
	for i, handle := range handles {
		tex, ok := store.Get(handle)
		if !ok {
			panic(fmt.Sprintf("tileatlas: handle %v for tile %d not present in store at Finish", handle, i))
		}

		rect := RectFromSize(Point{X: col * b.tileSize.Width, Y: row * b.tileSize.Height}, b.tileSize)
		rects = append(rects, rect)
		indices[handle] = i

		if tex.Format() != b.format && !b.autoConvert {
			Logger().Warn("tileatlas: texture format does not match atlas format",
				"texture", tex.Format().String(), "atlas", b.format.String())
			return nil, &FormatMismatchError{Texture: tex.Format(), Atlas: b.format}
		}
		b.copyConverted(atlasTex, tex, rect.Min)

		if (i+1)%cols == 0 {
			row++
			col = 0
		} else {
			col++
		}
	}

	return &TileAtlas[H]{
		Texture: store.Add(atlasTex),
		Size:    atlasTex.Size(),
		Tiles:   rects,
		Indices: indices,
	}, nil
}

// copyConverted blits a tile into the atlas at the given position,
// converting it to the atlas format first if necessary. A conversion
// failure is logged and leaves the tile's region zero-filled.
func (b *TileAtlasBuilder[H]) copyConverted(atlas, tex *Texture, at Point) {
	if tex.Format() == b.format {
		blit(atlas, tex, at)
		return
	}

	converted, err := tex.Convert(b.format)
	if err != nil {
		Logger().Error("tileatlas: failed to convert texture, leaving tile blank",
			"from", tex.Format().String(), "to", b.format.String(), "error", err)
		return
	}
	Logger().Debug("tileatlas: converting texture",
		"from", tex.Format().String(), "to", b.format.String())
	blit(atlas, converted, at)
}

// blit copies src into dst with its top-left corner at the given
// position, scanline by scanline. Both textures must share a format.
// This is a direct memory copy, not a resampling operation; src must
// already fit within dst at that position.
func blit(dst, src *Texture, at Point) {
	bpp := dst.Format().BytesPerPixel()
	rowLen := src.Width() * bpp
	x0 := at.X * bpp

	for y := range src.Height() {
		dstRow := dst.RowBytes(at.Y + y)
		copy(dstRow[x0:x0+rowLen], src.RowBytes(y))
	}
}
