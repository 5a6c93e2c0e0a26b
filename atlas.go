package tileatlas

import "github.com/gogpu/gputypes"

// TileAtlas is the result of a finished build: the composed texture's
// handle in the store, the atlas dimensions, one sub-rectangle per tile
// in insertion order, and the handle-to-index lookup.
//
// If the same handle was added more than once, Tiles keeps a rectangle
// for every addition while Indices collapses to a single entry (the
// last index wins). Callers that add duplicate handles should address
// tiles by index, not by handle.
type TileAtlas[H comparable] struct {
	// Texture is the handle of the composed atlas texture, as returned
	// by the store it was registered with.
	Texture H

	// Size is the atlas dimensions in pixels.
	Size Size

	// Tiles holds one rectangle per added tile, index-aligned with
	// insertion order.
	Tiles []Rect

	// Indices maps each added handle to its tile index.
	Indices map[H]int
}

// Len returns the number of tiles in the atlas.
func (a *TileAtlas[H]) Len() int {
	return len(a.Tiles)
}

// Rect returns the sub-rectangle for the tile at the given index.
func (a *TileAtlas[H]) Rect(index int) (Rect, bool) {
	if index < 0 || index >= len(a.Tiles) {
		return Rect{}, false
	}
	return a.Tiles[index], true
}

// Index returns the tile index for a handle.
func (a *TileAtlas[H]) Index(handle H) (int, bool) {
	i, ok := a.Indices[handle]
	return i, ok
}

// Extent returns the atlas dimensions as a gputypes.Extent3D with a
// depth of 1, the shape used when creating a GPU texture for upload.
func (a *TileAtlas[H]) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(a.Size.Width),  //nolint:gosec // atlas dimensions are positive
		Height:             uint32(a.Size.Height), //nolint:gosec // atlas dimensions are positive
		DepthOrArrayLayers: 1,
	}
}
