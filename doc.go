// Package tileatlas builds texture atlases for ordered tilesets.
//
// Unlike general atlas packers, tileatlas preserves the exact insertion
// order of the textures it is given: every tile lands on a uniform grid
// at a known, stable index. Stable indices are what make the atlas
// usable for tile animations, where frames are designated by index
// ranges to loop through, and for retrieving a sub-texture without
// holding on to its handle ("tile 7" instead of passing a handle
// around).
//
// # Quick Start
//
//	store := tileatlas.NewMemoryStore()
//	builder := tileatlas.New[int](tileatlas.WithMaxColumns(8))
//
//	for _, handle := range handles { // handles in desired tile order
//		tex, _ := store.Get(handle)
//		if _, err := builder.AddTexture(handle, tex); err != nil {
//			// oversized tile, skipped
//		}
//	}
//
//	atlas, err := builder.Finish(store)
//	if err != nil {
//		// no tiles were added, or strict-mode format mismatch
//	}
//	frame0, _ := atlas.Rect(0)
//
// # Grid layout
//
// All tiles share one tile size, either fixed up front with
// WithTileSize or auto-detected from the first texture added. Tiles
// smaller than the tile size are accepted and keep a transparent border
// in their cell; larger ones are rejected. Tiles fill rows left to
// right, wrapping after MaxColumns tiles (a single row if unset).
//
// # Storage
//
// The builder has no asset system of its own. It reads tile pixel data
// from, and registers the finished atlas with, any TextureStore
// implementation; MemoryStore is provided for tests and standalone
// tools. The builder is generic over the store's handle type and treats
// handles as inert map keys.
//
// # Format conversion
//
// Tiles whose pixel format differs from the atlas format are converted
// automatically by default. A tile whose conversion fails is logged and
// left blank in the atlas rather than failing the build; disabling
// automatic conversion instead makes any format mismatch abort the
// whole build. See TileAtlasBuilder.Finish for the exact semantics.
package tileatlas
