// Command tileatlas packs image files into a single tile atlas.
//
// Input files are given as arguments and are packed in argument order,
// so the resulting tile indices follow the command line. The composed
// atlas is written as PNG alongside a JSON table of contents mapping
// each input file to its index and sub-rectangle.
//
// Usage:
//
//	tileatlas -o atlas -columns 8 tiles/*.png
package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/gogpu/tileatlas"
)

// tocEntry describes one tile in the JSON table of contents.
type tocEntry struct {
	Index int    `json:"index"`
	File  string `json:"file"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
}

func main() {
	var (
		output     = flag.String("o", "atlas", "base name of the .png and .json files to write")
		columns    = flag.Int("columns", 0, "maximum tiles per row before wrapping (0 = single row)")
		tileWidth  = flag.Int("tile-width", 0, "fixed tile width (0 = auto-detect from first image)")
		tileHeight = flag.Int("tile-height", 0, "fixed tile height (0 = auto-detect from first image)")
		verbose    = flag.Bool("v", false, "log skipped tiles and conversions")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no input images given")
	}
	if *verbose {
		tileatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var opts []tileatlas.Option
	if *columns > 0 {
		opts = append(opts, tileatlas.WithMaxColumns(*columns))
	}
	if *tileWidth > 0 && *tileHeight > 0 {
		opts = append(opts, tileatlas.WithTileSize(tileatlas.Size{
			Width:  *tileWidth,
			Height: *tileHeight,
		}))
	}

	store := tileatlas.NewMemoryStore()
	builder := tileatlas.New[int](opts...)

	// handle -> source file, for the table of contents.
	files := make(map[int]string, flag.NArg())

	for _, path := range flag.Args() {
		tex, err := tileatlas.LoadTexture(path)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}

		handle := store.Add(tex)
		index, err := builder.AddTexture(handle, tex)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		files[handle] = path
		log.Printf("Added %s at index %d", path, index)
	}

	atlas, err := builder.Finish(store)
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}

	composed, ok := store.Get(atlas.Texture)
	if !ok {
		log.Fatal("composed atlas texture missing from store")
	}

	pngPath := *output + ".png"
	if err := composed.SavePNG(pngPath); err != nil {
		log.Fatalf("Failed to save %s: %v", pngPath, err)
	}

	toc := make([]tocEntry, 0, atlas.Len())
	for handle, index := range atlas.Indices {
		rect := atlas.Tiles[index]
		toc = append(toc, tocEntry{
			Index: index,
			File:  files[handle],
			X:     rect.Min.X,
			Y:     rect.Min.Y,
			W:     rect.Dx(),
			H:     rect.Dy(),
		})
	}
	sort.Slice(toc, func(i, j int) bool { return toc[i].Index < toc[j].Index })

	jsonPath := *output + ".json"
	f, err := os.Create(jsonPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", jsonPath, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "\t")
	if err := enc.Encode(toc); err != nil {
		log.Fatalf("Failed to write %s: %v", jsonPath, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", jsonPath, err)
	}

	log.Printf("Atlas saved to %s (%s, %d tiles), toc in %s",
		pngPath, atlas.Size, atlas.Len(), jsonPath)
}
