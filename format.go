package tileatlas

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format for tile and atlas textures.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel).
	// This is the default atlas format.
	FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA (4 bytes per pixel).
	// Common on Windows and some GPU swapchain formats.
	FormatBGRA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		HasAlpha:      false,
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		HasAlpha:      false,
	},
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
	},
	FormatBGRA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// GPUFormat returns the gputypes.TextureFormat equivalent of this format,
// for uploading a finished atlas as a GPU texture. Formats without a
// direct GPU equivalent (FormatRGB8) return TextureFormatUndefined.
func (f Format) GPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FormatFromGPU returns the Format equivalent of a gputypes.TextureFormat.
// Returns false for GPU formats the atlas builder cannot store.
func FormatFromGPU(f gputypes.TextureFormat) (Format, bool) {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return FormatGray8, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8, true
	default:
		return 0, false
	}
}
