package tileatlas

import "errors"

// Common errors for texture operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("tileatlas: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("tileatlas: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("tileatlas: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("tileatlas: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside texture bounds.
	ErrOutOfBounds = errors.New("tileatlas: coordinates out of bounds")
)

// Texture is a rectangular pixel buffer in one of the supported formats.
//
// Pixel data is stored in a contiguous byte slice, row-major, with an
// explicit stride so views into larger buffers share data without copying.
//
// Thread safety: Texture is safe for concurrent read access. Write
// operations require external synchronization.
type Texture struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewTexture creates a new zero-filled texture with the given dimensions
// and format. Returns an error if dimensions are invalid or the format
// is unknown.
func NewTexture(width, height int, format Format) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Texture{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// NewTextureFromRaw creates a Texture from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the
// texture. Stride must be at least format.RowBytes(width).
func NewTextureFromRaw(data []byte, width, height int, format Format, stride int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	minStride := format.RowBytes(width)
	if stride < minStride {
		return nil, ErrInvalidStride
	}

	requiredSize := stride*(height-1) + minStride
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &Texture{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the texture.
func (t *Texture) Clone() *Texture {
	newData := make([]byte, len(t.data))
	copy(newData, t.data)

	return &Texture{
		data:   newData,
		width:  t.width,
		height: t.height,
		stride: t.stride,
		format: t.format,
	}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Size returns the texture dimensions.
func (t *Texture) Size() Size {
	return Size{Width: t.width, Height: t.height}
}

// Stride returns the number of bytes per row (including padding).
func (t *Texture) Stride() int {
	return t.stride
}

// Format returns the pixel format.
func (t *Texture) Format() Format {
	return t.format
}

// Data returns the raw pixel data slice.
func (t *Texture) Data() []byte {
	return t.data
}

// ByteSize returns the total size of the pixel data in bytes.
func (t *Texture) ByteSize() int {
	return len(t.data)
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (t *Texture) RowBytes(y int) []byte {
	if y < 0 || y >= t.height {
		return nil
	}
	start := y * t.stride
	end := start + t.format.RowBytes(t.width)
	return t.data[start:end]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (t *Texture) PixelOffset(x, y int) int {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return -1
	}
	return y*t.stride + x*t.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (t *Texture) PixelBytes(x, y int) []byte {
	offset := t.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	bpp := t.format.BytesPerPixel()
	return t.data[offset : offset+bpp]
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// For grayscale formats, r=g=b=gray and a=255. For formats without
// alpha, a=255. Returns (0,0,0,0) if coordinates are out of bounds.
func (t *Texture) GetRGBA(x, y int) (r, g, b, a uint8) {
	pixel := t.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0, 0
	}

	switch t.format {
	case FormatGray8:
		v := pixel[0]
		return v, v, v, 255
	case FormatRGB8:
		return pixel[0], pixel[1], pixel[2], 255
	case FormatRGBA8:
		return pixel[0], pixel[1], pixel[2], pixel[3]
	case FormatBGRA8:
		return pixel[2], pixel[1], pixel[0], pixel[3]
	default:
		return 0, 0, 0, 0
	}
}

// SetRGBA sets the color at (x, y) from (r, g, b, a) in 0-255 range.
// For grayscale formats, uses standard luminance weights.
// Returns ErrOutOfBounds if coordinates are outside texture bounds.
func (t *Texture) SetRGBA(x, y int, r, g, b, a uint8) error {
	offset := t.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	switch t.format {
	case FormatGray8:
		// Standard luminance: 0.299*R + 0.587*G + 0.114*B
		gray := (int(r)*299 + int(g)*587 + int(b)*114) / 1000
		t.data[offset] = byte(gray)
	case FormatRGB8:
		t.data[offset] = r
		t.data[offset+1] = g
		t.data[offset+2] = b
	case FormatRGBA8:
		t.data[offset] = r
		t.data[offset+1] = g
		t.data[offset+2] = b
		t.data[offset+3] = a
	case FormatBGRA8:
		t.data[offset] = b
		t.data[offset+1] = g
		t.data[offset+2] = r
		t.data[offset+3] = a
	}

	return nil
}

// Clear sets all pixels to zero (transparent black for RGBA formats).
func (t *Texture) Clear() {
	clear(t.data)
}

// Fill sets all pixels to the given RGBA color.
func (t *Texture) Fill(r, g, b, a uint8) {
	for y := range t.height {
		for x := range t.width {
			_ = t.SetRGBA(x, y, r, g, b, a)
		}
	}
}

// SubTexture returns a view into a rectangular region of the texture.
// The returned Texture shares the underlying data with the original;
// modifications to either affect both. Returns nil if the rectangle
// is empty or outside the texture.
func (t *Texture) SubTexture(r Rect) *Texture {
	if r.Min.X < 0 || r.Min.Y < 0 || r.Dx() <= 0 || r.Dy() <= 0 {
		return nil
	}
	if r.Max.X > t.width || r.Max.Y > t.height {
		return nil
	}

	bpp := t.format.BytesPerPixel()
	offset := r.Min.Y*t.stride + r.Min.X*bpp
	endOffset := (r.Max.Y-1)*t.stride + r.Max.X*bpp

	return &Texture{
		data:   t.data[offset:endOffset],
		width:  r.Dx(),
		height: r.Dy(),
		stride: t.stride, // keep original stride for proper row access
		format: t.format,
	}
}

// Convert returns a new texture with the pixel data transcoded to the
// target format. Converting to the texture's own format returns a deep
// copy. Returns an error if either format is unknown.
//
// Conversion goes through 8-bit RGBA, so converting to a format with
// fewer channels is lossy (alpha is dropped for RGB8, color collapses
// to luminance for Gray8).
func (t *Texture) Convert(target Format) (*Texture, error) {
	if !t.format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if !target.IsValid() {
		return nil, ErrInvalidFormat
	}
	if target == t.format {
		return t.Clone(), nil
	}

	out, err := NewTexture(t.width, t.height, target)
	if err != nil {
		return nil, err
	}

	// Fast path: RGBA8 <-> BGRA8 is a channel swap on equal-sized pixels.
	if (t.format == FormatRGBA8 && target == FormatBGRA8) ||
		(t.format == FormatBGRA8 && target == FormatRGBA8) {
		for y := range t.height {
			src := t.RowBytes(y)
			dst := out.RowBytes(y)
			for x := 0; x < len(src); x += 4 {
				dst[x] = src[x+2]
				dst[x+1] = src[x+1]
				dst[x+2] = src[x]
				dst[x+3] = src[x+3]
			}
		}
		return out, nil
	}

	for y := range t.height {
		for x := range t.width {
			r, g, b, a := t.GetRGBA(x, y)
			_ = out.SetRGBA(x, y, r, g, b, a)
		}
	}
	return out, nil
}
