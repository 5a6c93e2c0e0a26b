package tileatlas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Register additional decoders so LoadTexture handles the formats
	// tile art commonly ships in.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("tileatlas: empty image data")
)

// LoadTexture loads a texture from an image file, auto-detecting the
// format. Supported formats: PNG, JPEG, BMP, TIFF, WebP.
// The resulting texture is in FormatRGBA8.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("tileatlas: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeTexture(f)
}

// DecodeTexture decodes a texture from the given reader, auto-detecting
// the image format. The resulting texture is in FormatRGBA8.
func DecodeTexture(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("tileatlas: decode image: %w", err)
	}
	return FromStdImage(img), nil
}

// DecodeTextureBytes decodes a texture from a byte slice, auto-detecting
// the image format.
func DecodeTextureBytes(data []byte) (*Texture, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeTexture(bytes.NewReader(data))
}

// SavePNG saves the texture as a PNG file.
func (t *Texture) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("tileatlas: create file: %w", err)
	}

	if err := t.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the texture as PNG to the given writer.
func (t *Texture) EncodePNG(w io.Writer) error {
	img := t.ToStdImage()
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("tileatlas: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the texture as JPEG to the given writer with the
// given quality (1-100).
func (t *Texture) EncodeJPEG(w io.Writer, quality int) error {
	quality = min(max(quality, 1), 100)

	img := t.ToStdImage()
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("tileatlas: encode JPEG: %w", err)
	}
	return nil
}

// FromStdImage creates a Texture from a standard library image.Image.
// The resulting texture is in FormatRGBA8 (non-premultiplied).
func FromStdImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	tex, _ := NewTexture(width, height, FormatRGBA8)

	// Fast path for NRGBA images (what PNG decoding usually yields).
	if nrgba, ok := img.(*image.NRGBA); ok {
		if nrgba.Stride == tex.Stride() {
			copy(tex.Data(), nrgba.Pix)
			return tex
		}
		for y := range height {
			srcStart := y * nrgba.Stride
			copy(tex.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
		}
		return tex
	}

	// Generic slow path for any image type.
	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			// RGBA() returns 16-bit values, scale to 8-bit.
			_ = tex.SetRGBA(x, y, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}

	return tex
}

// ToStdImage converts the texture to a standard library image.Image.
// Returns *image.NRGBA for color formats, *image.Gray for grayscale.
func (t *Texture) ToStdImage() image.Image {
	rect := image.Rect(0, 0, t.width, t.height)

	switch t.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range t.height {
			copy(gray.Pix[y*gray.Stride:], t.RowBytes(y))
		}
		return gray

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		if t.stride == nrgba.Stride {
			copy(nrgba.Pix, t.data)
		} else {
			for y := range t.height {
				copy(nrgba.Pix[y*nrgba.Stride:], t.RowBytes(y))
			}
		}
		return nrgba

	default:
		// RGB8, BGRA8: go through GetRGBA.
		nrgba := image.NewNRGBA(rect)
		for y := range t.height {
			for x := range t.width {
				r, g, b, a := t.GetRGBA(x, y)
				off := y*nrgba.Stride + x*4
				nrgba.Pix[off] = r
				nrgba.Pix[off+1] = g
				nrgba.Pix[off+2] = b
				nrgba.Pix[off+3] = a
			}
		}
		return nrgba
	}
}
