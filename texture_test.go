package tileatlas

import (
	"bytes"
	"errors"
	"testing"
)

// --- Construction Tests ---

func TestNewTexture(t *testing.T) {
	tex, err := NewTexture(16, 8, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewTexture failed: %v", err)
	}
	if tex.Width() != 16 || tex.Height() != 8 {
		t.Errorf("dimensions = %dx%d, want 16x8", tex.Width(), tex.Height())
	}
	if tex.Stride() != 64 {
		t.Errorf("Stride() = %d, want 64", tex.Stride())
	}
	if tex.ByteSize() != 512 {
		t.Errorf("ByteSize() = %d, want 512", tex.ByteSize())
	}
	for _, b := range tex.Data() {
		if b != 0 {
			t.Fatal("new texture is not zero-filled")
		}
	}
}

func TestNewTexture_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		format  Format
		wantErr error
	}{
		{"zero width", 0, 8, FormatRGBA8, ErrInvalidDimensions},
		{"negative height", 8, -1, FormatRGBA8, ErrInvalidDimensions},
		{"unknown format", 8, 8, Format(99), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTexture(tt.w, tt.h, tt.format); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTexture() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTextureFromRaw(t *testing.T) {
	data := make([]byte, 4*4*4)
	tex, err := NewTextureFromRaw(data, 4, 4, FormatRGBA8, 16)
	if err != nil {
		t.Fatalf("NewTextureFromRaw failed: %v", err)
	}
	// Shares data, no copy.
	tex.Data()[0] = 42
	if data[0] != 42 {
		t.Error("NewTextureFromRaw copied the data")
	}

	if _, err := NewTextureFromRaw(data, 4, 4, FormatRGBA8, 8); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("short stride error = %v, want ErrInvalidStride", err)
	}
	if _, err := NewTextureFromRaw(data[:10], 4, 4, FormatRGBA8, 16); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}

// --- Pixel Access Tests ---

func TestTexture_PixelAccess(t *testing.T) {
	tex, _ := NewTexture(8, 8, FormatRGBA8)

	if err := tex.SetRGBA(3, 5, 10, 20, 30, 40); err != nil {
		t.Fatalf("SetRGBA failed: %v", err)
	}
	r, g, b, a := tex.GetRGBA(3, 5)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("GetRGBA = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}

	if err := tex.SetRGBA(8, 0, 0, 0, 0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetRGBA out of bounds error = %v, want ErrOutOfBounds", err)
	}
	r, g, b, a = tex.GetRGBA(-1, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Error("GetRGBA out of bounds should return zeros")
	}
}

func TestTexture_BGRAChannelOrder(t *testing.T) {
	tex, _ := NewTexture(2, 2, FormatBGRA8)
	_ = tex.SetRGBA(0, 0, 10, 20, 30, 40)

	// Raw bytes are stored B, G, R, A.
	want := []byte{30, 20, 10, 40}
	if !bytes.Equal(tex.PixelBytes(0, 0), want) {
		t.Errorf("raw BGRA bytes = %v, want %v", tex.PixelBytes(0, 0), want)
	}
	r, g, b, a := tex.GetRGBA(0, 0)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("GetRGBA = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
}

func TestTexture_RowBytes(t *testing.T) {
	tex, _ := NewTexture(4, 4, FormatRGB8)
	row := tex.RowBytes(2)
	if len(row) != 12 {
		t.Errorf("len(RowBytes(2)) = %d, want 12", len(row))
	}
	if tex.RowBytes(4) != nil {
		t.Error("RowBytes out of bounds should return nil")
	}
}

func TestTexture_FillAndClear(t *testing.T) {
	tex, _ := NewTexture(4, 4, FormatRGBA8)
	tex.Fill(1, 2, 3, 4)
	r, g, b, a := tex.GetRGBA(3, 3)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("after Fill: (%d,%d,%d,%d)", r, g, b, a)
	}

	tex.Clear()
	r, g, b, a = tex.GetRGBA(3, 3)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("after Clear: (%d,%d,%d,%d), want zeros", r, g, b, a)
	}
}

func TestTexture_Clone(t *testing.T) {
	tex, _ := NewTexture(4, 4, FormatRGBA8)
	tex.Fill(9, 9, 9, 9)

	dup := tex.Clone()
	dup.Fill(1, 1, 1, 1)

	r, _, _, _ := tex.GetRGBA(0, 0)
	if r != 9 {
		t.Error("Clone shares data with the original")
	}
}

// --- SubTexture Tests ---

func TestTexture_SubTexture(t *testing.T) {
	tex, _ := NewTexture(8, 8, FormatRGBA8)
	_ = tex.SetRGBA(5, 6, 100, 0, 0, 255)

	sub := tex.SubTexture(Rect{Min: Point{4, 4}, Max: Point{8, 8}})
	if sub == nil {
		t.Fatal("SubTexture returned nil for valid bounds")
	}
	if sub.Width() != 4 || sub.Height() != 4 {
		t.Errorf("sub dimensions = %dx%d, want 4x4", sub.Width(), sub.Height())
	}
	r, _, _, _ := sub.GetRGBA(1, 2) // (5,6) in the parent
	if r != 100 {
		t.Errorf("sub pixel r = %d, want 100", r)
	}

	// Shared data: writes through the view land in the parent.
	_ = sub.SetRGBA(0, 0, 7, 0, 0, 0)
	if r, _, _, _ := tex.GetRGBA(4, 4); r != 7 {
		t.Error("SubTexture does not share data with the parent")
	}

	if tex.SubTexture(Rect{Min: Point{4, 4}, Max: Point{9, 8}}) != nil {
		t.Error("SubTexture beyond bounds should return nil")
	}
	if tex.SubTexture(Rect{Min: Point{4, 4}, Max: Point{4, 8}}) != nil {
		t.Error("empty SubTexture should return nil")
	}
}

// --- Conversion Tests ---

func TestTexture_Convert(t *testing.T) {
	tests := []struct {
		name   string
		from   Format
		to     Format
		set    [4]uint8
		expect [4]uint8
	}{
		{"RGBA8 to BGRA8", FormatRGBA8, FormatBGRA8, [4]uint8{10, 20, 30, 40}, [4]uint8{10, 20, 30, 40}},
		{"BGRA8 to RGBA8", FormatBGRA8, FormatRGBA8, [4]uint8{10, 20, 30, 40}, [4]uint8{10, 20, 30, 40}},
		{"RGBA8 to RGB8 drops alpha", FormatRGBA8, FormatRGB8, [4]uint8{10, 20, 30, 40}, [4]uint8{10, 20, 30, 255}},
		{"RGB8 to RGBA8 opaque", FormatRGB8, FormatRGBA8, [4]uint8{10, 20, 30, 255}, [4]uint8{10, 20, 30, 255}},
		{"Gray8 to RGBA8", FormatGray8, FormatRGBA8, [4]uint8{77, 77, 77, 255}, [4]uint8{77, 77, 77, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _ := NewTexture(2, 2, tt.from)
			_ = src.SetRGBA(1, 1, tt.set[0], tt.set[1], tt.set[2], tt.set[3])

			dst, err := src.Convert(tt.to)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if dst.Format() != tt.to {
				t.Fatalf("converted format = %v, want %v", dst.Format(), tt.to)
			}
			r, g, b, a := dst.GetRGBA(1, 1)
			if [4]uint8{r, g, b, a} != tt.expect {
				t.Errorf("converted pixel = (%d,%d,%d,%d), want %v", r, g, b, a, tt.expect)
			}
		})
	}
}

func TestTexture_ConvertSameFormat(t *testing.T) {
	src, _ := NewTexture(2, 2, FormatRGBA8)
	src.Fill(5, 5, 5, 5)

	dst, err := src.Convert(FormatRGBA8)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	// Deep copy, not the same buffer.
	dst.Fill(1, 1, 1, 1)
	if r, _, _, _ := src.GetRGBA(0, 0); r != 5 {
		t.Error("Convert to same format shares data")
	}
}

func TestTexture_ConvertInvalid(t *testing.T) {
	src, _ := NewTexture(2, 2, FormatRGBA8)
	if _, err := src.Convert(Format(99)); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Convert to invalid format error = %v, want ErrInvalidFormat", err)
	}

	broken := &Texture{data: make([]byte, 16), width: 2, height: 2, stride: 8, format: Format(99)}
	if _, err := broken.Convert(FormatRGBA8); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Convert from invalid format error = %v, want ErrInvalidFormat", err)
	}
}

func TestTexture_ConvertToGray(t *testing.T) {
	src, _ := NewTexture(1, 1, FormatRGBA8)
	_ = src.SetRGBA(0, 0, 255, 0, 0, 255)

	dst, err := src.Convert(FormatGray8)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	// Luminance of pure red: 0.299 * 255 = 76.
	if got := dst.PixelBytes(0, 0)[0]; got != 76 {
		t.Errorf("gray value = %d, want 76", got)
	}
}
