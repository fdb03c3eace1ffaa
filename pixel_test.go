package raster

import "testing"

func TestDiv255Exact(t *testing.T) {
	for n := uint32(0); n <= 255; n++ {
		if got := div255(n * 255); got != n {
			t.Fatalf("div255(%d*255) = %d, want %d", n, got, n)
		}
	}
}

func TestDiv255Rounds(t *testing.T) {
	tests := []struct {
		in   uint32
		want uint32
	}{
		{0, 0},
		{127, 0},  // 127/255 rounds down
		{128, 1},  // 128/255 rounds up
		{255, 1},
		{254 * 255, 254},
		{65025, 255}, // 255*255
	}
	for _, tt := range tests {
		if got := div255(tt.in); got != tt.want {
			t.Errorf("div255(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestColorPixelPremultiplies(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Pixel
	}{
		{"opaque red", RGB(1, 0, 0), 0xFFFF0000},
		{"opaque white", RGB(1, 1, 1), 0xFFFFFFFF},
		{"transparent", Transparent, 0x00000000},
		{"half white", RGBA(1, 1, 1, 0.5), 0x80808080},
		{"half green", RGBA(0, 1, 0, 0.5), 0x80008000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Pixel(); got != tt.want {
				t.Errorf("Pixel() = %#08x, want %#08x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestColorPixelStaysPremultiplied(t *testing.T) {
	colors := []Color{
		RGBA(1, 0.5, 0.25, 0.7),
		RGBA(0.9, 0.9, 0.1, 0.1),
		RGBA(1, 1, 1, 0.003),
		RGBA(0.2, 0.4, 0.6, 1),
	}
	for _, c := range colors {
		p := c.Pixel()
		a := p.A()
		if p.R() > a || p.G() > a || p.B() > a {
			t.Errorf("Pixel(%+v) = %#08x has channel above alpha", c, uint32(p))
		}
	}
}

func TestPixelColorRoundTrip(t *testing.T) {
	p := RGBA(0.5, 0.25, 1, 0.8).Pixel()
	c := p.Color()
	if abs(c.A-0.8) > 0.01 || abs(c.R-0.5) > 0.01 || abs(c.G-0.25) > 0.01 || abs(c.B-1) > 0.01 {
		t.Errorf("Color() = %+v, want approx (0.5 0.25 1 0.8)", c)
	}

	if got := Pixel(0).Color(); got != (Color{}) {
		t.Errorf("zero pixel Color() = %+v, want zero", got)
	}
}

func TestPixelChannels(t *testing.T) {
	p := PackARGB(0x80, 0x40, 0x20, 0x10)
	if p.A() != 0x80 || p.R() != 0x40 || p.G() != 0x20 || p.B() != 0x10 {
		t.Errorf("channels of %#08x = %d %d %d %d", uint32(p), p.A(), p.R(), p.G(), p.B())
	}
}
