// Command rasterdemo renders a small sample scene with the software
// rasterizer and writes it out as PNG or WebP.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/raster"
	"github.com/gogpu/raster/imageio"
)

func main() {
	out := flag.String("out", "demo.png", "output file (.png or .webp)")
	size := flag.Int("size", 256, "canvas size in pixels")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		raster.SetLogger(logger)
	}

	bm := raster.NewBitmap(*size, *size)
	cv := raster.NewCanvas(bm)
	drawScene(cv, float32(*size))

	if err := imageio.Save(*out, bm); err != nil {
		logger.Error("rasterdemo: save failed", "path", *out, "err", err)
		os.Exit(1)
	}
	logger.Info("rasterdemo: wrote scene", "path", *out, "size", *size)
}

// drawScene draws a pumpkin face: a warm gradient-shaded background quad,
// two triangular eyes, and a zig-zag mouth.
func drawScene(cv *raster.Canvas, dim float32) {
	unit := dim / 256

	orange0 := raster.RGBA(0.94, 0.66, 0.38, 1)
	orange1 := raster.RGBA(0.92, 0.52, 0.20, 1)
	orange2 := raster.RGBA(0.87, 0.48, 0.18, 1)
	orange3 := raster.RGBA(0.67, 0.37, 0.13, 1)

	cv.DrawQuad(
		[4]raster.Point{
			raster.Pt(0, 0), raster.Pt(dim, 0),
			raster.Pt(dim, dim), raster.Pt(0, dim),
		},
		[]raster.Color{orange0, orange1, orange2, orange3},
		nil, 12, raster.NewPaint(),
	)

	black := raster.NewPaint()
	black.Color = raster.Black

	cell := 32 * unit
	eye := []raster.Point{
		raster.Pt(2*cell+8*unit, 1*cell),
		raster.Pt(3*cell+16*unit, 4*cell),
		raster.Pt(1*cell, 4*cell),
	}

	var eyes raster.PathBuilder
	eyes.AddPolygon(eye)
	cv.DrawPath(eyes.Detach(), black)

	cv.Save()
	cv.Translate(3*cell+16*unit, 0)
	eyes.AddPolygon(eye)
	cv.DrawPath(eyes.Detach(), black)
	cv.Restore()

	var teeth raster.PathBuilder
	teeth.MoveTo(raster.Pt(1*cell, 5*cell))
	for i := 0; i < 6; i++ {
		fi := float32(i)
		teeth.LineTo(raster.Pt((1+fi)*cell+16*unit, 5*cell+12*unit))
		teeth.LineTo(raster.Pt((2+fi)*cell, 5*cell))
	}
	for i := 5; i >= 0; i-- {
		fi := float32(i)
		teeth.LineTo(raster.Pt((2+fi)*cell, 7*cell))
		teeth.LineTo(raster.Pt((1+fi)*cell+16*unit, 7*cell-12*unit))
	}
	teeth.LineTo(raster.Pt(1*cell, 7*cell))
	teeth.LineTo(raster.Pt(1*cell, 5*cell))
	cv.DrawPath(teeth.Detach(), black)
}
