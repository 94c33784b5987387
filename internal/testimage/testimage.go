// Package testimage generates the deterministic boundary-case rasters used
// by the CLI's -pattern debug mode: solid colour, checkerboard,
// vertical/horizontal strips, uniformly random noise and a single pixel.
// It is the in-module descendant of the teacher's ignore-tagged
// gentestdata.go/genpatterns.go tools, reused as importable Go code rather
// than a standalone generator; nothing here is written to disk.
package testimage

// Raster mirrors pngenc.Raster's shape without importing the root package,
// avoiding an import cycle between internal/testimage and _test.go files in
// both packages.
type Raster struct {
	Width, Height int
	Pix           []byte
}

// Solid returns a Width x Height raster filled with one RGB colour.
func Solid(width, height int, r, g, b byte) Raster {
	pix := make([]byte, 3*width*height)
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = r, g, b
	}
	return Raster{Width: width, Height: height, Pix: pix}
}

// Checkerboard returns a 2x2 raster alternating red/green and blue/white,
// the smallest raster that exercises every filter type's Paeth corner case.
func Checkerboard() Raster {
	return Raster{
		Width: 2, Height: 2,
		Pix: []byte{
			255, 0, 0, 0, 255, 0,
			0, 0, 255, 255, 255, 255,
		},
	}
}

// SinglePixel returns the minimal 1x1 raster.
func SinglePixel(r, g, b byte) Raster {
	return Raster{Width: 1, Height: 1, Pix: []byte{r, g, b}}
}

// VerticalStrip returns a 1-pixel-wide, height-tall raster whose pixels vary
// row to row, exercising the Up/Paeth predictors along a single column.
func VerticalStrip(height int) Raster {
	pix := make([]byte, 3*height)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	return Raster{Width: 1, Height: height, Pix: pix}
}

// HorizontalStrip returns a width-wide, 1-pixel-tall raster whose pixels
// vary column to column, exercising the Sub predictor with no row above it.
func HorizontalStrip(width int) Raster {
	pix := make([]byte, 3*width)
	for i := range pix {
		pix[i] = byte(255 - i)
	}
	return Raster{Width: width, Height: 1, Pix: pix}
}

// Random returns a width x height raster filled from a deterministic linear
// congruential generator seeded by seed, so callers get reproducible "noisy"
// input without reaching for math/rand across package boundaries.
func Random(width, height int, seed uint32) Raster {
	pix := make([]byte, 3*width*height)
	s := seed
	for i := range pix {
		s = s*1103515245 + 12345
		pix[i] = byte(s >> 16)
	}
	return Raster{Width: width, Height: height, Pix: pix}
}

// Named returns one of the boundary patterns spec.md §8 enumerates, by name,
// for use by the CLI's -pattern flag. ok is false for an unrecognised name.
func Named(name string, width, height int) (Raster, bool) {
	switch name {
	case "solid":
		return Solid(width, height, 7, 8, 9), true
	case "checkerboard":
		return Checkerboard(), true
	case "vertical-strip":
		return VerticalStrip(height), true
	case "horizontal-strip":
		return HorizontalStrip(width), true
	case "random":
		return Random(width, height, 12345), true
	case "single-pixel":
		return SinglePixel(10, 20, 30), true
	default:
		return Raster{}, false
	}
}
