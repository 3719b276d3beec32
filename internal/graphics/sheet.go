package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// SheetSpec describes an animated sprite sheet: one row per orientation,
// one column per frame across all stances.
type SheetSpec struct {
	Name    string
	Columns int
	Rows    int
	Body    color.RGBA
	// Columns at or past DeathColumn are drawn flattened and darker.
	// Zero disables it.
	DeathColumn int
}

// CellRect is the pixel rectangle of (col, row) in a sheet of square cells.
func CellRect(col, row, cell int) image.Rectangle {
	return image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
}

// PlaceholderSheet draws a stand-in sheet: a body blob per cell with a marker
// pointing along the row's heading. Animation frames bob the body slightly
// so cycling is visible.
func PlaceholderSheet(spec SheetSpec, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, spec.Columns*cell, spec.Rows*cell))
	marker := color.RGBA{240, 230, 200, 255}

	for row := 0; row < spec.Rows; row++ {
		heading := float64(row) * 45 * math.Pi / 180
		for col := 0; col < spec.Columns; col++ {
			r := CellRect(col, row, cell)
			cx := r.Min.X + cell/2
			cy := r.Min.Y + cell/2
			body := spec.Body
			halfW, halfH := cell/4, cell/3
			if spec.DeathColumn > 0 && col >= spec.DeathColumn {
				body = darken(body, 0.5)
				halfW, halfH = cell/3, cell/8
				cy += cell / 4
			} else {
				cy += (col % 2) * 2
			}
			fillEllipse(img, cx, cy, halfW, halfH, body)

			mx := cx + int(math.Cos(heading)*float64(cell)/4)
			my := cy - int(math.Sin(heading)*float64(cell)/4)
			draw.Draw(img, image.Rect(mx-2, my-2, mx+2, my+2), image.NewUniform(marker), image.Point{}, draw.Src)
		}
	}
	return img
}

// DiamondTile is a white isometric diamond of w x h pixels; the renderer
// tints it per tile kind.
func DiamondTile(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	hw := float64(w) / 2
	hh := float64(h) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := math.Abs(float64(x)+0.5-hw) / hw
			dy := math.Abs(float64(y)+0.5-hh) / hh
			if dx+dy <= 1 {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

// PlaceholderObject draws a standing object (house, tree) as a block with a
// darker roof band.
func PlaceholderObject(w, h int, body color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, image.Rect(w/8, h/3, w-w/8, h), image.NewUniform(body), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, h/6, w, h/3), image.NewUniform(darken(body, 0.6)), image.Point{}, draw.Src)
	return img
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := -ry; y <= ry; y++ {
		for x := -rx; x <= rx; x++ {
			fx := float64(x) / float64(rx)
			fy := float64(y) / float64(ry)
			if fx*fx+fy*fy <= 1 {
				img.SetRGBA(cx+x, cy+y, c)
			}
		}
	}
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
