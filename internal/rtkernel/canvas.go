package rtkernel

import "image"

// Canvas is a row-major grid of colors with fixed dimensions.
type Canvas struct {
	Width, Height int
	Pix           []RGB // flat: y*Width + x
}

// NewCanvas allocates a width×height canvas pre-filled with fill.
func NewCanvas(width, height int, fill RGB) *Canvas {
	if width < 0 || height < 0 {
		panic("canvas dimensions must be non-negative")
	}
	c := &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
	for i := range c.Pix {
		c.Pix[i] = fill
	}
	DebugLog("Created canvas %dx%d fill=%+v", width, height, fill)
	return c
}

// WritePixel sets (x, y); coordinates outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color RGB) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Pix[y*c.Width+x] = color
}

// ReadPixel is unchecked: out of range coordinates panic or alias another row.
func (c *Canvas) ReadPixel(x, y int) RGB {
	return c.Pix[y*c.Width+x]
}

// Image converts the canvas to 8-bit NRGBA using the same quantization as the PPM encoder.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		row := y * img.Stride
		for x := 0; x < c.Width; x++ {
			r, g, b := c.Pix[y*c.Width+x].U8()
			p := row + x*4
			img.Pix[p+0] = r
			img.Pix[p+1] = g
			img.Pix[p+2] = b
			img.Pix[p+3] = 255
		}
	}
	return img
}
