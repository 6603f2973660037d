package rtkernel

import "math"

// RGB stores color components. Arithmetic is unclamped; only U8 quantizes.
type RGB struct {
	R, G, B Real
}

func (c RGB) Add(d RGB) RGB    { return RGB{c.R + d.R, c.G + d.G, c.B + d.B} }
func (c RGB) Sub(d RGB) RGB    { return RGB{c.R - d.R, c.G - d.G, c.B - d.B} }
func (c RGB) Mul(s Real) RGB   { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) Blend(d RGB) RGB  { return RGB{c.R * d.R, c.G * d.G, c.B * d.B} }
func (c RGB) Equal(d RGB) bool { return EqualApprox(c.R, d.R) && EqualApprox(c.G, d.G) && EqualApprox(c.B, d.B) }

// U8 scales each channel by 255 and truncates toward zero.
// Results outside [0,255] saturate and NaN maps to 0; channels are not
// clamped to [0,1] first, so 1.5 gives 255 and -0.5 gives 0.
func (c RGB) U8() (r, g, b uint8) {
	return toU8(c.R), toU8(c.G), toU8(c.B)
}

func toU8(x Real) uint8 {
	v := math.Trunc(x * PPMMaxValue)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= PPMMaxValue:
		return PPMMaxValue
	}
	return uint8(v)
}
