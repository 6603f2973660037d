package rtkernel

const (
	Epsilon        = 1e-5 // tolerance for approximate equality of vectors, colors and matrices
	PPMMaxLine     = 70   // max characters per PPM body line (newline excluded)
	PPMMaxValue    = 255
	CanvasWidth    = 100
	CanvasHeight   = 100
	WallZ          = 10.0
	WallSize       = 7.0
	PPMOut         = "sphere.ppm"
	normalizeNudge = 1.7e-16
	normalizeSteps = 32
)
