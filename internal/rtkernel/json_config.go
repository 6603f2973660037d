package rtkernel

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Rotation in degrees for JSON (friendlier than radians).
type Rot3Deg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

func (r Rot3Deg) Radians() Rot3 {
	const k = math.Pi / 180
	return Rot3{X: r.X * k, Y: r.Y * k, Z: r.Z * k}
}

// TransformStep is one fluent builder call, e.g. {"op":"scale","args":[2,2,2]}.
// Angles for rotate ops are in degrees.
type TransformStep struct {
	Op   string `json:"op"`
	Args []Real `json:"args"`
}

type SphereCfg struct {
	ID        int             `json:"id"`
	Transform []TransformStep `json:"transform,omitempty"`
	RotDeg    Rot3Deg         `json:"rotDeg"`
}

type Config struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Background RGB       `json:"background"`
	Color      RGB       `json:"color"`
	RayOrigin  Vec4      `json:"rayOrigin"`
	WallZ      Real      `json:"wallZ"`
	WallSize   Real      `json:"wallSize"`
	PPMOut     string    `json:"ppmOut"`
	Sphere     SphereCfg `json:"sphere"`
}

var stepArity = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotateX":   1,
	"rotateY":   1,
	"rotateZ":   1,
	"shear":     6,
}

// Apply post-multiplies M by the step's elementary transform.
func (st TransformStep) Apply(M Mat4) (Mat4, error) {
	n, ok := stepArity[st.Op]
	if !ok {
		return M, fmt.Errorf("unknown transform op %q", st.Op)
	}
	if len(st.Args) != n {
		return M, fmt.Errorf("transform op %q needs %d args, got %d", st.Op, n, len(st.Args))
	}
	a := st.Args
	const k = math.Pi / 180
	switch st.Op {
	case "translate":
		return M.Translate(a[0], a[1], a[2]), nil
	case "scale":
		return M.Scale(a[0], a[1], a[2]), nil
	case "rotateX":
		return M.RotateX(a[0] * k), nil
	case "rotateY":
		return M.RotateY(a[0] * k), nil
	case "rotateZ":
		return M.RotateZ(a[0] * k), nil
	default:
		return M.Shear(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	}
}

// Build validates and constructs the sphere. Steps are chained in listed
// order, then the rotDeg rotation is appended.
func (sc SphereCfg) Build() (Sphere, error) {
	M := I4()
	for i, st := range sc.Transform {
		var err error
		if M, err = st.Apply(M); err != nil {
			return Sphere{}, fmt.Errorf("sphere #%d step %d: %w", sc.ID, i, err)
		}
	}
	if r := sc.RotDeg; r != (Rot3Deg{}) {
		M = M.Mul(rotFromAngles(r.Radians()))
	}
	if _, err := M.Inverse(); err != nil {
		return Sphere{}, fmt.Errorf("sphere #%d: %w", sc.ID, err)
	}
	s := NewSphere(sc.ID)
	s.SetTransform(M)
	return s, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = CanvasWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = CanvasHeight
	}
	if cfg.WallSize <= 0 {
		cfg.WallSize = WallSize
	}
	if cfg.WallZ == 0 {
		cfg.WallZ = WallZ
	}
	if cfg.Color == (RGB{}) {
		cfg.Color = RGB{1, 0, 0}
	}
	if cfg.RayOrigin == (Vec4{}) {
		cfg.RayOrigin = Point(0, 0, -5)
	}
	cfg.RayOrigin.W = 1
	if cfg.PPMOut == "" {
		cfg.PPMOut = PPMOut
	}
	if cfg.RayOrigin.Z >= cfg.WallZ {
		return nil, fmt.Errorf("ray origin z=%g must be in front of the wall at z=%g", cfg.RayOrigin.Z, cfg.WallZ)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), wall z=%g size=%g, out=%s", path, cfg.Width, cfg.Height, cfg.WallZ, cfg.WallSize, cfg.PPMOut)
	return &cfg, nil
}
