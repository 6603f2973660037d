package rtkernel

import (
	"strings"
	"time"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	sphere, err := cfg.Sphere.Build()
	if err != nil {
		return err
	}

	var log *RayLogCache
	if Debug {
		log = NewRayLogCache()
	}
	in := Intersector{Name: "silhouette", Log: log}

	start := time.Now()
	canvas, err := renderSilhouette(cfg, sphere, in)
	if err != nil {
		return err
	}
	DebugLog("Rendered %dx%d in %s", cfg.Width, cfg.Height, time.Since(start))
	if log != nil {
		log.raysStats()
	}

	if err := canvas.SavePPM(cfg.PPMOut); err != nil {
		return err
	}
	DebugLog("Saved PPM: %s", cfg.PPMOut)

	if PNG {
		out := strings.TrimSuffix(cfg.PPMOut, ".ppm") + ".png"
		if err := SavePNG(canvas, out); err != nil {
			return err
		}
		DebugLog("Saved PNG: %s", out)
	}
	return nil
}
