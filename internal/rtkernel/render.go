package rtkernel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// renderSilhouette casts one ray per pixel from cfg.RayOrigin towards a square
// wall at z = cfg.WallZ and paints pixels whose ray meets the sphere.
// Rows are split across workers; each pixel is written by exactly one worker.
func renderSilhouette(cfg *Config, s Sphere, in Intersector) (*Canvas, error) {
	c := NewCanvas(cfg.Width, cfg.Height, cfg.Background)
	if cfg.Height == 0 {
		return c, nil
	}

	workers := Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Height {
		workers = cfg.Height
	}
	workers = imax(workers, 1)

	half := cfg.WallSize / 2
	pxW := cfg.WallSize / Real(cfg.Width)
	pxH := cfg.WallSize / Real(cfg.Height)
	origin := cfg.RayOrigin

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
		done     int64
		failed   atomic.Bool
	)
	nextPrint := int64(imax(cfg.Height/10, 1))
	rows := make(chan int, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		rows <- y
	}
	close(rows)

	DebugLogOnce("Launching %d render workers for %d rows", workers, cfg.Height)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				if failed.Load() {
					return
				}
				worldY := half - pxH*Real(y)
				for x := 0; x < cfg.Width; x++ {
					worldX := -half + pxW*Real(x)
					target := Point(worldX, worldY, cfg.WallZ)
					r := NewRay(origin, target.Sub(origin).Normalize())
					xs, err := in.Intersect(s, r)
					if err != nil {
						errOnce.Do(func() { firstErr = err })
						failed.Store(true)
						return
					}
					if _, ok := xs.Hit(); ok {
						c.WritePixel(x, y, cfg.Color)
					}
				}
				if n := atomic.AddInt64(&done, 1); n%nextPrint == 0 {
					DebugLog("[PROGRESS] %.2f%%", Real(n)*100/Real(cfg.Height))
				}
			}
		}()
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return c, nil
}
