package rtkernel

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit        Category = iota // two distinct roots
	Tangent                    // discriminant exactly 0, root counted twice
	Miss                       // negative discriminant
	Degenerate                 // sphere transform not invertible
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Tangent:
		return "tangent"
	case Miss:
		return "miss"
	case Degenerate:
		return "degenerate"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

type RayLog struct {
	Name     string
	Category Category
	Ray      Ray
	SphereID int
	T        Intersections
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // map of ray name to logs
}

func NewRayLogCache() *RayLogCache {
	return &RayLogCache{rays: make(map[string][]RayLog)}
}

func (c *RayLogCache) logRay(name string, category Category, r Ray, sphereID int, xs Intersections) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rays[name] = append(c.rays[name], RayLog{
		Name:     name,
		Category: category,
		Ray:      r,
		SphereID: sphereID,
		T:        xs,
	})
}

// Counts returns the number of logged rays per category for name.
func (c *RayLogCache) Counts(name string) map[Category]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Category]int)
	for _, l := range c.rays[name] {
		out[l.Category]++
	}
	return out
}

func (c *RayLogCache) raysStats() {
	c.mu.Lock()
	names := make([]string, 0, len(c.rays))
	for k := range c.rays {
		names = append(names, k)
	}
	c.mu.Unlock()
	sort.Strings(names)
	for _, k := range names {
		counts := c.Counts(k)
		fmt.Printf("Ray type %s: hit=%d tangent=%d miss=%d degenerate=%d\n",
			k, counts[Hit], counts[Tangent], counts[Miss], counts[Degenerate])
	}
}
