package systems

import (
	"math/rand"
	"testing"

	"corsair-server/internal/domain"
)

func TestWeather_CalcClouds(t *testing.T) {
	w := newTestWorld(30, 30, domain.TerrainDeepWater)

	wx := NewWeather()
	wx.Systems = append(wx.Systems, WeatherSystem{
		Pos:       domain.Position{X: 15, Y: 15},
		Radius:    5,
		Intensity: 1.0,
	})

	wx.CalcClouds(w, rand.New(rand.NewSource(42)))

	if len(wx.Clouds) == 0 {
		t.Fatal("Full-intensity system should produce clouds")
	}

	for p := range wx.Clouds {
		if !w.InBounds(p) {
			t.Errorf("Cloud at %v is out of bounds", p)
		}
		// Rasterized rings never leave the Chebyshev box of the radius:
		// the midpoint walk keeps max(|dx|,|dy|) <= r on every octant
		dx, dy := p.X-15, p.Y-15
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx > 5 || dy > 5 {
			t.Errorf("Cloud at %v strays outside the system radius", p)
		}
	}

	// Cardinal ring points are guaranteed at intensity 1.0
	if !wx.Clouds[domain.Position{X: 16, Y: 15}] {
		t.Error("Expected a cloud on the innermost ring")
	}
}

func TestWeather_Deterministic(t *testing.T) {
	w := newTestWorld(30, 30, domain.TerrainDeepWater)

	build := func() map[domain.Position]bool {
		wx := NewWeather()
		wx.Systems = append(wx.Systems, WeatherSystem{
			Pos:       domain.Position{X: 10, Y: 10},
			Radius:    6,
			Intensity: 0.4,
		})
		wx.CalcClouds(w, rand.New(rand.NewSource(7)))
		return wx.Clouds
	}

	first := build()
	second := build()

	if len(first) != len(second) {
		t.Fatalf("Cloud counts differ under a fixed seed: %d vs %d", len(first), len(second))
	}
	for p := range first {
		if !second[p] {
			t.Errorf("Cloud at %v missing on the second run", p)
		}
	}
}

func TestNoFogZone(t *testing.T) {
	viewer := domain.Position{X: 5, Y: 5}

	zone := NoFogZone(viewer, false)
	if len(zone) != 9 {
		t.Errorf("Base halo should be the viewer plus 8 neighbours, got %d cells", len(zone))
	}
	if !zone[viewer] || !zone[viewer.Shift(1, 1)] {
		t.Error("Base halo must cover the viewer and diagonal neighbours")
	}
	if zone[viewer.Shift(2, 0)] {
		t.Error("Base halo must not reach two cells out")
	}

	// An active light source widens the halo
	lit := NoFogZone(viewer, true)
	if !lit[viewer.Shift(2, 0)] || !lit[viewer.Shift(0, 3)] {
		t.Error("Lit halo should include the rasterized rings")
	}
	if len(lit) <= len(zone) {
		t.Error("Lit halo should be strictly larger than the base halo")
	}
}
