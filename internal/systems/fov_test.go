package systems

import (
	"testing"

	"corsair-server/internal/domain"
)

func TestComputeVisibility_OpenGrid(t *testing.T) {
	w := newTestWorld(7, 7, domain.TerrainGrass)
	viewer := domain.Position{X: 3, Y: 3}

	buf := ComputeVisibility(w, viewer, FullWindowProfile(7, 7), nil, nil, 7, 7)

	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			if !buf.IsVisible(row, col) {
				t.Errorf("Cell (%d,%d) should be visible on an open grid", row, col)
			}
		}
	}
}

func TestComputeVisibility_WallOcclusion(t *testing.T) {
	w := newTestWorld(7, 7, domain.TerrainGrass)
	viewer := domain.Position{X: 3, Y: 3}

	// Wall one step east of the viewer
	w.SetTerrain(domain.Position{X: 4, Y: 3}, domain.TerrainWall)

	buf := ComputeVisibility(w, viewer, FullWindowProfile(7, 7), nil, nil, 7, 7)

	// The wall itself is visible
	if !buf.IsVisible(3, 4) {
		t.Error("The wall cell itself should be visible")
	}
	// The cell behind it on the same ray is not
	if buf.IsVisible(3, 5) {
		t.Error("Cell behind the wall should be occluded")
	}
	// A cell on a different, unobstructed ray still is
	if !buf.IsVisible(2, 5) {
		t.Error("Cell on an unrelated ray should stay visible")
	}
}

func TestComputeVisibility_ViewerAlwaysVisible(t *testing.T) {
	w := newTestWorld(5, 5, domain.TerrainWall)
	viewer := domain.Position{X: 2, Y: 2}
	w.SetTerrain(viewer, domain.TerrainFloor)

	// Even with an empty profile (no rays at all) the viewer sees themselves
	buf := ComputeVisibility(w, viewer, RadiusProfile{}, nil, nil, 5, 5)

	if !buf.IsVisible(2, 2) {
		t.Fatal("Viewer's own cell must always be visible")
	}
	if got := buf.At(2, 2).Symbol; got != PlayerSymbol {
		t.Errorf("Viewer cell should render the player symbol, got %q", got)
	}
}

func TestComputeVisibility_CanopyAttenuation(t *testing.T) {
	// Single-row viewport: only the horizontal rays matter.
	w := newTestWorld(41, 1, domain.TerrainGrass)
	viewer := domain.Position{X: 10, Y: 0}

	run := func() *RenderBuffer {
		return ComputeVisibility(w, viewer, FullWindowProfile(1, 21), nil, nil, 1, 21)
	}

	// Open corridor: the ray reaches the window edge, 10 cells east.
	buf := run()
	if !buf.IsVisible(0, 20) {
		t.Fatal("Open corridor should be visible to the window edge")
	}

	// One tree at +2 knocks CanopyAttenuation cells off the ray: the
	// farthest visible cell moves from +10 to +7.
	w.SetTerrain(domain.Position{X: 12, Y: 0}, domain.TerrainTree)
	buf = run()
	if !buf.IsVisible(0, 10+7) {
		t.Error("Cell at +7 should still be visible past one tree")
	}
	if buf.IsVisible(0, 10+8) {
		t.Error("Cell at +8 should be attenuated away by one tree")
	}

	// A second tree shrinks the ray again, deterministically: +4.
	w.SetTerrain(domain.Position{X: 13, Y: 0}, domain.TerrainTree)
	buf = run()
	if !buf.IsVisible(0, 10+4) {
		t.Error("Cell at +4 should still be visible past two trees")
	}
	if buf.IsVisible(0, 10+5) {
		t.Error("Cell at +5 should be attenuated away by two trees")
	}
}

func TestComputeVisibility_FogHalo(t *testing.T) {
	w := newTestWorld(11, 11, domain.TerrainGrass)
	viewer := domain.Position{X: 5, Y: 5}

	fog := map[domain.Position]bool{
		{X: 6, Y: 5}: true, // adjacent, inside the halo
		{X: 8, Y: 5}: true, // far, outside the halo
	}
	noFog := NoFogZone(viewer, false)

	buf := ComputeVisibility(w, viewer, FullWindowProfile(11, 11), fog, noFog, 11, 11)

	// Fog inside the halo neither blocks nor renders: the ray passes through
	if !buf.IsVisible(5, 7) {
		t.Error("Cell behind in-halo fog should be visible")
	}
	if got := buf.At(5, 6).Symbol; got == FogSymbol {
		t.Error("In-halo fog cell should render its real content, not fog")
	}

	// Far fog blocks like a wall: the cell is visible and rendered as fog,
	// everything beyond it on the ray is not
	if !buf.IsVisible(5, 8) {
		t.Error("Far fog cell itself should be visible")
	}
	if got := buf.At(5, 8).Symbol; got != FogSymbol {
		t.Errorf("Far fog cell should render the fog overlay, got %q", got)
	}
	if buf.IsVisible(5, 9) {
		t.Error("Cell behind far fog should be occluded")
	}
}

func TestComputeVisibility_RenderPriority(t *testing.T) {
	w := newTestWorld(9, 9, domain.TerrainGrass)
	viewer := domain.Position{X: 4, Y: 4}

	// Item alone resolves to the item glyph
	sword := &domain.Entity{
		ID:     domain.GenerateID(),
		Type:   domain.EntityTypeItem,
		Name:   "rusty cutlass",
		Pos:    domain.Position{X: 6, Y: 4},
		Render: &domain.RenderComponent{Symbol: ")", Color: "grey"},
	}
	w.RegisterEntity(sword)

	// Hidden item resolves to bare terrain
	chest := &domain.Entity{
		ID:     domain.GenerateID(),
		Type:   domain.EntityTypeItem,
		Name:   "buried chest",
		Pos:    domain.Position{X: 2, Y: 4},
		Hidden: true,
		Render: &domain.RenderComponent{Symbol: "$", Color: "gold"},
	}
	w.RegisterEntity(chest)

	// Creature standing on an item wins over it
	boar := newTestCreature("wild boar", domain.Position{X: 6, Y: 4})
	w.RegisterEntity(boar)

	buf := ComputeVisibility(w, viewer, FullWindowProfile(9, 9), nil, nil, 9, 9)

	if got := buf.At(4, 6).Symbol; got != "b" {
		t.Errorf("Creature should win over the item, got %q", got)
	}
	if got := buf.At(4, 2).Symbol; got != domain.TerrainGrass.Symbol() {
		t.Errorf("Hidden item cell should render terrain, got %q", got)
	}
}

func TestComputeVisibility_ShipOverlay(t *testing.T) {
	w := newTestWorld(11, 11, domain.TerrainDeepWater)
	viewer := domain.Position{X: 5, Y: 5}
	w.SetTerrain(viewer, domain.TerrainSand)

	ship := domain.NewShip("The Guppy")
	ship.Pos = domain.Position{X: 5, Y: 2}
	ship.Bearing = 4 // на восток
	ship.UpdateFootprint()
	w.AddShip(ship)

	// A shark surfaced right at the bow cell takes visual precedence
	shark := &domain.Entity{
		ID:     domain.GenerateID(),
		Type:   domain.EntityTypeEnemy,
		Name:   "shark",
		Pos:    ship.BowPos,
		Render: &domain.RenderComponent{Symbol: "^", Color: "grey"},
		Stats:  &domain.StatsComponent{HP: 10, MaxHP: 10},
	}
	w.RegisterEntity(shark)

	buf := ComputeVisibility(w, viewer, FullWindowProfile(11, 11), nil, nil, 11, 11)

	// Deck and aft are stamped in
	if got := buf.At(2, 5).Symbol; got != ship.DeckSymbol {
		t.Errorf("Deck cell should render the deck part, got %q", got)
	}
	if got := buf.At(2, 4).Symbol; got != ship.AftSymbol {
		t.Errorf("Aft cell should render the aft part, got %q", got)
	}
	// The bow cell keeps the creature
	if got := buf.At(2, 6).Symbol; got != "^" {
		t.Errorf("Creature should never be overwritten by a ship part, got %q", got)
	}
}

func TestComputeVisibility_ViewerGlyphColor(t *testing.T) {
	w := newTestWorld(7, 7, domain.TerrainDeepWater)
	viewer := domain.Position{X: 3, Y: 3}

	// Swimming in deep water
	buf := ComputeVisibility(w, viewer, FullWindowProfile(7, 7), nil, nil, 7, 7)
	if got := buf.At(3, 3).Color; got != "light_blue" {
		t.Errorf("Swimming viewer should be light_blue, got %q", got)
	}

	// Standing on deck
	ship := domain.NewShip("The Guppy")
	ship.Pos = viewer
	ship.UpdateFootprint()
	w.AddShip(ship)

	buf = ComputeVisibility(w, viewer, FullWindowProfile(7, 7), nil, nil, 7, 7)
	if got := buf.At(3, 3).Color; got != "brown" {
		t.Errorf("Viewer on deck should be brown, got %q", got)
	}
}
