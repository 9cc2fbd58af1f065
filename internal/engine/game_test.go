package engine

import (
	"testing"

	"corsair-server/internal/domain"
)

func TestNewGame_WorldSetup(t *testing.T) {
	g, err := NewGame(testConfig(), "p1")
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	if g.World.Width != 40 || g.World.Height != 20 {
		t.Errorf("Unexpected island size %dx%d", g.World.Width, g.World.Height)
	}
	if g.World.GetEntity("p1") != g.Player {
		t.Error("Player should be registered in the world")
	}
	if len(g.World.Ships) != 1 {
		t.Errorf("Expected one anchored ship, got %d", len(g.World.Ships))
	}
	if g.World.GetEntity("npc_shark_1") == nil {
		t.Error("Shark should be spawned")
	}

	// The shark starts in deep water, the boar on land
	shark := g.World.GetEntity("npc_shark_1")
	if g.World.TerrainAt(shark.Pos) != domain.TerrainDeepWater {
		t.Errorf("Shark spawned on %v, want deep water", g.World.TerrainAt(shark.Pos))
	}
	boar := g.World.GetEntity("npc_boar_1")
	if !domain.LandPassable().Contains(g.World.TerrainAt(boar.Pos)) {
		t.Errorf("Boar spawned on impassable terrain %v", g.World.TerrainAt(boar.Pos))
	}
}

func TestNewGame_WeatherDeterministic(t *testing.T) {
	first, err := NewGame(testConfig(), "p1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewGame(testConfig(), "p1")
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Weather.Clouds) != len(second.Weather.Clouds) {
		t.Fatalf("Cloud counts differ under the same seed: %d vs %d",
			len(first.Weather.Clouds), len(second.Weather.Clouds))
	}
	for p := range first.Weather.Clouds {
		if !second.Weather.Clouds[p] {
			t.Errorf("Cloud at %v missing on the second game", p)
		}
	}
}

func TestGame_Step(t *testing.T) {
	g, err := NewGame(testConfig(), "p1")
	if err != nil {
		t.Fatal(err)
	}

	boar := g.World.GetEntity("npc_boar_1")
	startDist := boar.Pos.ManhattanTo(g.Player.Pos)

	g.Step()

	if g.Tick != 1 {
		t.Errorf("Tick should advance to 1, got %d", g.Tick)
	}

	// The boar is hostile and sees the player: it should close in
	if got := boar.Pos.ManhattanTo(g.Player.Pos); got >= startDist {
		t.Errorf("Boar should approach the player: distance %d -> %d", startDist, got)
	}

	// The spatial index follows the move
	found := false
	for _, e := range g.World.GetEntitiesAt(boar.Pos.X, boar.Pos.Y) {
		if e.ID == boar.ID {
			found = true
		}
	}
	if !found {
		t.Error("Spatial hash lost track of the boar after its move")
	}
}

func TestGame_StepDeterministic(t *testing.T) {
	run := func() []domain.Position {
		g, err := NewGame(testConfig(), "p1")
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			g.Step()
		}
		return []domain.Position{
			g.World.GetEntity("npc_shark_1").Pos,
			g.World.GetEntity("npc_boar_1").Pos,
			g.World.GetEntity("npc_snake_1").Pos,
		}
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("NPC %d diverged between identical runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGame_BuildFrame(t *testing.T) {
	g, err := NewGame(testConfig(), "p1")
	if err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	resp := g.BuildFrameFor(g.Player, cfg.Vision)

	if resp.Type != "UPDATE" {
		t.Errorf("Unexpected response type %q", resp.Type)
	}
	if resp.Hour != 8 {
		t.Errorf("Game starts at 08:00, frame says hour %d", resp.Hour)
	}
	if resp.Frame == nil {
		t.Fatal("Frame missing from the response")
	}
	if resp.Frame.Height != cfg.Vision.FOVHeight || resp.Frame.Width != cfg.Vision.FOVWidth {
		t.Errorf("Frame size %dx%d, want %dx%d",
			resp.Frame.Height, resp.Frame.Width, cfg.Vision.FOVHeight, cfg.Vision.FOVWidth)
	}

	// The viewer sits at the window center and is always visible
	center := (cfg.Vision.FOVHeight/2)*cfg.Vision.FOVWidth + cfg.Vision.FOVWidth/2
	if !resp.Frame.Cells[center].Visible {
		t.Error("Center cell must be visible")
	}
	if resp.Frame.Cells[center].Symbol != "@" {
		t.Errorf("Center cell should carry the player glyph, got %q", resp.Frame.Cells[center].Symbol)
	}
}

func TestGame_AttackDecisionLogged(t *testing.T) {
	g, err := NewGame(testConfig(), "p1")
	if err != nil {
		t.Fatal(err)
	}

	// Put the boar right next to the player: its next turn is an attack
	boar := g.World.GetEntity("npc_boar_1")
	next := g.Player.Pos.Shift(1, 0)
	if err := g.World.UpdateEntityPos(boar, next.X, next.Y); err != nil {
		t.Fatal(err)
	}

	g.Step()

	logs := g.DrainLogs()
	found := false
	for _, l := range logs {
		if l == "wild boar attacks corsair!" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an attack log entry, got %v", logs)
	}
	if len(g.DrainLogs()) != 0 {
		t.Error("DrainLogs should clear the buffer")
	}
}
