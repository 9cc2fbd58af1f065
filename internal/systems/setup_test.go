package systems

import (
	"os"
	"testing"

	"corsair-server/internal/domain"
	"corsair-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// newTestWorld builds a world filled with a single terrain kind.
func newTestWorld(width, height int, fill domain.Terrain) *domain.GameWorld {
	w := domain.NewGameWorld(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			w.Map[y][x] = fill
		}
	}
	return w
}

func newTestCreature(name string, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     domain.GenerateID(),
		Type:   domain.EntityTypeEnemy,
		Name:   name,
		Pos:    pos,
		Render: &domain.RenderComponent{Symbol: "b", Color: "brown"},
		Stats:  &domain.StatsComponent{HP: 5, MaxHP: 5},
		AI: &domain.AIComponent{
			IsHostile:    true,
			PursuitRange: domain.PursuitRadius,
			Passable:     domain.LandPassable(),
		},
	}
}
