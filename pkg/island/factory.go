package island

import (
	"corsair-server/internal/domain"
)

// CreatePlayer создает сущность игрока. Игрок амфибиен: ходит по суше
// и плавает по мелкой воде, глубокая вода - только вплавь с корабля.
func CreatePlayer(id string, pos domain.Position) *domain.Entity {
	if id == "" {
		id = domain.GenerateID()
	}
	return &domain.Entity{
		ID:   id,
		Type: domain.EntityTypePlayer,
		Name: "corsair",
		Pos:  pos,
		Render: &domain.RenderComponent{
			Symbol: "@",
			Color:  "white",
		},
		Stats: &domain.StatsComponent{HP: 30, MaxHP: 30},
		AI: &domain.AIComponent{
			IsHostile: false,
			Passable:  domain.AmphibiousPassable(),
		},
	}
}
