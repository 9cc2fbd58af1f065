package engine

import (
	"corsair-server/internal/domain"
	"corsair-server/pkg/island"
)

// Демонстрационный остров. Процедурной генерации нет намеренно:
// фиксированная карта делает каждую партию воспроизводимой.
var islandRows = []string{
	`::::::::::::::::::::::::::::::::::::::::`,
	`::::::::::::::::::::::::::::::::::::::::`,
	`::::::::::::::::::::::::::::::::::::::::`,
	`:::~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~:::`,
	`:::~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~:::`,
	`:::~~..............................~~:::`,
	`:::~~.,,,,,,,,,,,,,,,,,,,,,,,,,,,,.~~:::`,
	`:::~~.,,,,,,,,,,,T,,,,,,,,,,,,,,,,.~~:::`,
	`:::~~.,,,,TTTTT,,,,,,,,,,,,,,,,,,,.~~:::`,
	`:::~~.,,,,TTTTT,,,,,^^^,,,,,,,,,,,.~~:::`,
	`:::~~.,,,,TTTTT,,,,,^*^,,,,,,,,,,,.~~:::`,
	`:::~~.,,,,,,,,,,,,,,,,,,,,,,d,,,,,.~~:::`,
	`:::~~.,,T,,,,,,,,,,,,,,,,T,d"d,,,,.~~:::`,
	`:::~~.,,,,,,,,,,,,,,,,,,,,,,d,,,,,.~~:::`,
	`:::~~..............................~~:::`,
	`:::~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~:::`,
	`:::~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~:::`,
	`::::::::::::::::::::::::::::::::::::::::`,
	`::::::::::::::::::::::::::::::::::::::::`,
	`::::::::::::::::::::::::::::::::::::::::`,
}

// buildIslandWorld собирает стартовое состояние: карту, игрока,
// обитателей, предметы и судно на рейде.
func buildIslandWorld(playerID string) (*domain.GameWorld, *domain.Entity, error) {
	w, err := island.BuildFromRows(islandRows)
	if err != nil {
		return nil, nil, err
	}

	player := island.CreatePlayer(playerID, domain.Position{X: 24, Y: 12})
	w.RegisterEntity(player)

	// Обитатели. ID фиксированные: порядок обхода NPC в Game.Step
	// сортируется по ID, партия с одним сидом обязана повторяться.
	spawn := func(id string, e *domain.Entity) {
		e.ID = id
		w.RegisterEntity(e)
	}
	spawn("npc_shark_1", island.Shark.Spawn(domain.Position{X: 20, Y: 1}))
	spawn("npc_boar_1", island.Boar.Spawn(domain.Position{X: 8, Y: 7}))
	spawn("npc_snake_1", island.Snake.Spawn(domain.Position{X: 30, Y: 8}))
	spawn("npc_pirate_1", island.Pirate.Spawn(domain.Position{X: 28, Y: 11}))

	// Предметы
	spawn("item_cutlass_1", island.Cutlass.Spawn(domain.Position{X: 18, Y: 12}))
	spawn("item_chest_1", island.BuriedChest.Spawn(domain.Position{X: 6, Y: 5}))

	// Судно на якоре у северного берега
	ship := domain.NewShip("The Guppy")
	ship.Pos = domain.Position{X: 10, Y: 1}
	ship.Bearing = 4
	ship.Anchored = true
	ship.UpdateFootprint()
	w.AddShip(ship)

	return w, player, nil
}
