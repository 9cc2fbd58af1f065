package island

import (
	"corsair-server/internal/domain"
)

// CreatureTemplate определяет шаблон для создания существа
type CreatureTemplate struct {
	Name         string
	Type         string
	Symbol       string
	Color        string
	HP           int
	Hostile      bool
	PursuitRange int
	Passable     func() domain.PassabilitySet
}

// Spawn создает существо из шаблона на заданной позиции
func (t CreatureTemplate) Spawn(pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:   domain.GenerateID(),
		Type: t.Type,
		Name: t.Name,
		Pos:  pos,
		Render: &domain.RenderComponent{
			Symbol: t.Symbol,
			Color:  t.Color,
		},
		Stats: &domain.StatsComponent{
			HP:    t.HP,
			MaxHP: t.HP,
		},
		AI: &domain.AIComponent{
			IsHostile:    t.Hostile,
			PursuitRange: t.PursuitRange,
			Passable:     t.Passable(),
		},
	}
}

// ItemTemplate определяет шаблон наземного предмета
type ItemTemplate struct {
	Name   string
	Symbol string
	Color  string
	Hidden bool
}

// Spawn создает предмет из шаблона на заданной позиции
func (t ItemTemplate) Spawn(pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     domain.GenerateID(),
		Type:   domain.EntityTypeItem,
		Name:   t.Name,
		Pos:    pos,
		Hidden: t.Hidden,
		Render: &domain.RenderComponent{
			Symbol: t.Symbol,
			Color:  t.Color,
		},
	}
}

// Бестиарий острова. Набор проходимости - это и есть "вид" существа:
// роутер и движение ничего больше о видах не знают.
var (
	Shark = CreatureTemplate{
		Name:         "shark",
		Type:         domain.EntityTypeEnemy,
		Symbol:       "^",
		Color:        "grey",
		HP:           20,
		Hostile:      true,
		PursuitRange: domain.PursuitRadius,
		Passable:     domain.DeepWaterPassable,
	}

	Boar = CreatureTemplate{
		Name:         "wild boar",
		Type:         domain.EntityTypeEnemy,
		Symbol:       "b",
		Color:        "brown",
		HP:           12,
		Hostile:      true,
		PursuitRange: domain.PursuitRadius,
		Passable:     domain.LandPassable,
	}

	Snake = CreatureTemplate{
		Name:         "snake",
		Type:         domain.EntityTypeEnemy,
		Symbol:       "S",
		Color:        "green",
		HP:           8,
		Hostile:      true,
		PursuitRange: domain.PursuitRadius,
		Passable:     domain.LandPassable,
	}

	Pirate = CreatureTemplate{
		Name:         "castaway pirate",
		Type:         domain.EntityTypeNPC,
		Symbol:       "@",
		Color:        "yellow",
		HP:           15,
		Hostile:      false,
		PursuitRange: domain.PursuitRadius,
		Passable:     domain.AmphibiousPassable,
	}

	Cutlass = ItemTemplate{
		Name:   "rusty cutlass",
		Symbol: ")",
		Color:  "grey",
	}

	BuriedChest = ItemTemplate{
		Name:   "buried chest",
		Symbol: "$",
		Color:  "gold",
		Hidden: true,
	}
)
