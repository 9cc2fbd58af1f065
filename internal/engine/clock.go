package engine

import (
	"corsair-server/internal/systems"
)

// TurnsPerHour - сколько ходов длится игровой час
const TurnsPerHour = 6

// Границы освещенности: полный обзор днем, сжимающиеся кольца в сумерках
const (
	dawnHour = 5
	dayHour  = 6
	duskHour = 19
)

// Радиусы колец обзора для разных фаз суток
const (
	twilightRadius = 9
	gloamingRadius = 7
	nightRadius    = 5
	lanternBonus   = 2
)

// GameClock отсчитывает ходы и переводит их в игровое время суток.
// Время суток определяет форму профиля обзора: днем лучи бьют до краев
// окна, ночью - только до ближнего кольца.
type GameClock struct {
	Turn int
}

func NewClock() *GameClock {
	// Игра начинается утром
	return &GameClock{Turn: 8 * TurnsPerHour}
}

// Advance продвигает время на один ход
func (c *GameClock) Advance() {
	c.Turn++
}

// Hour возвращает игровой час (0-23)
func (c *GameClock) Hour() int {
	return (c.Turn / TurnsPerHour) % 24
}

// IsDaylight сообщает, светло ли сейчас
func (c *GameClock) IsDaylight() bool {
	h := c.Hour()
	return h >= dayHour && h < duskHour
}

// VisionProfile строит профиль обзора для текущего часа.
// lightActive - горит ли у наблюдателя источник света: ночью он
// расширяет кольцо, днем не влияет.
func (c *GameClock) VisionProfile(height, width int, lightActive bool) systems.RadiusProfile {
	h := c.Hour()

	if h >= dayHour && h < duskHour {
		return systems.FullWindowProfile(height, width)
	}

	var radius int
	switch {
	case h == dawnHour || h == duskHour:
		radius = twilightRadius
	case h == dawnHour-1 || h == duskHour+1:
		radius = gloamingRadius
	default:
		radius = nightRadius
	}

	if lightActive {
		radius += lanternBonus
	}

	return systems.RingProfile(radius).Clamp(height, width)
}
