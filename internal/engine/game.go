package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"corsair-server/internal/domain"
	"corsair-server/internal/systems"
	"corsair-server/pkg/logger"
)

// Game - одна партия: мир, игрок, часы и погода. Вся мутация состояния
// проходит через методы Game, сервис снаружи только диспетчеризует команды.
type Game struct {
	World  *domain.GameWorld
	Player *domain.Entity

	Clock   *GameClock
	Weather *systems.Weather
	Rng     *rand.Rand

	// LightActive - горит ли у игрока фонарь. Влияет на ночной профиль
	// обзора и на гало против тумана.
	LightActive bool

	Tick int

	// PendingLogs - сообщения, накопленные за ход NPC. Сервис забирает
	// их при сборке ответа.
	PendingLogs []string
}

func NewGame(cfg Config, playerID string) (*Game, error) {
	world, player, err := buildIslandWorld(playerID)
	if err != nil {
		return nil, err
	}

	g := &Game{
		World:  world,
		Player: player,
		Clock:  NewClock(),
		Rng:    rand.New(rand.NewSource(cfg.World.Seed)),
	}

	g.Weather = systems.NewWeather()
	for i := 0; i < cfg.Weather.Systems; i++ {
		g.Weather.Systems = append(g.Weather.Systems, systems.WeatherSystem{
			Pos: domain.Position{
				X: g.Rng.Intn(world.Width),
				Y: g.Rng.Intn(world.Height),
			},
			Radius:    2 + g.Rng.Intn(cfg.Weather.MaxRadius-1),
			Intensity: cfg.Weather.Intensity,
		})
	}
	g.Weather.CalcClouds(world, g.Rng)

	return g, nil
}

// Step прокручивает мир на один ход после действия игрока:
// ходят NPC, тикают часы, на границе часа дрейфует погода.
func (g *Game) Step() {
	g.Tick++
	g.Clock.Advance()

	g.stepNPCs()

	if g.Clock.Turn%TurnsPerHour == 0 {
		g.Weather.Drift(g.World, g.Rng)
		g.Weather.CalcClouds(g.World, g.Rng)
	}
}

func (g *Game) stepNPCs() {
	// Обход в фиксированном порядке: реестр - мапа, а партия обязана
	// быть воспроизводимой при одном сиде
	ids := make([]string, 0, len(g.World.EntityRegistry))
	for id := range g.World.EntityRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		e := g.World.EntityRegistry[id]
		if e.ID == g.Player.ID || e.AI == nil || e.Stats == nil || e.Stats.IsDead {
			continue
		}

		action, target, dx, dy := systems.ComputeNPCAction(e, g.Player, g.World, g.Rng)

		switch action {
		case domain.ActionMove:
			next := e.Pos.Shift(dx, dy)
			if err := g.World.UpdateEntityPos(e, next.X, next.Y); err != nil {
				logger.Log.WithError(err).WithField("npc", e.Name).Warn("NPC move rejected")
			}
		case domain.ActionAttack:
			if target != nil {
				g.PendingLogs = append(g.PendingLogs, fmt.Sprintf("%s attacks %s!", e.Name, target.Name))
			}
		default:
			// Wait
		}
	}
}

// DrainLogs отдает накопленные сообщения и очищает буфер.
func (g *Game) DrainLogs() []string {
	out := g.PendingLogs
	g.PendingLogs = nil
	return out
}
