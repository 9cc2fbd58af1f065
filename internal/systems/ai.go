package systems

import (
	"math/rand"

	"corsair-server/internal/domain"
	"corsair-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ComputeNPCAction решает, что делать NPC в свой ход. Это тонкая обвязка
// над роутером: вид существа задает только набор проходимости и цель,
// сам роутер о видах ничего не знает.
// Возвращает (команда, цель_атаки_если_есть, dx, dy).
func ComputeNPCAction(npc, player *domain.Entity, w *domain.GameWorld, rng *rand.Rand) (action domain.ActionType, target *domain.Entity, dx, dy int) {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc":       npc.Name,
	})

	if npc.AI == nil || npc.Stats == nil || npc.Stats.IsDead || !npc.AI.IsHostile {
		return domain.ActionWait, nil, 0, 0
	}
	if player == nil || player.Stats == nil || player.Stats.IsDead {
		return domain.ActionWait, nil, 0, 0
	}

	// В радиусе атаки (включая диагонали)
	if npc.Pos.IsAdjacent(player.Pos) {
		aiLogger.Debug("Target adjacent. Action: ATTACK")
		return domain.ActionAttack, player, 0, 0
	}

	// Слишком далеко - игнорируем. Радиус евклидов: зона преследования
	// круглая, по диагонали существо не "слепнет" раньше времени.
	if npc.Pos.DistanceTo(player.Pos) > float64(npc.AI.PursuitRange) {
		return domain.ActionWait, nil, 0, 0
	}

	// Если не видим цель, не делаем ничего
	if !HasLineOfSight(w, npc.Pos, player.Pos) {
		aiLogger.Debug("Target not visible. Action: WAIT")
		return domain.ActionWait, nil, 0, 0
	}

	// Цель видима и в радиусе преследования: спрашиваем роутер.
	// Клетка цели всегда "входима" для поиска, поэтому путь упрется
	// ровно в игрока и path[1] будет следующим шагом к нему.
	path := FindPath(w, w, npc.Pos, player.Pos, npc.AI.Passable)
	if len(path) > 1 {
		next := path[1]
		if !w.IsCellFree(next) && next != player.Pos {
			// Кто-то уже занял клетку на этом же ходу
			aiLogger.WithField("blocked_at", next).Debug("Next step occupied. Action: WAIT")
			return domain.ActionWait, nil, 0, 0
		}
		aiLogger.WithField("next", next).Debug("Path found. Action: MOVE")
		return domain.ActionMove, nil, next.X - npc.Pos.X, next.Y - npc.Pos.Y
	}

	// Пути нет - топчемся на случайной соседней открытой клетке,
	// чтобы стая не застывала намертво за препятствием
	if adj, ok := FindAdjacentOpen(w, npc.Pos, npc.AI.Passable, rng); ok {
		aiLogger.WithField("next", adj).Debug("No path. Action: MOVE to random open cell")
		return domain.ActionMove, nil, adj.X - npc.Pos.X, adj.Y - npc.Pos.Y
	}

	return domain.ActionWait, nil, 0, 0
}

// FindAdjacentOpen подбирает случайную соседнюю клетку, куда существо
// может встать: в границах, по своему террейну и не занятую.
func FindAdjacentOpen(w *domain.GameWorld, pos domain.Position, passable domain.PassabilitySet, rng *rand.Rand) (domain.Position, bool) {
	var open []domain.Position

	for _, d := range pathDirs {
		adj := pos.Shift(d[0], d[1])
		if !w.InBounds(adj) {
			continue
		}
		if !passable.Contains(w.TerrainAt(adj)) {
			continue
		}
		if !w.IsCellFree(adj) {
			continue
		}
		open = append(open, adj)
	}

	if len(open) == 0 {
		return domain.Position{}, false
	}
	return open[rng.Intn(len(open))], true
}
