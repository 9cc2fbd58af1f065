package systems

import (
	"corsair-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	BlockedBy *domain.Entity // Если врезались в кого-то (для атаки)
	IsWall    bool           // Если врезались в непроходимый террейн
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
// Проходимость определяется набором passable конкретного существа,
// суда для пешего движения считаются препятствием (посадка на борт -
// отдельное действие движка, не шаг).
func CalculateMove(e *domain.Entity, dx, dy int, w *domain.GameWorld, passable domain.PassabilitySet) MovementResult {
	targetPos := e.Pos.Shift(dx, dy)

	res := MovementResult{NewPos: targetPos}

	// 1. Проверка границ
	if !w.InBounds(targetPos) {
		res.IsWall = true
		return res
	}

	// 2. Проверка террейна
	if !passable.Contains(w.TerrainAt(targetPos)) {
		res.IsWall = true
		return res
	}

	// 3. Проверка сущностей
	for _, other := range w.GetEntitiesAt(targetPos.X, targetPos.Y) {
		if other.ID == e.ID {
			continue
		}
		if other.Blocks() {
			res.BlockedBy = other
			return res
		}
	}

	// 4. Проверка судов
	if w.ShipAt(targetPos) != nil {
		res.IsWall = true
		return res
	}

	res.HasMoved = true
	return res
}
