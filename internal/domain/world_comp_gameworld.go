package domain

import "errors"

// GetEntitiesAt возвращает список сущностей в конкретной клетке (быстро!)
func (w *GameWorld) GetEntitiesAt(x, y int) []*Entity {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		return nil
	}
	idx := w.GetIndex(x, y)
	return w.SpatialHash[idx]
}

// GetEntity ищет сущность по ID
func (w *GameWorld) GetEntity(id string) *Entity {
	if w.EntityRegistry == nil {
		return nil
	}
	return w.EntityRegistry[id]
}

// RegisterEntity добавляет сущность в реестр и пространственный индекс
func (w *GameWorld) RegisterEntity(e *Entity) {
	if w.EntityRegistry == nil {
		w.EntityRegistry = make(map[string]*Entity)
	}
	w.EntityRegistry[e.ID] = e
	w.AddEntity(e)
}

// UnregisterEntity удаляет сущность из реестра и индекса
func (w *GameWorld) UnregisterEntity(id string) {
	if w.EntityRegistry == nil {
		return
	}
	if e, ok := w.EntityRegistry[id]; ok {
		w.RemoveEntity(e)
		delete(w.EntityRegistry, id)
	}
}

// AddEntity добавляет сущность в индекс
func (w *GameWorld) AddEntity(e *Entity) {
	idx := w.GetIndex(e.Pos.X, e.Pos.Y)
	w.SpatialHash[idx] = append(w.SpatialHash[idx], e)
}

// RemoveEntity удаляет сущность из индекса (например, при смерти)
func (w *GameWorld) RemoveEntity(e *Entity) {
	idx := w.GetIndex(e.Pos.X, e.Pos.Y)
	entities := w.SpatialHash[idx]

	for i, other := range entities {
		if other.ID == e.ID {
			// Swap with last: порядок в клетке не важен для блокировки,
			// а для предметов "верхний" - это последний добавленный
			lastIdx := len(entities) - 1
			entities[i] = entities[lastIdx]
			w.SpatialHash[idx] = entities[:lastIdx]
			return
		}
	}
}

// UpdateEntityPos перемещает сущность в индексе
func (w *GameWorld) UpdateEntityPos(e *Entity, newX, newY int) error {
	// 1. Проверка границ (на всякий случай)
	if newX < 0 || newX >= w.Width || newY < 0 || newY >= w.Height {
		return errors.New("out of bounds")
	}

	// 2. Удаляем из старой позиции
	w.RemoveEntity(e)

	// 3. Обновляем координаты в сущности
	e.Pos.X = newX
	e.Pos.Y = newY

	// 4. Добавляем в новую позицию
	w.AddEntity(e)
	return nil
}

// AddShip регистрирует судно.
func (w *GameWorld) AddShip(s *Ship) {
	if w.Ships == nil {
		w.Ships = make(map[string]*Ship)
	}
	w.Ships[s.ID] = s
}

// ShipAt возвращает судно, чья палуба/нос/корма накрывает клетку.
// Судов на карте единицы, линейный проход дешевле отдельного индекса.
func (w *GameWorld) ShipAt(p Position) *Ship {
	for _, s := range w.Ships {
		if s.Covers(p) {
			return s
		}
	}
	return nil
}

// IsCellFree - оракул занятости: true, если клетку не держит ни живая
// блокирующая сущность, ни часть судна. Граница карты считается занятой.
func (w *GameWorld) IsCellFree(p Position) bool {
	if !w.InBounds(p) {
		return false
	}
	for _, e := range w.GetEntitiesAt(p.X, p.Y) {
		if e.Blocks() {
			return false
		}
	}
	return w.ShipAt(p) == nil
}
