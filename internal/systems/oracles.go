package systems

import "corsair-server/internal/domain"

// Ядро не владеет миром: оба движка опрашивают его через узкие интерфейсы,
// чтобы не зависеть от конкретных коллекций движка (по аналогии с
// EntityProvider в таргетинге).

// TerrainView - террейн-оракул: границы и классификация клеток.
// Реализуется domain.GameWorld.
type TerrainView interface {
	InBounds(p domain.Position) bool
	TerrainAt(p domain.Position) domain.Terrain
}

// OccupancyView - оракул занятости: держит ли клетку другая отслеживаемая
// сущность (существо или часть многоклеточного судна). Предикат ленивый,
// по клетке за раз: снимок "всей занятости" заранее не строится, потому что
// судно накрывает три клетки и его форма учитывается внутри оракула.
// Реализуется domain.GameWorld.
type OccupancyView interface {
	IsCellFree(p domain.Position) bool
}
