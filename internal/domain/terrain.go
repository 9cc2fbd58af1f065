package domain

// Terrain - категория клетки карты. Ядро маршрутизации и видимости
// никогда не мутирует террейн, только классифицирует его.
type Terrain uint8

const (
	TerrainBlank Terrain = iota // "ничего", край буфера отрисовки
	TerrainGrass
	TerrainDirt
	TerrainSand
	TerrainTree
	TerrainWater
	TerrainDeepWater
	TerrainMountain
	TerrainSnowPeak
	TerrainWall
	TerrainWoodWall
	TerrainFloor
	TerrainStoneFloor
	TerrainLava
	TerrainFirePit
	TerrainGate
	TerrainWorldEdge
)

// IsOpaque возвращает true, если клетка полностью блокирует луч зрения.
func (t Terrain) IsOpaque() bool {
	switch t {
	case TerrainWall, TerrainWoodWall, TerrainMountain, TerrainSnowPeak, TerrainBlank:
		return true
	}
	return false
}

// IsCanopy возвращает true для "полога" (лес): луч не обрывается,
// но его оставшаяся длина сокращается.
func (t Terrain) IsCanopy() bool {
	return t == TerrainTree
}

var terrainNames = map[Terrain]string{
	TerrainBlank:      "blank",
	TerrainGrass:      "grass",
	TerrainDirt:       "dirt",
	TerrainSand:       "sand",
	TerrainTree:       "tree",
	TerrainWater:      "water",
	TerrainDeepWater:  "deep water",
	TerrainMountain:   "mountain",
	TerrainSnowPeak:   "snow peak",
	TerrainWall:       "wall",
	TerrainWoodWall:   "wooden wall",
	TerrainFloor:      "floor",
	TerrainStoneFloor: "stone floor",
	TerrainLava:       "lava",
	TerrainFirePit:    "fire pit",
	TerrainGate:       "gate",
	TerrainWorldEdge:  "world edge",
}

func (t Terrain) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "unknown"
}

// Symbol возвращает символ для отрисовки клетки на клиенте.
func (t Terrain) Symbol() string {
	switch t {
	case TerrainGrass:
		return "\""
	case TerrainDirt:
		return "."
	case TerrainSand:
		return "."
	case TerrainTree:
		return "#"
	case TerrainWater, TerrainDeepWater:
		return "}"
	case TerrainMountain, TerrainSnowPeak:
		return "^"
	case TerrainWall:
		return "#"
	case TerrainWoodWall:
		return "|"
	case TerrainFloor, TerrainStoneFloor:
		return "."
	case TerrainLava:
		return "{"
	case TerrainFirePit:
		return "#"
	case TerrainGate:
		return "#"
	}
	return " "
}

// Color возвращает цвет для отрисовки клетки на клиенте.
func (t Terrain) Color() string {
	switch t {
	case TerrainGrass, TerrainTree:
		return "green"
	case TerrainDirt, TerrainWoodWall, TerrainFirePit:
		return "brown"
	case TerrainSand:
		return "beige"
	case TerrainWater:
		return "light_blue"
	case TerrainDeepWater:
		return "blue"
	case TerrainMountain, TerrainWall, TerrainStoneFloor, TerrainGate:
		return "grey"
	case TerrainSnowPeak:
		return "white"
	case TerrainLava:
		return "bright_red"
	case TerrainFloor:
		return "beige"
	}
	return "black"
}
