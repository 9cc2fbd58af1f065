package domain

// PassabilitySet - набор категорий террейна, по которым конкретный
// "проситель" (сухопутный зверь, пловец, акула) имеет право ходить.
// Набор задается вызывающей стороной на каждый запрос и нигде не хранится.
type PassabilitySet map[Terrain]bool

// Contains проверяет, входит ли террейн в набор.
func (ps PassabilitySet) Contains(t Terrain) bool {
	return ps[t]
}

// LandPassable - набор для сухопутных существ (кабан, змея).
func LandPassable() PassabilitySet {
	return PassabilitySet{
		TerrainDirt:  true,
		TerrainGrass: true,
		TerrainSand:  true,
		TerrainTree:  true,
		TerrainFloor: true,
	}
}

// AmphibiousPassable - набор для существ, не боящихся мелководья (пират).
func AmphibiousPassable() PassabilitySet {
	ps := LandPassable()
	ps[TerrainWater] = true
	return ps
}

// DeepWaterPassable - набор для чисто морских существ (акула).
func DeepWaterPassable() PassabilitySet {
	return PassabilitySet{
		TerrainDeepWater: true,
	}
}

// AllPassable - все, что в принципе проходимо хоть кем-то.
// Нужен отладке и всеядным запросам, не конкретным существам.
func AllPassable() PassabilitySet {
	return PassabilitySet{
		TerrainWater:      true,
		TerrainDeepWater:  true,
		TerrainGrass:      true,
		TerrainTree:       true,
		TerrainDirt:       true,
		TerrainSand:       true,
		TerrainLava:       true,
		TerrainFloor:      true,
		TerrainStoneFloor: true,
		TerrainFirePit:    true,
	}
}
