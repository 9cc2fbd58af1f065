package island

import (
	"fmt"

	"corsair-server/internal/domain"
)

// legend - соответствие символов карты типам террейна.
// Карты хранятся как срезы строк: одна строка - один ряд клеток.
var legend = map[rune]domain.Terrain{
	':': domain.TerrainDeepWater,
	'~': domain.TerrainWater,
	'.': domain.TerrainSand,
	',': domain.TerrainGrass,
	'd': domain.TerrainDirt,
	'T': domain.TerrainTree,
	'^': domain.TerrainMountain,
	'*': domain.TerrainSnowPeak,
	'#': domain.TerrainWall,
	'=': domain.TerrainWoodWall,
	'+': domain.TerrainFloor,
	'_': domain.TerrainStoneFloor,
	'%': domain.TerrainLava,
	'"': domain.TerrainFirePit,
	'|': domain.TerrainGate,
}

// BuildFromRows собирает мир из текстового шаблона. Все строки обязаны
// быть одной длины, незнакомый символ - ошибка шаблона, а не мира.
func BuildFromRows(rows []string) (*domain.GameWorld, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map template")
	}

	height := len(rows)
	width := len([]rune(rows[0]))

	w := domain.NewGameWorld(width, height)

	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("map row %d: width %d, want %d", y, len(cells), width)
		}
		for x, ch := range cells {
			terrain, ok := legend[ch]
			if !ok {
				return nil, fmt.Errorf("map row %d col %d: unknown cell %q", y, x, ch)
			}
			w.Map[y][x] = terrain
		}
	}

	return w, nil
}
