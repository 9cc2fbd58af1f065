package systems

import (
	"math/rand"

	"corsair-server/internal/domain"
	"corsair-server/pkg/utils"
)

// Пока что погода состоит только из тумана.

// WeatherSystem - один очаг погоды: центр, радиус и плотность.
type WeatherSystem struct {
	Pos       domain.Position
	Radius    int
	Intensity float64 // доля клеток кольца, накрытых туманом (0.0-1.0)
}

// Weather - текущий погодный оверлей карты. Clouds пересчитывается
// целиком между ходами; сканер видимости получает его на чтение.
type Weather struct {
	Systems []WeatherSystem
	Clouds  map[domain.Position]bool
}

func NewWeather() *Weather {
	return &Weather{Clouds: make(map[domain.Position]bool)}
}

// CalcClouds пересобирает множество туманных клеток: по растеризованным
// кольцам каждого очага, клетка попадает в туман с вероятностью Intensity.
// При фиксированном rng результат детерминирован.
func (wx *Weather) CalcClouds(terrain TerrainView, rng *rand.Rand) {
	wx.Clouds = make(map[domain.Position]bool)

	for _, s := range wx.Systems {
		for r := 1; r <= s.Radius; r++ {
			for _, pt := range utils.BresenhamCircle(s.Pos.X, s.Pos.Y, r) {
				p := domain.Position{X: pt[0], Y: pt[1]}
				if rng.Float64() < s.Intensity && terrain.InBounds(p) {
					wx.Clouds[p] = true
				}
			}
		}
	}
}

// Drift сдвигает каждый очаг на шаг в случайном направлении.
// Шаг за край карты пропускается, очаг остается на месте.
func (wx *Weather) Drift(terrain TerrainView, rng *rand.Rand) {
	for i := range wx.Systems {
		s := &wx.Systems[i]
		next := s.Pos.Shift(rng.Intn(3)-1, rng.Intn(3)-1)
		if terrain.InBounds(next) {
			s.Pos = next
		}
	}
}

// NoFogZone строит "гало" вокруг наблюдателя - область, где туман
// игнорируется, чтобы даже в мгле были видны соседние клетки (и враги
// в них). База - сам наблюдатель и 8 соседей; активный источник света
// расширяет гало растеризованными кольцами.
func NoFogZone(viewer domain.Position, lightActive bool) map[domain.Position]bool {
	zone := make(map[domain.Position]bool)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			zone[viewer.Shift(dx, dy)] = true
		}
	}

	if lightActive {
		for r := 2; r <= 3; r++ {
			for _, pt := range utils.BresenhamCircle(viewer.X, viewer.Y, r) {
				zone[domain.Position{X: pt[0], Y: pt[1]}] = true
			}
		}
	}

	return zone
}
