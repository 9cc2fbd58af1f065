package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameWorld - мир одной карты: сетка террейна плюс индексы сущностей.
// Оба движка (роутер и сканер видимости) видят мир только на чтение;
// любые мутации происходят снаружи ядра между вызовами.
type GameWorld struct {
	Map    [][]Terrain `json:"map"`
	Width  int         `json:"width"`
	Height int         `json:"height"`

	// SpatialHash: Индекс позиции -> Список сущностей
	// Ключ: Y * Width + X
	// json:"-" означает, что мы НЕ отправляем индексы клиенту
	SpatialHash    map[int][]*Entity  `json:"-"`
	EntityRegistry map[string]*Entity `json:"-"`

	// Ships: корабли занимают по три клетки, поэтому индексируются
	// отдельно от одноклеточных сущностей.
	Ships map[string]*Ship `json:"-"`
}

// NewGameWorld создает пустой мир указанного размера, залитый TerrainBlank.
func NewGameWorld(width, height int) *GameWorld {
	m := make([][]Terrain, height)
	for y := 0; y < height; y++ {
		m[y] = make([]Terrain, width)
	}
	return &GameWorld{
		Map:            m,
		Width:          width,
		Height:         height,
		SpatialHash:    make(map[int][]*Entity),
		EntityRegistry: make(map[string]*Entity),
		Ships:          make(map[string]*Ship),
	}
}

// InBounds проверяет, лежит ли позиция внутри карты.
func (w *GameWorld) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w.Width && p.Y < w.Height
}

// TerrainAt возвращает террейн клетки. За границами карты - WorldEdge,
// чтобы вызывающим не приходилось проверять границы дважды.
func (w *GameWorld) TerrainAt(p Position) Terrain {
	if !w.InBounds(p) {
		return TerrainWorldEdge
	}
	return w.Map[p.Y][p.X]
}

// SetTerrain задает террейн клетки (используется билдером мира и тестами).
func (w *GameWorld) SetTerrain(p Position, t Terrain) {
	if w.InBounds(p) {
		w.Map[p.Y][p.X] = t
	}
}

func (w *GameWorld) GetIndex(x, y int) int {
	return y*w.Width + x
}
