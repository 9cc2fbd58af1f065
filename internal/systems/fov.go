package systems

import (
	"corsair-server/internal/domain"
	"corsair-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// CanopyAttenuation - на сколько клеток "полог" (лес) укорачивает
// оставшийся пробег луча. Лес не обрывает зрение, а гасит его.
const CanopyAttenuation = 3

// Оверлей тумана и символ игрока
const (
	FogSymbol    = "~"
	FogColor     = "white"
	PlayerSymbol = "@"
)

// RenderCell - разрешенное содержимое одной клетки видового окна.
type RenderCell struct {
	Visible bool   `json:"visible"`
	Symbol  string `json:"symbol"`
	Color   string `json:"color"`
}

// RenderBuffer - буфер отрисовки: окно height x width с наблюдателем
// в центре. Создается заново на каждый вызов, состояния между вызовами нет.
type RenderBuffer struct {
	Height int          `json:"height"`
	Width  int          `json:"width"`
	Cells  []RenderCell `json:"cells"`
}

func (b *RenderBuffer) index(row, col int) int {
	return row*b.Width + col
}

// At возвращает клетку окна по координатам (row, col).
func (b *RenderBuffer) At(row, col int) RenderCell {
	return b.Cells[b.index(row, col)]
}

// IsVisible сообщает, помечена ли клетка окна видимой.
func (b *RenderBuffer) IsVisible(row, col int) bool {
	if row < 0 || col < 0 || row >= b.Height || col >= b.Width {
		return false
	}
	return b.Cells[b.index(row, col)].Visible
}

// ComputeVisibility строит буфер отрисовки для одного наблюдателя.
// Алгоритм - лучевое сканирование по периметру профиля: на каждую точку
// границы бросается дискретный луч (Брезенхэм), все пройденные клетки
// помечаются видимыми. Луч гаснет на полностью непрозрачной клетке (сама
// клетка еще видна), лес укорачивает пробег, туман вне "гало" вокруг
// наблюдателя глушит луч как стена. Это сознательное приближение честного
// shadowcasting: окно маленькое и фиксированное, повторные посещения клеток
// дешевле геометрической точности.
//
// Вторым проходом видимые клетки разрешаются в содержимое: часть судна >
// живое существо > верхний нескрытый предмет > туман > террейн. Суда
// штампуются последним оверлеем и никогда не затирают существ.
func ComputeVisibility(w *domain.GameWorld, viewer domain.Position, profile RadiusProfile,
	fog, noFog map[domain.Position]bool, height, width int) *RenderBuffer {

	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": viewer,
	})
	fovLogger.WithField("rays", len(profile)).Debug("Starting visibility scan.")

	buf := &RenderBuffer{
		Height: height,
		Width:  width,
		Cells:  make([]RenderCell, height*width),
	}

	centerY := height / 2
	centerX := width / 2

	// mark переводит мировую позицию в клетку окна. Лучи могут выходить
	// за окно (кольцо шире окна) - такие клетки просто не помечаются.
	mark := func(p domain.Position) {
		row := p.Y - viewer.Y + centerY
		col := p.X - viewer.X + centerX
		if row < 0 || col < 0 || row >= height || col >= width {
			return
		}
		buf.Cells[buf.index(row, col)].Visible = true
	}

	// 1. Наблюдатель всегда видит собственную клетку
	mark(viewer)

	// 2. По лучу на каждую точку границы профиля
	for _, off := range profile {
		target := viewer.Shift(off.X, off.Y)
		castBeam(w, viewer, target, fog, noFog, mark)
	}

	// 3. Разрешение содержимого видимых клеток
	creatureCells := resolveBuffer(w, buf, viewer, fog, noFog)

	// 4. Суда - финальным оверлеем (они многоклеточные)
	stampShips(w, buf, viewer, creatureCells)

	// 5. Сам наблюдатель
	stampViewer(w, buf, viewer)

	visibleCount := 0
	for i := range buf.Cells {
		if buf.Cells[i].Visible {
			visibleCount++
		}
	}
	fovLogger.WithField("visible_cells", visibleCount).Debug("Visibility scan complete.")

	return buf
}

// castBeam ведет дискретный луч от наблюдателя к цели, помечая пройденные
// клетки. remaining - запас хода по главной оси (расстояние Чебышева до
// цели): каждый пройденный "полог" срезает его на CanopyAttenuation.
func castBeam(terrain TerrainView, viewer, target domain.Position,
	fog, noFog map[domain.Position]bool, mark func(domain.Position)) {

	dx := target.X - viewer.X
	if dx < 0 {
		dx = -dx
	}
	dy := target.Y - viewer.Y
	if dy < 0 {
		dy = -dy
	}
	sx, sy := viewer.DirectionTo(target)

	remaining := dx
	if dy > remaining {
		remaining = dy
	}

	err := dx - dy
	x, y := viewer.X, viewer.Y

	for {
		p := domain.Position{X: x, Y: y}

		// Цели за картой просто обрезаются, это не ошибка
		if !terrain.InBounds(p) {
			return
		}

		mark(p)

		if p != viewer {
			t := terrain.TerrainAt(p)

			// Стена/гора: клетка видна, но дальше луч не идет
			if t.IsOpaque() {
				return
			}
			// Туман глушит луч, если клетка вне гало наблюдателя
			if fog[p] && !noFog[p] {
				return
			}
			// Лес гасит, но не обрывает
			if t.IsCanopy() {
				remaining -= CanopyAttenuation
			}
		}

		if remaining <= 0 {
			return
		}
		if x == target.X && y == target.Y {
			return
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		remaining--
	}
}

// resolveBuffer заполняет содержимое видимых клеток. Возвращает пометки
// "тут существо", чтобы оверлей судов их не затирал.
func resolveBuffer(w *domain.GameWorld, buf *RenderBuffer, viewer domain.Position,
	fog, noFog map[domain.Position]bool) []bool {

	creatureCells := make([]bool, len(buf.Cells))
	centerY := buf.Height / 2
	centerX := buf.Width / 2

	for row := 0; row < buf.Height; row++ {
		for col := 0; col < buf.Width; col++ {
			i := buf.index(row, col)
			if !buf.Cells[i].Visible {
				continue
			}

			p := domain.Position{
				X: viewer.X + col - centerX,
				Y: viewer.Y + row - centerY,
			}

			sym, color, isCreature := resolveCell(w, p, fog, noFog)
			buf.Cells[i].Symbol = sym
			buf.Cells[i].Color = color
			creatureCells[i] = isCreature
		}
	}

	return creatureCells
}

// resolveCell решает, что показать в одной клетке мира:
// живое существо > верхний нескрытый предмет > туман > террейн.
func resolveCell(w *domain.GameWorld, p domain.Position, fog, noFog map[domain.Position]bool) (string, string, bool) {
	ents := w.GetEntitiesAt(p.X, p.Y)

	// Существа. "Верхнее" - последнее добавленное в клетку.
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		if e.Blocks() && e.Render != nil {
			return e.Render.Symbol, e.Render.Color, true
		}
	}

	// Предметы на земле
	for i := len(ents) - 1; i >= 0; i-- {
		e := ents[i]
		if e.Type == domain.EntityTypeItem && !e.Hidden && e.Render != nil {
			return e.Render.Symbol, e.Render.Color, false
		}
	}

	// Туман рисуется поверх террейна, но внутри гало игнорируется
	if fog[p] && !noFog[p] {
		return FogSymbol, FogColor, false
	}

	t := w.TerrainAt(p)
	return t.Symbol(), t.Color(), false
}

// stampShips кладет три клетки каждого судна поверх разрешенного буфера.
// Клетка с существом не перекрывается: существа визуально важнее оконечностей
// судна.
func stampShips(w *domain.GameWorld, buf *RenderBuffer, viewer domain.Position, creatureCells []bool) {
	centerY := buf.Height / 2
	centerX := buf.Width / 2

	stamp := func(p domain.Position, symbol string) {
		row := p.Y - viewer.Y + centerY
		col := p.X - viewer.X + centerX
		if row < 0 || col < 0 || row >= buf.Height || col >= buf.Width {
			return
		}
		i := buf.index(row, col)
		if !buf.Cells[i].Visible || creatureCells[i] {
			return
		}
		buf.Cells[i].Symbol = symbol
		buf.Cells[i].Color = "brown"
	}

	for _, ship := range w.Ships {
		stamp(ship.Pos, ship.DeckSymbol)
		stamp(ship.BowPos, ship.BowSymbol)
		stamp(ship.AftPos, ship.AftSymbol)
	}
}

// stampViewer рисует самого наблюдателя в центре окна. Цвет зависит от
// того, где он: на палубе, в глубокой воде или на суше.
func stampViewer(w *domain.GameWorld, buf *RenderBuffer, viewer domain.Position) {
	i := buf.index(buf.Height/2, buf.Width/2)
	buf.Cells[i].Visible = true
	buf.Cells[i].Symbol = PlayerSymbol

	switch {
	case w.ShipAt(viewer) != nil:
		buf.Cells[i].Color = "brown"
	case w.TerrainAt(viewer) == domain.TerrainDeepWater:
		buf.Cells[i].Color = "light_blue"
	default:
		buf.Cells[i].Color = "white"
	}
}
