package systems

import (
	"container/heap"

	"corsair-server/internal/domain"
	"corsair-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// SubstituteSearchRadius - предел заливки при поиске замещающей цели
// (в клетках евклидова расстояния от старта). Константа настроечная:
// важно само ограничение поиска, а не точное значение.
const SubstituteSearchRadius = 30

// Восемь направлений обхода (ортогонали + диагонали), стоимость шага
// одинаковая. Порядок фиксирован ради детерминизма маршрутов.
var pathDirs = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// pathNode - рабочая запись поиска: откуда пришли и сколько стоило.
// Живет только внутри одного вызова FindPath.
type pathNode struct {
	parent domain.Position
	g      int // накопленная стоимость
	h      int // эвристика до цели
}

// openItem - элемент очереди с приоритетом. seq фиксирует порядок
// вставки: при равных f побеждает раньше добавленный (детерминизм).
type openItem struct {
	pos domain.Position
	f   int
	seq int
}

type openQueue []openItem

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *openQueue) Push(x any) { *q = append(*q, x.(openItem)) }
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// FindPath строит маршрут из start в goal: классический A* по 8 направлениям
// с манхэттенской эвристикой. Клетки, занятые другими сущностями, считаются
// непроходимыми, КРОМЕ самой цели: в занятую цель можно "прокладывать" путь
// (подойти для атаки), решение о входе остается за вызывающим.
//
// Возвращает последовательность клеток от start до goal включительно.
// Пустой срез означает "недостижимо" - это нормальный исход, не ошибка.
// Если террейн цели не входит в passable, роутер не сдается сразу: ищет
// заливкой ближайшую к цели достижимую клетку и ведет к ней.
func FindPath(terrain TerrainView, occ OccupancyView, start, goal domain.Position, passable domain.PassabilitySet) []domain.Position {
	routeLogger := logger.Log.WithFields(logrus.Fields{
		"component": "router",
		"start":     start,
		"goal":      goal,
	})

	// Мусор на входе не роняет ход - просто нет маршрута.
	if !terrain.InBounds(start) || !terrain.InBounds(goal) {
		routeLogger.Debug("Route rejected: endpoint out of bounds.")
		return nil
	}

	if start == goal {
		// Документированный выбор: тривиальный маршрут из одной клетки.
		return []domain.Position{start}
	}

	if !passable.Contains(terrain.TerrainAt(goal)) {
		// Цель стоит на чужом террейне (игрок на берегу, а мы акула).
		// Ищем замещающую цель среди достижимых клеток.
		sub, ok := findSubstituteGoal(terrain, start, goal, passable)
		if !ok {
			routeLogger.Debug("Route failed: goal terrain impassable, no substitute in range.")
			return nil
		}
		routeLogger.WithField("substitute", sub).Debug("Goal terrain impassable, rerouting to substitute.")
		goal = sub
		if start == goal {
			return []domain.Position{start}
		}
	}

	path := aStar(terrain, occ, start, goal, passable)
	routeLogger.WithField("path_len", len(path)).Debug("Route calculation complete.")
	return path
}

func aStar(terrain TerrainView, occ OccupancyView, start, goal domain.Position, passable domain.PassabilitySet) []domain.Position {
	nodes := map[domain.Position]*pathNode{
		start: {parent: start},
	}

	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, openItem{pos: start, f: 0, seq: 0})
	seq := 1

	visited := make(map[domain.Position]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(openItem)
		if current.pos == goal {
			return backtrace(nodes, start, goal)
		}
		if visited[current.pos] {
			continue
		}
		visited[current.pos] = true

		for _, d := range pathDirs {
			next := current.pos.Shift(d[0], d[1])

			// Каждый шаг расширения охраняется заново: границы, террейн,
			// занятость. Благодаря этому кривой start не зациклит поиск.
			if !terrain.InBounds(next) {
				continue
			}
			if !passable.Contains(terrain.TerrainAt(next)) {
				continue
			}
			// Цель всегда считается входимой, даже если ее кто-то занял
			if next != goal && !occ.IsCellFree(next) {
				continue
			}
			if visited[next] {
				continue
			}

			g := nodes[current.pos].g + 1

			if n, ok := nodes[next]; !ok {
				h := next.ManhattanTo(goal)
				nodes[next] = &pathNode{parent: current.pos, g: g, h: h}
				heap.Push(open, openItem{pos: next, f: g + h, seq: seq})
				seq++
			} else if g < n.g {
				n.g = g
				n.parent = current.pos
				heap.Push(open, openItem{pos: next, f: g + n.h, seq: seq})
				seq++
			}
		}
	}

	return nil
}

// backtrace разматывает цепочку родителей от цели к старту.
func backtrace(nodes map[domain.Position]*pathNode, start, goal domain.Position) []domain.Position {
	path := []domain.Position{}
	cur := goal
	for cur != start {
		path = append(path, cur)
		cur = nodes[cur].parent
	}
	path = append(path, start)

	// Разворачиваем: от старта к цели
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// findSubstituteGoal ищет замену недостижимой цели: ограниченная заливка
// (BFS) от старта по проходимому террейну в радиусе SubstituteSearchRadius,
// среди собранных клеток берется ближайшая к исходной цели. Выбор
// детерминирован: при равном расстоянии побеждает раньше встреченная
// в порядке обхода клетка.
func findSubstituteGoal(terrain TerrainView, start, goal domain.Position, passable domain.PassabilitySet) (domain.Position, bool) {
	radiusSq := SubstituteSearchRadius * SubstituteSearchRadius

	frontier := []domain.Position{start}
	seen := map[domain.Position]bool{start: true}

	best := start
	bestDist := -1

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		if cur != start {
			d := cur.DistanceSquaredTo(goal)
			if bestDist < 0 || d < bestDist {
				best = cur
				bestDist = d
			}
		}

		for _, dir := range pathDirs {
			next := cur.Shift(dir[0], dir[1])
			if seen[next] {
				continue
			}
			if !terrain.InBounds(next) {
				continue
			}
			if !passable.Contains(terrain.TerrainAt(next)) {
				continue
			}
			if next.DistanceSquaredTo(start) > radiusSq {
				continue
			}
			seen[next] = true
			frontier = append(frontier, next)
		}
	}

	if bestDist < 0 {
		// Заперты: вокруг старта нет ни одной подходящей клетки
		return domain.Position{}, false
	}
	return best, true
}
