package systems

import (
	"corsair-server/internal/domain"
	"corsair-server/pkg/logger"
	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Использует оптимизированный алгоритм Брезенхэма (только целочисленная
// арифметика). В отличие от сканера видимости, здесь ни полог, ни туман
// не учитываются - только полностью непрозрачный террейн.
func HasLineOfSight(terrain TerrainView, p1, p2 domain.Position) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1.X == p2.X && p1.Y == p2.Y {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		// Проверяем препятствия, ИСКЛЮЧАЯ стартовую и конечную точки.
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == x1 && y0 == y1

		if !isStartPoint && !isEndPoint {
			p := domain.Position{X: x0, Y: y0}
			// Выход за границы и непрозрачный террейн блокируют линию
			if !terrain.InBounds(p) || terrain.TerrainAt(p).IsOpaque() {
				losLogger.WithField("blocking_point", p).
					Debug("Line of sight blocked.")
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}
